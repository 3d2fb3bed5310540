package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/render"
)

type diagramOptions struct {
	orientation string
	radius      int
	selected    []string
	out         string
	size        int
	hexRadius   float64
}

func newDiagramCmd(root *rootOptions) *cobra.Command {
	opts := &diagramOptions{}
	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Write the honeycomb picker as SVG",
		Example: `  honeycomb diagram --select 1,0 --select 0,-1 --out honeycomb.svg
  honeycomb diagram --orientation flat-top`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("radius") {
				opts.radius = cfg.Honeycomb.Radius
			}

			w := cmd.OutOrStdout()
			if opts.out != "" && opts.out != "-" {
				f, err := os.Create(opts.out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", opts.out, err)
				}
				defer f.Close()
				w = f
			}
			return writeDiagram(w, opts)
		},
	}
	cmd.Flags().StringVar(&opts.orientation, "orientation", hexmap.PointyTop.String(), "Hex orientation (pointy-top, flat-top)")
	cmd.Flags().IntVar(&opts.radius, "radius", hexmap.DefaultHoneycombRadius, "Rings around the center cell")
	cmd.Flags().StringArrayVar(&opts.selected, "select", nil, "Selected cell as q,r (repeatable)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().IntVar(&opts.size, "size", render.DefaultDiagramOptions.Size, "Diagram width and height in pixels")
	cmd.Flags().Float64Var(&opts.hexRadius, "hex-radius", render.DefaultDiagramOptions.HexRadius, "Radius of one diagram cell")
	return cmd
}

func writeDiagram(w io.Writer, opts *diagramOptions) error {
	o, err := hexmap.ParseOrientation(opts.orientation)
	if err != nil {
		return err
	}
	hc, err := hexmap.NewHoneycomb(opts.radius)
	if err != nil {
		return err
	}
	for _, s := range opts.selected {
		h, err := parseHex(s)
		if err != nil {
			return err
		}
		if err := hc.Toggle(h); err != nil {
			return fmt.Errorf("select %s: %w", s, err)
		}
	}

	do := render.DefaultDiagramOptions
	do.Size = opts.size
	do.HexRadius = opts.hexRadius
	if err := render.WriteDiagramSVG(w, hc, o, do); err != nil {
		return err
	}
	log.Debug().
		Stringer("orientation", o).
		Int("radius", opts.radius).
		Int("selected", hc.SelectedCount()).
		Msg("diagram written")
	return nil
}

// parseHex reads "q,r".
func parseHex(s string) (hexmap.Hex, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return hexmap.Hex{}, fmt.Errorf("invalid hex %q, want q,r", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return hexmap.Hex{}, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return hexmap.Hex{}, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return hexmap.Hex{Q: q, R: r}, nil
}
