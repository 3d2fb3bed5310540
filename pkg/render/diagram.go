package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"who-brings-what/pkg/hexmap"
)

// DiagramOptions controls the static picture of a honeycomb.
type DiagramOptions struct {
	Size      int     // width and height in pixels
	HexRadius float64 // radius of one cell
	Colors    DiagramColors
}

// DefaultDiagramOptions matches the picker shown in the configuration dialog.
var DefaultDiagramOptions = DiagramOptions{
	Size:      400,
	HexRadius: 18,
	Colors:    DefaultDiagramColors,
}

// DiagramCell is one hexagon of the diagram, positioned in diagram space.
type DiagramCell struct {
	hexmap.Cell
	Vertices    []hexmap.Point
	Fill        string
	Stroke      string
	StrokeWidth int
}

// LayoutDiagram places every honeycomb cell around the middle of a Size×Size square.
func LayoutDiagram(hc *hexmap.Honeycomb, o hexmap.Orientation, opts DiagramOptions) ([]DiagramCell, error) {
	half := float64(opts.Size) / 2
	cells := hc.Cells()
	out := make([]DiagramCell, 0, len(cells))
	for _, c := range cells {
		center, err := c.ToPixel(opts.HexRadius, o)
		if err != nil {
			return nil, err
		}
		vs, err := hexmap.HexVertices(half+center.X, half+center.Y, opts.HexRadius, o)
		if err != nil {
			return nil, err
		}

		dc := DiagramCell{
			Cell:        c,
			Vertices:    vs,
			Fill:        HexString(opts.Colors.EmptyFill),
			Stroke:      HexString(opts.Colors.Stroke),
			StrokeWidth: 1,
		}
		switch {
		case c.IsCenter:
			dc.Fill = HexString(opts.Colors.CenterFill)
			dc.Stroke = HexString(opts.Colors.CenterStroke)
			dc.StrokeWidth = 2
		case c.Selected:
			dc.Fill = HexString(opts.Colors.SelectedFill)
		}
		out = append(out, dc)
	}
	return out, nil
}

// svgScale keeps two decimals of every diagram coordinate in svgo's integer
// coordinates; the viewBox maps them back onto Size pixels.
const svgScale = 100

// WriteDiagramSVG writes the honeycomb as an SVG document, one polygon per cell,
// each tagged with data-hex="q,r".
func WriteDiagramSVG(w io.Writer, hc *hexmap.Honeycomb, o hexmap.Orientation, opts DiagramOptions) error {
	cells, err := LayoutDiagram(hc, o, opts)
	if err != nil {
		return fmt.Errorf("layout diagram: %w", err)
	}

	bw := bufio.NewWriter(w)
	side := opts.Size * svgScale
	canvas := svg.New(bw)
	canvas.Startview(opts.Size, opts.Size, 0, 0, side, side)
	canvas.Rect(0, 0, side, side, fmt.Sprintf(`fill="%s"`, HexString(opts.Colors.Background)))
	for _, c := range cells {
		xs := make([]int, len(c.Vertices))
		ys := make([]int, len(c.Vertices))
		for i, v := range c.Vertices {
			xs[i] = scaled(v.X)
			ys[i] = scaled(v.Y)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%d" data-hex="%s"`,
			c.Fill, c.Stroke, c.StrokeWidth*svgScale, c.Hex))
	}
	canvas.End()
	return bw.Flush()
}

func scaled(v float64) int {
	return int(math.Round(v * svgScale))
}
