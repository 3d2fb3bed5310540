// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DiagramColors holds the palette of the honeycomb picker diagram.
type DiagramColors struct {
	Background   color.RGBA
	CenterFill   color.RGBA
	SelectedFill color.RGBA
	EmptyFill    color.RGBA
	Stroke       color.RGBA
	CenterStroke color.RGBA
}

// DefaultDiagramColors: green token, blue picked cells, white free cells.
var DefaultDiagramColors = DiagramColors{
	Background:   color.RGBA{250, 250, 250, 255},
	CenterFill:   color.RGBA{76, 175, 80, 255},
	SelectedFill: color.RGBA{33, 150, 243, 255},
	EmptyFill:    color.RGBA{255, 255, 255, 255},
	Stroke:       color.RGBA{102, 102, 102, 255},
	CenterStroke: DarkenColor(color.RGBA{76, 175, 80, 255}),
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ParseHexColor parses "#rrggbb", "rrggbb" or "0xrrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "#")
	v = strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
	if len(v) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}

// HexString formats c as "#rrggbb", alpha is dropped.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with alpha a in [0, 1].
func WithAlpha(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}
