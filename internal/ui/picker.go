package ui

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/render"
)

// Picker is the clickable honeycomb diagram of the configuration dialog.
// The token sits in the middle cell; clicking another cell toggles it.
type Picker struct {
	X, Y        float64 // top-left corner of the diagram square
	honeycomb   *hexmap.Honeycomb
	orientation hexmap.Orientation
	opts        render.DiagramOptions
}

func NewPicker(x, y float64, hc *hexmap.Honeycomb, o hexmap.Orientation, opts render.DiagramOptions) *Picker {
	return &Picker{X: x, Y: y, honeycomb: hc, orientation: o, opts: opts}
}

// HexAt maps a screen position to a honeycomb cell.
func (p *Picker) HexAt(x, y int) (hexmap.Hex, bool) {
	half := float64(p.opts.Size) / 2
	lx := float64(x) - p.X - half
	ly := float64(y) - p.Y - half
	h, err := hexmap.PixelToHex(lx, ly, p.opts.HexRadius, p.orientation)
	if err != nil || !p.honeycomb.Contains(h) {
		return hexmap.Hex{}, false
	}
	return h, true
}

// HandleClick toggles the cell under (x, y). It reports whether a cell was hit.
func (p *Picker) HandleClick(x, y int) bool {
	h, ok := p.HexAt(x, y)
	if !ok {
		return false
	}
	if err := p.honeycomb.Toggle(h); err != nil {
		return !errors.Is(err, hexmap.ErrOutOfRange)
	}
	return true
}

func (p *Picker) Draw(screen *ebiten.Image) {
	cells, err := render.LayoutDiagram(p.honeycomb, p.orientation, p.opts)
	if err != nil {
		return
	}
	size := float32(p.opts.Size)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), size, size, p.opts.Colors.Background, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), size, size, 1, color.RGBA{204, 204, 204, 255}, false)

	for _, c := range cells {
		fill, stroke := p.cellColors(c.Cell)
		pts := make([]hexmap.Point, len(c.Vertices))
		for i, v := range c.Vertices {
			pts[i] = hexmap.Point{X: v.X + p.X, Y: v.Y + p.Y}
		}
		render.DrawPolygon(screen, pts, fill, stroke, float32(c.StrokeWidth))
	}
}

func (p *Picker) cellColors(c hexmap.Cell) (fill, stroke color.RGBA) {
	colors := p.opts.Colors
	switch {
	case c.IsCenter:
		return colors.CenterFill, colors.CenterStroke
	case c.Selected:
		return colors.SelectedFill, colors.Stroke
	default:
		return colors.EmptyFill, colors.Stroke
	}
}
