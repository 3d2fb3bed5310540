package scene

import (
	"errors"
	"fmt"

	"who-brings-what/pkg/hexmap"
)

var ErrUnsupportedGrid = errors.New("scene: grid is not hexagonal")

// GridType mirrors the grid kinds a tabletop board can use.
type GridType int

const (
	Gridless GridType = iota
	Square
	HexOddR  // pointy-top, odd rows shoved right
	HexEvenR // pointy-top, even rows shoved right
	HexOddQ  // flat-top, odd columns shoved down
	HexEvenQ // flat-top, even columns shoved down
)

func (g GridType) String() string {
	switch g {
	case Gridless:
		return "gridless"
	case Square:
		return "square"
	case HexOddR:
		return "hex-odd-r"
	case HexEvenR:
		return "hex-even-r"
	case HexOddQ:
		return "hex-odd-q"
	case HexEvenQ:
		return "hex-even-q"
	}
	return fmt.Sprintf("grid(%d)", int(g))
}

// ParseGridType is the inverse of GridType.String.
func ParseGridType(s string) (GridType, error) {
	for g := Gridless; g <= HexEvenQ; g++ {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown grid type %q", s)
}

// Grid describes the board grid: its kind and the size of one cell in pixels.
type Grid struct {
	Type GridType
	Size float64
}

// IsHex reports whether the grid is one of the four hexagonal layouts.
func (g Grid) IsHex() bool {
	switch g.Type {
	case HexOddR, HexEvenR, HexOddQ, HexEvenQ:
		return true
	}
	return false
}

// Orientation maps row-offset grids to pointy-top and column-offset grids to flat-top.
func (g Grid) Orientation() (hexmap.Orientation, error) {
	switch g.Type {
	case HexOddR, HexEvenR:
		return hexmap.PointyTop, nil
	case HexOddQ, HexEvenQ:
		return hexmap.FlatTop, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedGrid, g.Type)
}

// HexRadius is the center-to-vertex distance of one grid cell.
func (g Grid) HexRadius() float64 {
	return g.Size / 2
}

// CellCenter returns the center of cell h relative to the board origin. Hex grids
// read h as axial coordinates, the others as column and row.
func (g Grid) CellCenter(h hexmap.Hex) (hexmap.Point, error) {
	if o, err := g.Orientation(); err == nil {
		return h.ToPixel(g.HexRadius(), o)
	}
	if g.Size <= 0 {
		return hexmap.Point{}, fmt.Errorf("%w: grid size %v", hexmap.ErrInvalidRadius, g.Size)
	}
	return hexmap.Point{X: float64(h.Q) * g.Size, Y: float64(h.R) * g.Size}, nil
}
