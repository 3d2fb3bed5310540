package render

import (
	"fmt"
	"image/color"

	"who-brings-what/pkg/hexmap"
)

// Polygon is a closed outline; the last point connects back to the first.
type Polygon []hexmap.Point

// Style describes how an overlay is painted. Alpha applies to both fill and stroke.
type Style struct {
	StrokeEnabled bool
	StrokeColor   color.RGBA
	StrokeWidth   float32
	FillEnabled   bool
	FillColor     color.RGBA
	Alpha         float32
}

// Overlay is a set of polygons drawn around a placement offset.
type Overlay struct {
	TokenID  string
	Polygons []Polygon
	Style    Style
	Offset   hexmap.Point // screen position of the local origin
	Rotation float64      // degrees, clockwise around Offset
}

// BuildPolygons turns cells into hexagons around the local origin, keeping the
// order of cells.
func BuildPolygons(cells []hexmap.Cell, hexRadius float64, o hexmap.Orientation) ([]Polygon, error) {
	polygons := make([]Polygon, 0, len(cells))
	for _, c := range cells {
		center, err := c.ToPixel(hexRadius, o)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", c.Hex, err)
		}
		vs, err := hexmap.HexVertices(center.X, center.Y, hexRadius, o)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", c.Hex, err)
		}
		polygons = append(polygons, Polygon(vs))
	}
	return polygons, nil
}
