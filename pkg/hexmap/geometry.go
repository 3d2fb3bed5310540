// pkg/hexmap/geometry.go
package hexmap

import (
	"fmt"
	"math"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// AxialToPixel projects the axial coordinate (q, r) into pixel space relative to the
// center of hex (0, 0). hexRadius is the center-to-vertex distance.
func AxialToPixel(q, r int, hexRadius float64, o Orientation) (Point, error) {
	if err := checkArgs(hexRadius, o); err != nil {
		return Point{}, err
	}

	fq, fr := float64(q), float64(r)
	if o == PointyTop {
		horizontal := hexRadius * Sqrt3
		vertical := hexRadius * 1.5
		return Point{X: horizontal * (fq + fr/2), Y: vertical * fr}, nil
	}

	horizontal := hexRadius * 1.5
	vertical := hexRadius * Sqrt3
	return Point{X: horizontal * fq, Y: vertical * (fr + fq/2)}, nil
}

// HexVertices returns the six corners of the hexagon centered at (cx, cy).
// Pointy-top hexagons start at the top corner, flat-top hexagons at the right one;
// both go on with increasing angle, which is clockwise on screen (y grows downward).
// Renderers depend on this order.
func HexVertices(cx, cy, hexRadius float64, o Orientation) ([]Point, error) {
	if err := checkArgs(hexRadius, o); err != nil {
		return nil, err
	}

	start := 0.0
	if o == PointyTop {
		start = -math.Pi / 2
	}

	vertices := make([]Point, 6)
	for i := range vertices {
		angle := math.Pi/3*float64(i) + start
		vertices[i] = Point{
			X: cx + hexRadius*math.Cos(angle),
			Y: cy + hexRadius*math.Sin(angle),
		}
	}
	return vertices, nil
}

// PixelToHex конвертирует пиксельные координаты (относительно центра гекса 0,0) в гекс
func PixelToHex(x, y, hexRadius float64, o Orientation) (Hex, error) {
	if err := checkArgs(hexRadius, o); err != nil {
		return Hex{}, err
	}

	if o == PointyTop {
		q := (Sqrt3/3*x - 1.0/3*y) / hexRadius
		r := (2.0 / 3 * y) / hexRadius
		return axialRound(q, r), nil
	}

	q := (2.0 / 3 * x) / hexRadius
	r := (Sqrt3/3*y - 1.0/3*x) / hexRadius
	return axialRound(q, r), nil
}

func checkArgs(hexRadius float64, o Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidOrientation, o)
	}
	if !validRadius(hexRadius) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, hexRadius)
	}
	return nil
}
