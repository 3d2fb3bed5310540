// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"
	"strings"

	"who-brings-what/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// Origin — центр любой соты.
var Origin = Hex{}

// Orientation describes how hexagons sit on the board.
type Orientation int

const (
	PointyTop Orientation = iota + 1 // вершина вверх, ряды со смещением
	FlatTop                          // сторона вверх, колонки со смещением
)

// Valid reports whether o is one of the supported orientations.
func (o Orientation) Valid() bool {
	return o == PointyTop || o == FlatTop
}

func (o Orientation) String() string {
	switch o {
	case PointyTop:
		return "pointy-top"
	case FlatTop:
		return "flat-top"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "pointy", "pointy-top", "flat" and "flat-top" (any case).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pointy", "pointy-top", "pointytop":
		return PointyTop, nil
	case "flat", "flat-top", "flattop":
		return FlatTop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

// ToPixel конвертирует гекс в пиксельные координаты относительно центра соты
func (h Hex) ToPixel(hexRadius float64, o Orientation) (Point, error) {
	return AxialToPixel(h.Q, h.R, hexRadius, o)
}

func (h Hex) String() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() []Hex {
	return []Hex{
		{h.Q + 1, h.R},
		{h.Q + 1, h.R - 1},
		{h.Q, h.R - 1},
		{h.Q - 1, h.R},
		{h.Q - 1, h.R + 1},
		{h.Q, h.R + 1},
	}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// InRange reports whether h lies in the neighborhood of radius n around the origin:
// |q| <= n, |r| <= n and |q+r| <= n.
func (h Hex) InRange(n int) bool {
	return h.Distance(Origin) <= n
}
