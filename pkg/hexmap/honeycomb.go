// pkg/hexmap/honeycomb.go
package hexmap

import "fmt"

// DefaultHoneycombRadius is the number of rings drawn around the token.
const DefaultHoneycombRadius = 5

// Cell is one hex of a honeycomb together with its selection state.
type Cell struct {
	Hex
	Selected bool
	IsCenter bool
}

// Honeycomb is the set of hexes within Radius rings of the origin and the cells the
// user picked among them. The center is always selected.
//
// A Honeycomb belongs to a single configuration session and is not safe for
// concurrent use.
type Honeycomb struct {
	radius int
	order  []Hex
	cells  map[Hex]*Cell
}

// NewHoneycomb builds a honeycomb of 3n²+3n+1 cells with only the center selected.
func NewHoneycomb(radius int) (*Honeycomb, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: honeycomb radius %d", ErrInvalidRadius, radius)
	}

	size := 3*radius*radius + 3*radius + 1
	hc := &Honeycomb{
		radius: radius,
		order:  make([]Hex, 0, size),
		cells:  make(map[Hex]*Cell, size),
	}

	// Порядок генерации = порядок отрисовки: q по возрастанию, затем r
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			h := Hex{Q: q, R: r}
			center := h == Origin
			hc.order = append(hc.order, h)
			hc.cells[h] = &Cell{Hex: h, Selected: center, IsCenter: center}
		}
	}
	return hc, nil
}

// Radius returns the number of rings around the center.
func (hc *Honeycomb) Radius() int { return hc.radius }

// Len returns the number of cells.
func (hc *Honeycomb) Len() int { return len(hc.order) }

// Contains reports whether h belongs to the honeycomb.
func (hc *Honeycomb) Contains(h Hex) bool {
	_, ok := hc.cells[h]
	return ok
}

// Cell returns a copy of the cell at h.
func (hc *Honeycomb) Cell(h Hex) (Cell, bool) {
	c, ok := hc.cells[h]
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// Toggle flips the selection of h. The center cannot be deselected and toggling it
// does nothing. Coordinates outside the honeycomb leave every cell untouched and
// return ErrOutOfRange.
func (hc *Honeycomb) Toggle(h Hex) error {
	c, ok := hc.cells[h]
	if !ok {
		return fmt.Errorf("%w: %s (radius %d)", ErrOutOfRange, h, hc.radius)
	}
	if c.IsCenter {
		return nil
	}
	c.Selected = !c.Selected
	return nil
}

// Reset drops every selection except the center.
func (hc *Honeycomb) Reset() {
	for _, c := range hc.cells {
		c.Selected = c.IsCenter
	}
}

// Cells returns all cells in generation order.
func (hc *Honeycomb) Cells() []Cell {
	out := make([]Cell, 0, len(hc.order))
	for _, h := range hc.order {
		out = append(out, *hc.cells[h])
	}
	return out
}

// Selected returns the selected cells in generation order, which is also draw order.
func (hc *Honeycomb) Selected() []Cell {
	out := make([]Cell, 0, hc.SelectedCount())
	for _, h := range hc.order {
		if c := hc.cells[h]; c.Selected {
			out = append(out, *c)
		}
	}
	return out
}

// SelectedCount returns how many cells are selected, the center included.
func (hc *Honeycomb) SelectedCount() int {
	n := 0
	for _, c := range hc.cells {
		if c.Selected {
			n++
		}
	}
	return n
}
