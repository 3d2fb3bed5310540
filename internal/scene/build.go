package scene

import (
	"fmt"

	"who-brings-what/internal/config"
	"who-brings-what/internal/event"
	"who-brings-what/pkg/hexmap"
)

// FromConfig builds a board whose cell (0, 0) is centered on origin.
func FromConfig(cfg config.BoardConfig, origin hexmap.Point, d *event.Dispatcher) (*Scene, error) {
	gridType, err := ParseGridType(cfg.Grid)
	if err != nil {
		return nil, err
	}
	s := New(Grid{Type: gridType, Size: cfg.CellSize}, d)

	for _, tc := range cfg.Tokens {
		center, err := s.Grid.CellCenter(hexmap.Hex{Q: tc.Q, R: tc.R})
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tc.ID, err)
		}
		name := tc.Name
		if name == "" {
			name = tc.ID
		}
		half := cfg.CellSize / 2
		if err := s.AddToken(Token{
			ID:   tc.ID,
			Name: name,
			X:    origin.X + center.X - half,
			Y:    origin.Y + center.Y - half,
		}); err != nil {
			return nil, err
		}
	}
	return s, nil
}
