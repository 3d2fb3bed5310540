package scene

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"who-brings-what/internal/event"
	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/utils"
)

var (
	ErrNoTarget     = errors.New("scene: no token selected")
	ErrUnknownToken = errors.New("scene: unknown token")
)

// Token is a piece on the board. X and Y are the top-left corner; a token covers
// one grid cell.
type Token struct {
	ID       string
	Name     string
	X, Y     float64
	Rotation float64 // degrees
}

// Scene is the board: grid, tokens and the tokens the user currently controls.
type Scene struct {
	Grid       Grid
	Dispatcher *event.Dispatcher

	tokens     []*Token
	byID       map[string]*Token
	controlled []string
}

func New(grid Grid, dispatcher *event.Dispatcher) *Scene {
	return &Scene{
		Grid:       grid,
		Dispatcher: dispatcher,
		byID:       make(map[string]*Token),
	}
}

// AddToken places t on the board. IDs must be unique.
func (s *Scene) AddToken(t Token) error {
	if _, ok := s.byID[t.ID]; ok {
		return fmt.Errorf("token %q already on the board", t.ID)
	}
	tok := t
	s.tokens = append(s.tokens, &tok)
	s.byID[t.ID] = &tok
	return nil
}

// Token returns a copy of the token with the given id.
func (s *Scene) Token(id string) (Token, bool) {
	t, ok := s.byID[id]
	if !ok {
		return Token{}, false
	}
	return *t, true
}

// Tokens returns copies of all tokens in placement order.
func (s *Scene) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = *t
	}
	return out
}

// Center returns the pixel center of a token.
func (s *Scene) Center(t Token) hexmap.Point {
	half := s.Grid.Size / 2
	return hexmap.Point{X: t.X + half, Y: t.Y + half}
}

// TokenAt returns the topmost token whose cell contains (x, y).
func (s *Scene) TokenAt(x, y float64) (Token, bool) {
	for i := len(s.tokens) - 1; i >= 0; i-- {
		t := s.tokens[i]
		if x >= t.X && x < t.X+s.Grid.Size && y >= t.Y && y < t.Y+s.Grid.Size {
			return *t, true
		}
	}
	return Token{}, false
}

// Control makes id the only controlled token.
func (s *Scene) Control(id string) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownToken, id)
	}
	s.controlled = []string{id}
	return nil
}

// ToggleControl adds id to the controlled set or removes it.
func (s *Scene) ToggleControl(id string) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownToken, id)
	}
	for i, c := range s.controlled {
		if c == id {
			s.controlled = append(s.controlled[:i:i], s.controlled[i+1:]...)
			return nil
		}
	}
	s.controlled = append(s.controlled, id)
	return nil
}

// Release clears the controlled set.
func (s *Scene) Release() {
	s.controlled = nil
}

// IsControlled reports whether id is in the controlled set.
func (s *Scene) IsControlled(id string) bool {
	for _, c := range s.controlled {
		if c == id {
			return true
		}
	}
	return false
}

// Controlled returns the controlled tokens in the order they were picked.
func (s *Scene) Controlled() []Token {
	out := make([]Token, 0, len(s.controlled))
	for _, id := range s.controlled {
		out = append(out, *s.byID[id])
	}
	return out
}

// SelectedTarget returns the first controlled token.
func (s *Scene) SelectedTarget() (Token, error) {
	if len(s.controlled) == 0 {
		return Token{}, ErrNoTarget
	}
	return *s.byID[s.controlled[0]], nil
}

// Rotate sets the rotation of a token, normalized to [0, 360), and announces it.
func (s *Scene) Rotate(id string, degrees float64) error {
	t, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownToken, id)
	}
	t.Rotation = utils.NormalizeDegrees(degrees)
	log.Debug().Str("token", id).Float64("rotation", t.Rotation).Msg("token rotated")

	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(event.Event{
			Type: event.TokenRotated,
			Data: event.TokenRotation{TokenID: id, Rotation: t.Rotation},
		})
	}
	return nil
}
