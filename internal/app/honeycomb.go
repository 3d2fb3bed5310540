package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"who-brings-what/internal/event"
	"who-brings-what/internal/scene"
	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/render"
)

var (
	ErrEmptySelection = errors.New("app: no hex selected")
	ErrNoOverlay      = errors.New("app: no honeycomb on token")
)

// Notifier shows short messages to the user.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
}

// Sink draws overlays. render.Layer is the implementation used on screen.
type Sink interface {
	AddOverlay(o render.Overlay) render.Handle
	RemoveOverlay(h render.Handle) error
	FollowRotation(h render.Handle, tokenID string, d *event.Dispatcher) error
}

// Session is one run of the configuration dialog for a single token.
type Session struct {
	Target      scene.Token
	Orientation hexmap.Orientation
	HexRadius   float64
	Honeycomb   *hexmap.Honeycomb
	Options     Options
}

// Macro is the honeycomb highlight workflow: pick a token, configure cells and
// style, draw the overlay, clear it again. It owns one overlay handle per token.
type Macro struct {
	scene    *scene.Scene
	sink     Sink
	notifier Notifier
	defaults Options
	radius   int
	overlays map[string]render.Handle
}

func NewMacro(s *scene.Scene, sink Sink, notifier Notifier, defaults Options, radius int) *Macro {
	return &Macro{
		scene:    s,
		sink:     sink,
		notifier: notifier,
		defaults: defaults,
		radius:   radius,
		overlays: make(map[string]render.Handle),
	}
}

// Begin validates the target and the grid and opens a configuration session.
// Nothing is computed when either check fails. A honeycomb already drawn on the
// target is removed.
func (m *Macro) Begin() (*Session, error) {
	target, err := m.scene.SelectedTarget()
	if err != nil {
		m.notifier.Warn("Select a token first.")
		return nil, err
	}

	orientation, err := m.scene.Grid.Orientation()
	if err != nil {
		m.notifier.Warn("This macro only works on hexagonal grids!")
		return nil, err
	}

	hexRadius := m.scene.Grid.HexRadius()
	if hexRadius <= 0 {
		m.notifier.Warn("The grid has no cell size.")
		return nil, fmt.Errorf("%w: grid size %v", hexmap.ErrInvalidRadius, m.scene.Grid.Size)
	}

	hc, err := hexmap.NewHoneycomb(m.radius)
	if err != nil {
		return nil, err
	}

	if err := m.remove(target.ID); err != nil && !errors.Is(err, ErrNoOverlay) {
		return nil, err
	}

	log.Info().
		Str("token", target.ID).
		Stringer("orientation", orientation).
		Float64("hex_radius", hexRadius).
		Msg("honeycomb session started")

	return &Session{
		Target:      target,
		Orientation: orientation,
		HexRadius:   hexRadius,
		Honeycomb:   hc,
		Options:     m.defaults,
	}, nil
}

// Draw puts the selected cells of the session on the board under the target token.
func (m *Macro) Draw(sess *Session) (render.Handle, error) {
	if err := sess.Options.Validate(); err != nil {
		m.notifier.Warn("Invalid honeycomb settings.")
		return render.Handle{}, err
	}

	cells := sess.Honeycomb.Selected()
	if len(cells) == 0 {
		m.notifier.Warn("Select at least one hex!")
		return render.Handle{}, ErrEmptySelection
	}

	polygons, err := render.BuildPolygons(cells, sess.HexRadius, sess.Orientation)
	if err != nil {
		return render.Handle{}, fmt.Errorf("build honeycomb: %w", err)
	}

	target, ok := m.scene.Token(sess.Target.ID)
	if !ok {
		m.notifier.Warn("The token is gone.")
		return render.Handle{}, fmt.Errorf("%w: %s", scene.ErrUnknownToken, sess.Target.ID)
	}

	if err := m.remove(target.ID); err != nil && !errors.Is(err, ErrNoOverlay) {
		return render.Handle{}, err
	}

	overlay := render.Overlay{
		TokenID:  target.ID,
		Polygons: polygons,
		Style:    sess.Options.Style(),
		Offset:   m.scene.Center(target),
	}
	if sess.Options.RotateWithToken {
		overlay.Rotation = target.Rotation
	}

	h := m.sink.AddOverlay(overlay)
	if sess.Options.RotateWithToken && m.scene.Dispatcher != nil {
		if err := m.sink.FollowRotation(h, target.ID, m.scene.Dispatcher); err != nil {
			_ = m.sink.RemoveOverlay(h)
			return render.Handle{}, fmt.Errorf("follow rotation: %w", err)
		}
	}
	m.overlays[target.ID] = h

	log.Info().
		Str("token", target.ID).
		Int("cells", len(cells)).
		Str("handle", h.String()).
		Msg("honeycomb drawn")
	m.dispatch(event.OverlayDrawn, target.ID, len(cells))
	m.notifier.Info(fmt.Sprintf("Honeycomb drawn with %d hex(es)!", len(cells)))
	return h, nil
}

// Clear removes the honeycomb of tokenID.
func (m *Macro) Clear(tokenID string) error {
	if err := m.remove(tokenID); err != nil {
		if errors.Is(err, ErrNoOverlay) {
			m.notifier.Warn("No honeycomb to remove!")
		}
		return err
	}
	m.notifier.Info("Honeycomb removed!")
	return nil
}

// Handle returns the overlay handle held for tokenID.
func (m *Macro) Handle(tokenID string) (render.Handle, bool) {
	h, ok := m.overlays[tokenID]
	return h, ok
}

func (m *Macro) remove(tokenID string) error {
	h, ok := m.overlays[tokenID]
	if !ok {
		return ErrNoOverlay
	}
	delete(m.overlays, tokenID)
	if err := m.sink.RemoveOverlay(h); err != nil {
		return fmt.Errorf("remove overlay of %s: %w", tokenID, err)
	}
	log.Info().Str("token", tokenID).Str("handle", h.String()).Msg("honeycomb removed")
	m.dispatch(event.OverlayCleared, tokenID, 0)
	return nil
}

func (m *Macro) dispatch(t event.EventType, tokenID string, cells int) {
	if m.scene.Dispatcher == nil {
		return
	}
	m.scene.Dispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.OverlayChange{TokenID: tokenID, Cells: cells},
	})
}
