package render

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"who-brings-what/internal/event"
)

var ErrUnknownHandle = errors.New("render: unknown overlay handle")

// Handle is returned by AddOverlay; the owner passes it back to RemoveOverlay.
type Handle uuid.UUID

func (h Handle) String() string { return uuid.UUID(h).String() }

type layerEntry struct {
	overlay    Overlay
	dispatcher *event.Dispatcher
	sub        event.Subscription
	following  bool
}

// Layer keeps the overlays currently on the board and draws them under the tokens.
type Layer struct {
	entries map[Handle]*layerEntry
	order   []Handle
	painter *hexPainter
}

func NewLayer() *Layer {
	return &Layer{
		entries: make(map[Handle]*layerEntry),
	}
}

// AddOverlay stores o and returns the handle that owns it.
func (l *Layer) AddOverlay(o Overlay) Handle {
	h := Handle(uuid.New())
	l.entries[h] = &layerEntry{overlay: o}
	l.order = append(l.order, h)
	log.Debug().
		Str("handle", h.String()).
		Str("token", o.TokenID).
		Int("polygons", len(o.Polygons)).
		Msg("overlay added")
	return h
}

// RemoveOverlay drops the overlay and releases its rotation subscription, if any.
func (l *Layer) RemoveOverlay(h Handle) error {
	e, ok := l.entries[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	if e.following {
		e.dispatcher.Unsubscribe(e.sub)
	}
	delete(l.entries, h)
	for i, other := range l.order {
		if other == h {
			l.order = append(l.order[:i:i], l.order[i+1:]...)
			break
		}
	}
	log.Debug().Str("handle", h.String()).Str("token", e.overlay.TokenID).Msg("overlay removed")
	return nil
}

// SetRotation changes the rotation of an overlay, in degrees.
func (l *Layer) SetRotation(h Handle, degrees float64) error {
	e, ok := l.entries[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	e.overlay.Rotation = degrees
	return nil
}

// FollowRotation keeps the overlay rotation in sync with TokenRotated events of tokenID
// until the overlay is removed. Calling it again replaces the previous subscription.
func (l *Layer) FollowRotation(h Handle, tokenID string, d *event.Dispatcher) error {
	e, ok := l.entries[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	if e.following {
		e.dispatcher.Unsubscribe(e.sub)
	}
	e.dispatcher = d
	e.sub = d.Subscribe(event.TokenRotated, event.ListenerFunc(func(ev event.Event) {
		rot, ok := ev.Data.(event.TokenRotation)
		if !ok || rot.TokenID != tokenID {
			return
		}
		_ = l.SetRotation(h, rot.Rotation)
	}))
	e.following = true
	return nil
}

// Overlay returns a copy of the overlay behind h.
func (l *Layer) Overlay(h Handle) (Overlay, bool) {
	e, ok := l.entries[h]
	if !ok {
		return Overlay{}, false
	}
	return e.overlay, true
}

// Len returns the number of overlays on the layer.
func (l *Layer) Len() int { return len(l.order) }
