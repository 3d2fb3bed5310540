package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	var got []float64
	d.Subscribe(TokenRotated, ListenerFunc(func(e Event) {
		got = append(got, e.Data.(TokenRotation).Rotation)
	}))
	d.Subscribe(OverlayDrawn, ListenerFunc(func(Event) {
		t.Fatal("wrong event type delivered")
	}))

	d.Dispatch(Event{Type: TokenRotated, Data: TokenRotation{TokenID: "a", Rotation: 30}})
	d.Dispatch(Event{Type: TokenRotated, Data: TokenRotation{TokenID: "a", Rotation: 60}})
	assert.Equal(t, []float64{30, 60}, got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	id := d.Subscribe(TokenRotated, ListenerFunc(func(Event) { calls++ }))
	other := d.Subscribe(TokenRotated, ListenerFunc(func(Event) {}))
	require.Equal(t, 2, d.Count(TokenRotated))

	assert.True(t, d.Unsubscribe(id))
	assert.False(t, d.Unsubscribe(id))
	assert.Equal(t, 1, d.Count(TokenRotated))

	d.Dispatch(Event{Type: TokenRotated})
	assert.Zero(t, calls)

	assert.True(t, d.Unsubscribe(other))
	assert.Zero(t, d.Count(TokenRotated))
	assert.NotEqual(t, id.String(), other.String())
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var first Subscription
	seen := 0
	first = d.Subscribe(TokenRotated, ListenerFunc(func(Event) {
		seen++
		d.Unsubscribe(first)
	}))
	d.Subscribe(TokenRotated, ListenerFunc(func(Event) { seen++ }))

	d.Dispatch(Event{Type: TokenRotated})
	assert.Equal(t, 2, seen)

	d.Dispatch(Event{Type: TokenRotated})
	assert.Equal(t, 3, seen)
}
