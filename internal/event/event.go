// internal/event/event.go
package event

import "github.com/google/uuid"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription identifies one Subscribe call. It is the only way to unsubscribe.
type Subscription uuid.UUID

func (s Subscription) String() string { return uuid.UUID(s).String() }

type subscriber struct {
	id       Subscription
	listener Listener
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]subscriber
	index     map[Subscription]EventType
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
		index:     make(map[Subscription]EventType),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	id := Subscription(uuid.New())
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: id, listener: listener})
	d.index[id] = eventType
	return id
}

// Unsubscribe — отписка; false, если подписки уже нет
func (d *Dispatcher) Unsubscribe(id Subscription) bool {
	eventType, ok := d.index[id]
	if !ok {
		return false
	}
	delete(d.index, id)

	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(d.listeners[eventType]) == 0 {
		delete(d.listeners, eventType)
	}
	return true
}

// Count returns the number of live subscriptions for eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch — отправка события всем подписчикам.
// Listeners may unsubscribe while the event is being delivered.
func (d *Dispatcher) Dispatch(event Event) {
	subs := d.listeners[event.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.listener.OnEvent(event)
	}
}
