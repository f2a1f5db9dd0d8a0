// Package events provides the typed event bus the designer core uses
// to notify UI collaborators (properties panels, status bars, preview
// surfaces) about state changes without depending on them.
package events

// Event is the marker interface for everything published on the bus.
type Event interface {
	eventName() string
}

// Handler receives published events. Handlers run synchronously on the
// publishing goroutine, matching the single-threaded editing model.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed.
type Subscription int

// Bus is a synchronous publish/subscribe channel for designer events.
// It is not safe for concurrent use; the designer core is
// single-threaded by contract.
type Bus struct {
	handlers map[Subscription]Handler
	next     Subscription
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Subscription]Handler)}
}

// Subscribe registers a handler for all events and returns its
// subscription token.
func (b *Bus) Subscribe(h Handler) Subscription {
	b.next++
	b.handlers[b.next] = h
	return b.next
}

// Unsubscribe removes a previously registered handler. Unknown tokens
// are ignored.
func (b *Bus) Unsubscribe(s Subscription) {
	delete(b.handlers, s)
}

// Publish delivers the event to every subscribed handler. Delivery
// order is unspecified. A nil bus drops events, so headless model code
// never needs a nil check.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, h := range b.handlers {
		h(e)
	}
}
