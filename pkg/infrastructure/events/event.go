// Package events provides the notification backbone of the execution
// subsystem: every state change of interest (work order transitions, order
// start/completion, plan attachment, stock postings) is appended to an event
// stream keyed by the owning entity, and downstream effects subscribe by
// event type. Delivery is synchronous and in append order, so a subscriber
// observes exactly one event per genuine transition.
package events

import "time"

// Event is one immutable fact recorded against a stream
type Event struct {
	Type     string
	StreamID string
	Data     any
	Time     time.Time
	Version  int
}

// Handler consumes events of the types it subscribed to. A handler error is
// logged and does not fail the append that produced the event.
type Handler func(Event) error

// Store is an append-only event log with type-based subscriptions
type Store interface {
	Append(streamID string, event Event) error
	Read(streamID string, fromVersion int) ([]Event, error)
	ReadAll(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler Handler)
}

// NewEvent creates an event timestamped now. The store assigns the version
// when the event is appended.
func NewEvent(eventType, streamID string, data any) Event {
	return Event{
		Type:     eventType,
		StreamID: streamID,
		Data:     data,
		Time:     time.Now(),
	}
}
