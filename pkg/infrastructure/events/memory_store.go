package events

import (
	"log/slog"
	"sync"
)

// InMemoryStore is the default Store: per-stream slices plus a global log.
// Subscribers are notified synchronously, in append order, after the event
// is recorded.
type InMemoryStore struct {
	mutex       sync.RWMutex
	streams     map[string][]Event
	allEvents   []Event
	subscribers map[string][]Handler
}

// NewInMemoryStore creates an empty in-memory event store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]Handler),
	}
}

// Verify interface compliance
var _ Store = (*InMemoryStore)(nil)

// Append records the event on its stream, assigns its version and notifies
// subscribers before returning.
func (s *InMemoryStore) Append(streamID string, event Event) error {
	s.mutex.Lock()
	event.StreamID = streamID
	event.Version = len(s.streams[streamID]) + 1
	s.streams[streamID] = append(s.streams[streamID], event)
	s.allEvents = append(s.allEvents, event)
	handlers := append([]Handler(nil), s.subscribers[event.Type]...)
	s.mutex.Unlock()

	for _, handle := range handlers {
		if err := handle(event); err != nil {
			slog.Error("event handler failed", "type", event.Type, "stream", event.StreamID, "error", err)
		}
	}
	return nil
}

// Read returns a stream's events starting at the given version
func (s *InMemoryStore) Read(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}
	return append([]Event(nil), stream[fromVersion-1:]...), nil
}

// ReadAll returns every recorded event starting at the given position
func (s *InMemoryStore) ReadAll(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}
	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}
	return append([]Event(nil), s.allEvents[fromPosition:]...), nil
}

// Subscribe registers a handler for the given event types
func (s *InMemoryStore) Subscribe(eventTypes []string, handler Handler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
}
