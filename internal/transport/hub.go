package transport

import (
	"log/slog"
	"sync"
)

const defaultSubscriberBuffer = 16

// Event is one live update pushed to browsers.
type Event struct {
	Name string
	Data []byte
}

// Hub fans published events out to SSE subscribers. Publish never blocks:
// a subscriber whose buffer is full misses the event, which is fine because
// every list event carries the whole list.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	buffer int
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		subs:   make(map[chan Event]struct{}),
		buffer: defaultSubscriberBuffer,
		logger: logger,
	}
}

// Subscribe registers a subscriber. The returned func unsubscribes and closes
// the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish sends an event to every subscriber.
func (h *Hub) Publish(name string, data []byte) {
	ev := Event{Name: name, Data: append([]byte(nil), data...)}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("dropping live update for slow subscriber", "event", name)
		}
	}
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
