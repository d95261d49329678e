package hub

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"tickerfeed/internal/model"
)

// DefaultSubscriberBuffer is the per-subscriber delivery queue depth.
const DefaultSubscriberBuffer = 16

// frame is the wire format delivered to subscribers, one JSON object per
// websocket message.
type frame struct {
	Symbol    string `json:"symbol"`
	Price     string `json:"price"`
	EventTime string `json:"event_time"` // ISO-8601 UTC
}

// Subscriber is one live delivery channel. Its lifetime is bounded by the
// client connection; there is no persisted identity.
type Subscriber struct {
	ch chan []byte
}

// Updates returns the delivery channel. It is closed when the subscriber
// leaves, is dropped as a slow consumer, or the hub shuts down.
func (s *Subscriber) Updates() <-chan []byte {
	return s.ch
}

// Hub maintains the set of connected subscribers and delivers every
// published update to all of them.
type Hub struct {
	logger     *slog.Logger
	bufferSize int

	mu          sync.Mutex
	subscribers map[*Subscriber]struct{}
	closed      bool
}

// NewHub creates a hub with the given per-subscriber queue depth.
func NewHub(bufferSize int, logger *slog.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = DefaultSubscriberBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:      logger,
		bufferSize:  bufferSize,
		subscribers: make(map[*Subscriber]struct{}),
	}
}

// Join registers a new subscriber. The subscriber only receives updates
// published after joining; there is no backlog.
func (h *Hub) Join() *Subscriber {
	sub := &Subscriber{ch: make(chan []byte, h.bufferSize)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(sub.ch)
		return sub
	}
	h.subscribers[sub] = struct{}{}
	h.logger.Debug("subscriber joined", "subscribers", len(h.subscribers))
	return sub
}

// Leave removes a subscriber and closes its channel. Safe to call
// concurrently with Publish and idempotent for already-removed subscribers.
func (h *Hub) Leave(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sub)
}

// Publish delivers the update to every currently-registered subscriber.
// The payload is marshalled once; delivery is per-subscriber FIFO. A
// subscriber whose queue is full is dropped rather than blocking the
// publisher.
func (h *Hub) Publish(u model.TickerUpdate) {
	payload, err := json.Marshal(frame{
		Symbol:    u.Symbol,
		Price:     u.Price,
		EventTime: u.EventTime.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		h.logger.Error("failed to marshal update", "symbol", u.Symbol, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var slow []*Subscriber
	for sub := range h.subscribers {
		select {
		case sub.ch <- payload:
		default:
			slow = append(slow, sub)
		}
	}
	for _, sub := range slow {
		h.logger.Warn("dropping slow subscriber", "queue", h.bufferSize)
		h.remove(sub)
	}
}

// Count returns the number of registered subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Close removes all subscribers and rejects future joins.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subscribers {
		h.remove(sub)
	}
}

// remove deletes and closes a subscriber. Caller holds h.mu.
func (h *Hub) remove(sub *Subscriber) {
	if _, ok := h.subscribers[sub]; !ok {
		return
	}
	delete(h.subscribers, sub)
	close(sub.ch)
}
