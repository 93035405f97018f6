package notify

import (
	"sync"

	"github.com/google/uuid"
)

const subscriberBuffer = 16

// Hub fans an event out to every currently connected subscriber. There is
// no replay for late subscribers and no ordering contract across concurrent
// broadcasts; a subscriber that falls behind its buffer loses the event.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]chan Event)}
}

// Subscribe registers a new client and returns its id and event channel.
// The caller must Unsubscribe when the client disconnects.
func (h *Hub) Subscribe() (string, <-chan Event) {
	id := uuid.NewString()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	return id, ch
}

func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers ev to every subscriber without blocking. Full buffers
// drop the event for that subscriber.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
