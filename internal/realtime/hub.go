package realtime

import (
	"log"
	"sync"
)

const subscriptionBuffer = 64

// Subscription is one consumer's view of the change stream: a lazy,
// non-restartable sequence of events in publish order. Events for a given
// row arrive in commit order on a single subscription; no ordering holds
// across tables or across subscriptions.
type Subscription struct {
	C      chan Event
	tables map[string]bool
	hub    *Hub
}

// Close detaches the subscription from the hub and closes C
func (s *Subscription) Close() {
	s.hub.unsubscribe(s)
}

// Hub fans row-change events out to subscribers. Publishers never block:
// a subscriber that falls subscriptionBuffer events behind is dropped,
// matching best-effort freshness (missed events are not backfilled).
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]bool)}
}

// Subscribe registers a consumer for the given tables. With no tables,
// the subscription receives every event.
func (h *Hub) Subscribe(tables ...string) *Subscription {
	sub := &Subscription{
		C:      make(chan Event, subscriptionBuffer),
		tables: make(map[string]bool, len(tables)),
		hub:    h,
	}
	for _, t := range tables {
		sub.tables[t] = true
	}

	h.mu.Lock()
	h.subs[sub] = true
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	if h.subs[sub] {
		delete(h.subs, sub)
		close(sub.C)
	}
	h.mu.Unlock()
}

// Publish delivers an event to every matching subscription
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	var dropped []*Subscription
	for sub := range h.subs {
		if len(sub.tables) > 0 && !sub.tables[ev.Table] {
			continue
		}
		select {
		case sub.C <- ev:
		default:
			dropped = append(dropped, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range dropped {
		log.Printf("[Realtime] Dropping slow subscriber (table=%s)", ev.Table)
		h.unsubscribe(sub)
	}
}

// SubscriberCount returns the number of live subscriptions
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
