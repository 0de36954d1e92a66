package realtime

import (
	"testing"
)

func TestHubDeliversInPublishOrder(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(TableStaff)
	defer sub.Close()

	for i := 0; i < 5; i++ {
		hub.Publish(Event{Type: EventUpdate, Table: TableStaff, New: i})
	}

	for i := 0; i < 5; i++ {
		ev := <-sub.C
		if ev.New.(int) != i {
			t.Fatalf("event %d delivered out of order: got %v", i, ev.New)
		}
	}
}

func TestHubFiltersByTable(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(TableStaff)
	defer sub.Close()

	hub.Publish(Event{Type: EventInsert, Table: TableOrders})
	hub.Publish(Event{Type: EventDelete, Table: TableStaff})

	ev := <-sub.C
	if ev.Table != TableStaff {
		t.Fatalf("expected staff event, got table %q", ev.Table)
	}
	if ev.Type != EventDelete {
		t.Fatalf("expected DELETE, got %s", ev.Type)
	}
	select {
	case ev := <-sub.C:
		t.Fatalf("unexpected extra event: %+v", ev)
	default:
	}
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	// Never read: overflow the buffer by one
	for i := 0; i <= subscriptionBuffer; i++ {
		hub.Publish(Event{Type: EventInsert, Table: TableOrders, New: i})
	}

	if got := hub.SubscriberCount(); got != 0 {
		t.Fatalf("slow subscriber not dropped, count = %d", got)
	}

	// Channel must be closed after the drop
	drained := 0
	for range sub.C {
		drained++
	}
	if drained != subscriptionBuffer {
		t.Fatalf("expected %d buffered events, drained %d", subscriptionBuffer, drained)
	}
}

func TestHubUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(TableStaff)
	sub.Close()
	sub.Close() // second close must not panic

	if got := hub.SubscriberCount(); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}
}
