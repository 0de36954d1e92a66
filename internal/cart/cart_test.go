package cart

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAddAccumulatesSameKey(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 1, Price: 120, Name: "Paneer Tikka"})
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 2, Price: 120, Name: "Paneer Tikka"})

	if len(s.Items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(s.Items))
	}
	if s.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", s.Items[0].Quantity)
	}
}

func TestAddDifferentPortionIsSeparateEntry(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 1})
	s.Add(Entry{ItemID: "a", Portion: "half", Quantity: 1})

	if len(s.Items) != 2 {
		t.Fatalf("half and full portions must be separate entries, got %d", len(s.Items))
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 1})
	s.Add(Entry{ItemID: "b", Portion: "full", Quantity: 1})
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 1}) // accumulate, not reorder
	s.Add(Entry{ItemID: "c", Portion: "half", Quantity: 1})

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if s.Items[i].ItemID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, s.Items[i].ItemID)
		}
	}
}

func TestUpdateQuantityClampsAndRemoves(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 3})
	s.UpdateQuantity("a", "full", -5)

	if len(s.Items) != 0 {
		t.Fatalf("entry floored to 0 must be removed, got %d entries", len(s.Items))
	}
}

func TestUpdateQuantityDelta(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 3})
	s.UpdateQuantity("a", "full", -1)

	if s.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", s.Items[0].Quantity)
	}

	s.UpdateQuantity("missing", "full", 5) // unknown key: no-op
	if len(s.Items) != 1 {
		t.Fatalf("update of unknown key must not add entries")
	}
}

func TestRemove(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 1})
	s.Add(Entry{ItemID: "b", Portion: "half", Quantity: 1})

	s.Remove("a", "full")
	if len(s.Items) != 1 || s.Items[0].ItemID != "b" {
		t.Fatalf("expected only b left, got %+v", s.Items)
	}

	s.Remove("a", "full") // absent: no-op
	if len(s.Items) != 1 {
		t.Fatal("remove of absent key must be a no-op")
	}
}

func TestTotal(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 2, Price: 150})
	s.Add(Entry{ItemID: "b", Portion: "half", Quantity: 1, Price: 80})

	if got := s.Total(); got != 380 {
		t.Fatalf("expected total 380, got %v", got)
	}
}

func TestSessionBlobRoundTrip(t *testing.T) {
	s := &Session{
		RestaurantID: "rest-1",
		CustomerName: "Asha",
		TableID:      "tbl-4",
		TableNumber:  "4",
		OrderType:    "dine-in",
		OrderIDs:     []string{"ord-1", "ord-2"},
	}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 2, Price: 150, Name: "Dal Makhani"})
	s.Add(Entry{ItemID: "b", Portion: "half", Quantity: 1, Price: 80, Name: "Jeera Rice"})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	restored := &Session{}
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(s, restored) {
		t.Fatalf("round-trip mismatch:\n before %+v\n after  %+v", s, restored)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := &Session{}
	s.Add(Entry{ItemID: "a", Portion: "full", Quantity: 1})

	snap := s.clone()
	s.UpdateQuantity("a", "full", 4)

	if snap.Items[0].Quantity != 1 {
		t.Fatal("snapshot mutated along with the session")
	}
}
