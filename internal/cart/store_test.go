package cart

import (
	"context"
	"errors"
	"testing"
)

// Redis is never initialized under test, so every persist fails. That makes
// the store's failure path directly observable: the mutation must roll back
// and the error must carry ErrUnavailable.
func TestMutatePersistFailureRollsBack(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	_, err := st.Mutate(ctx, "sess-1", func(s *Session) {
		s.Add(Entry{ItemID: "item-1", Portion: "full", Quantity: 2, Price: 120})
	})
	if err == nil {
		t.Fatal("expected persist failure without a cache backend")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error does not wrap ErrUnavailable: %v", err)
	}

	sess, err := st.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sess.Items) != 0 {
		t.Errorf("failed mutation leaked into the session: %+v", sess.Items)
	}
}
