package services

import (
	"testing"

	"resto-backend/internal/models"
)

func TestPriceForFullPortion(t *testing.T) {
	half := 120.0
	item := &models.MenuItem{PriceFull: 220, PriceHalf: &half}
	if got := PriceFor(item, PortionFull); got != 220 {
		t.Errorf("PriceFor(full) = %v, want 220", got)
	}
}

func TestPriceForHalfPortion(t *testing.T) {
	half := 120.0
	item := &models.MenuItem{PriceFull: 220, PriceHalf: &half}
	if got := PriceFor(item, PortionHalf); got != 120 {
		t.Errorf("PriceFor(half) = %v, want 120", got)
	}
}

func TestPriceForHalfWithoutHalfPrice(t *testing.T) {
	// Items without a half price charge full even when half is requested
	item := &models.MenuItem{PriceFull: 220}
	if got := PriceFor(item, PortionHalf); got != 220 {
		t.Errorf("PriceFor(half, no half price) = %v, want 220", got)
	}
}

func TestOrderTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{models.OrderPending, models.OrderPreparing, true},
		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderPreparing, models.OrderReady, true},
		{models.OrderReady, models.OrderServed, true},
		{models.OrderServed, models.OrderCompleted, true},
		{models.OrderPending, models.OrderServed, false},
		{models.OrderCompleted, models.OrderPending, false},
		{models.OrderCancelled, models.OrderPreparing, false},
		{models.OrderReady, models.OrderCancelled, false},
	}
	for _, c := range cases {
		allowed := false
		for _, next := range orderTransitions[c.from] {
			if next == c.to {
				allowed = true
			}
		}
		if allowed != c.allowed {
			t.Errorf("transition %s -> %s: allowed = %v, want %v", c.from, c.to, allowed, c.allowed)
		}
	}
}
