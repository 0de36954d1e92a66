package services

import (
	"testing"

	"resto-backend/internal/models"
)

func TestDiscountPercent(t *testing.T) {
	offer := &models.Offer{Type: models.OfferPercent, Value: 10, MinAmount: 200}
	if got := Discount(offer, 500); got != 50 {
		t.Errorf("Discount = %v, want 50", got)
	}
}

func TestDiscountBelowMinimum(t *testing.T) {
	offer := &models.Offer{Type: models.OfferFlat, Value: 100, MinAmount: 300}
	if got := Discount(offer, 250); got != 0 {
		t.Errorf("Discount = %v, want 0 below minimum", got)
	}
}

func TestDiscountFlatCappedAtTotal(t *testing.T) {
	offer := &models.Offer{Type: models.OfferFlat, Value: 500}
	if got := Discount(offer, 300); got != 300 {
		t.Errorf("Discount = %v, want 300 (capped at total)", got)
	}
}
