package services

import (
	"context"
	"fmt"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
)

type OfferService struct {
	offerRepo *repositories.OfferRepository
}

func NewOfferService(offerRepo *repositories.OfferRepository) *OfferService {
	return &OfferService{offerRepo: offerRepo}
}

func (s *OfferService) Create(ctx context.Context, req *models.CreateOfferRequest) (*models.Offer, error) {
	if req.Type != models.OfferPercent && req.Type != models.OfferFlat {
		return nil, fmt.Errorf("invalid offer type %q", req.Type)
	}
	if req.Value <= 0 {
		return nil, fmt.Errorf("offer value must be positive")
	}
	if req.Type == models.OfferPercent && req.Value > 100 {
		return nil, fmt.Errorf("percent offer cannot exceed 100")
	}
	offer := &models.Offer{
		RestaurantID: req.RestaurantID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Value:        req.Value,
		MinAmount:    req.MinAmount,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsActive:     req.IsActive,
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *OfferService) ListActive(ctx context.Context, restaurantID string) ([]*models.Offer, error) {
	return s.offerRepo.ListActive(ctx, restaurantID)
}

func (s *OfferService) ListAll(ctx context.Context, restaurantID string) ([]*models.Offer, error) {
	return s.offerRepo.ListByRestaurant(ctx, restaurantID)
}

func (s *OfferService) SetActive(ctx context.Context, id string, active bool) error {
	return s.offerRepo.SetActive(ctx, id, active)
}

// Discount applies an offer to an order total. Offers below their minimum
// amount do not apply; a discount never exceeds the total.
func Discount(offer *models.Offer, total float64) float64 {
	if total < offer.MinAmount {
		return 0
	}
	var d float64
	switch offer.Type {
	case models.OfferPercent:
		d = total * offer.Value / 100
	case models.OfferFlat:
		d = offer.Value
	}
	if d > total {
		d = total
	}
	return d
}
