package services

import (
	"context"
	"fmt"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
	"resto-backend/internal/timeutil"
)

type VendorService struct {
	vendorRepo *repositories.VendorRepository
}

func NewVendorService(vendorRepo *repositories.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

func (s *VendorService) Create(ctx context.Context, req *models.CreateVendorRequest) (*models.Vendor, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("vendor name is required")
	}
	v := &models.Vendor{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Phone:        req.Phone,
		Category:     req.Category,
	}
	if err := s.vendorRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VendorService) List(ctx context.Context, restaurantID string) ([]*models.Vendor, error) {
	return s.vendorRepo.ListByRestaurant(ctx, restaurantID)
}

func (s *VendorService) RecordPurchase(ctx context.Context, req *models.CreatePurchaseRequest) (*models.Purchase, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("purchase amount must be positive")
	}
	if req.PaidAmount > req.Amount {
		return nil, fmt.Errorf("paid amount cannot exceed purchase amount")
	}
	date := req.PurchaseDate
	if date == "" {
		date = timeutil.Today()
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid purchase date %q: %w", date, err)
	}

	p := &models.Purchase{
		RestaurantID: req.RestaurantID,
		VendorID:     req.VendorID,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Amount:       req.Amount,
		PaidAmount:   req.PaidAmount,
		PurchaseDate: date,
	}
	if err := s.vendorRepo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *VendorService) ListPurchases(ctx context.Context, restaurantID string) ([]*models.Purchase, error) {
	return s.vendorRepo.ListPurchases(ctx, restaurantID)
}

func (s *VendorService) Payable(ctx context.Context, vendorID string) (float64, error) {
	return s.vendorRepo.VendorPayable(ctx, vendorID)
}
