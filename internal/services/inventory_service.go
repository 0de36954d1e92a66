package services

import (
	"context"
	"fmt"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
)

const defaultMovementLimit = 50

// StockDelta converts a movement into the signed change it applies to an
// item's stock. IN and RETURN add, OUT and WASTAGE subtract, ADJUST passes
// the quantity through as a signed correction. Non-ADJUST movements record
// a positive magnitude; ADJUST records the delta itself and rejects zero.
func StockDelta(movementType string, quantity float64) (float64, error) {
	switch movementType {
	case models.MovementIn, models.MovementReturn:
		if quantity <= 0 {
			return 0, fmt.Errorf("%s movement requires a positive quantity", movementType)
		}
		return quantity, nil
	case models.MovementOut, models.MovementWastage:
		if quantity <= 0 {
			return 0, fmt.Errorf("%s movement requires a positive quantity", movementType)
		}
		return -quantity, nil
	case models.MovementAdjust:
		if quantity == 0 {
			return 0, fmt.Errorf("ADJUST movement requires a non-zero quantity")
		}
		return quantity, nil
	}
	return 0, fmt.Errorf("invalid movement type %q", movementType)
}

type InventoryService struct {
	repo *repositories.InventoryRepository
}

func NewInventoryService(repo *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if req.CurrentStock < 0 || req.MinStockLevel < 0 {
		return nil, fmt.Errorf("stock levels cannot be negative")
	}
	item := &models.InventoryItem{
		RestaurantID:  req.RestaurantID,
		Name:          req.Name,
		Unit:          req.Unit,
		CurrentStock:  req.CurrentStock,
		MinStockLevel: req.MinStockLevel,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) ListItems(ctx context.Context, restaurantID string) ([]*models.InventoryItem, error) {
	return s.repo.ListItems(ctx, restaurantID)
}

func (s *InventoryService) ListLowStock(ctx context.Context, restaurantID string) ([]*models.InventoryItem, error) {
	return s.repo.ListLowStock(ctx, restaurantID)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id string, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	return s.repo.UpdateItem(ctx, id, req)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}

// RecordMovement validates the movement, applies its stock delta atomically
// and returns the movement with the item's resulting stock level.
func (s *InventoryService) RecordMovement(ctx context.Context, req *models.RecordMovementRequest) (*models.StockMovement, float64, error) {
	delta, err := StockDelta(req.Type, req.Quantity)
	if err != nil {
		return nil, 0, err
	}

	m := &models.StockMovement{
		RestaurantID: req.RestaurantID,
		ItemID:       req.ItemID,
		Type:         req.Type,
		Quantity:     req.Quantity,
		Reason:       req.Reason,
		PerformedBy:  req.PerformedBy,
	}
	newStock, err := s.repo.RecordMovement(ctx, m, delta)
	if err != nil {
		return nil, 0, err
	}
	return m, newStock, nil
}

func (s *InventoryService) ListMovements(ctx context.Context, restaurantID, itemID, movementType string, limit int) ([]*models.StockMovement, error) {
	if movementType != "" && !models.ValidMovementType(movementType) {
		return nil, fmt.Errorf("invalid movement type %q", movementType)
	}
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	return s.repo.ListMovements(ctx, restaurantID, itemID, movementType, limit)
}

func (s *InventoryService) LogCancellation(ctx context.Context, req *models.CreateCancellationRequest) (*models.Cancellation, error) {
	if req.ItemName == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	c := &models.Cancellation{
		RestaurantID:   req.RestaurantID,
		OrderID:        req.OrderID,
		ItemName:       req.ItemName,
		Quantity:       req.Quantity,
		ReasonCategory: req.ReasonCategory,
		Notes:          req.Notes,
		AmountImpact:   req.AmountImpact,
		ReportedBy:     req.ReportedBy,
	}
	if err := s.repo.CreateCancellation(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *InventoryService) ListCancellations(ctx context.Context, restaurantID string) ([]*models.Cancellation, error) {
	return s.repo.ListCancellations(ctx, restaurantID)
}
