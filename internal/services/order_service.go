package services

import (
	"context"
	"fmt"

	"resto-backend/internal/metrics"
	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
	"resto-backend/internal/repositories"
)

// Portion names accepted on order lines
const (
	PortionFull = "full"
	PortionHalf = "half"
)

// PriceFor resolves the unit price for an item and portion. Half pricing
// applies only when the item actually defines a half price; otherwise the
// full price is charged regardless of the requested portion.
func PriceFor(item *models.MenuItem, portion string) float64 {
	if portion == PortionHalf && item.PriceHalf != nil {
		return *item.PriceHalf
	}
	return item.PriceFull
}

type OrderService struct {
	orderRepo *repositories.OrderRepository
	menuRepo  *repositories.MenuRepository
	hub       *realtime.Hub
}

func NewOrderService(orderRepo *repositories.OrderRepository, menuRepo *repositories.MenuRepository, hub *realtime.Hub) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		hub:       hub,
	}
}

// Place creates an order, re-pricing every line from the current menu.
// Client-sent prices are never trusted; the resolved unit price is
// snapshotted on each line so later menu edits cannot change the total.
func (s *OrderService) Place(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if req.OrderType != models.OrderDineIn && req.OrderType != models.OrderTakeaway {
		return nil, fmt.Errorf("invalid order type %q", req.OrderType)
	}

	ids := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for item %s", line.Quantity, line.ItemID)
		}
		if line.Portion != PortionFull && line.Portion != PortionHalf {
			return nil, fmt.Errorf("invalid portion %q for item %s", line.Portion, line.ItemID)
		}
		ids = append(ids, line.ItemID)
	}

	menu, err := s.menuRepo.GetItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	order := &models.Order{
		RestaurantID:  req.RestaurantID,
		TableID:       req.TableID,
		OrderType:     req.OrderType,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	}
	for _, line := range req.Items {
		item, ok := menu[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("unknown menu item %s", line.ItemID)
		}
		if !item.IsAvailable {
			return nil, fmt.Errorf("item %s is not available", item.Name)
		}
		price := PriceFor(item, line.Portion)
		order.Items = append(order.Items, models.OrderItem{
			ItemID:          line.ItemID,
			Quantity:        line.Quantity,
			Portion:         line.Portion,
			TastePreference: line.TastePreference,
			PriceAtTime:     price,
		})
		order.TotalAmount += price * float64(line.Quantity)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	for i := range order.Items {
		if item, ok := menu[order.Items[i].ItemID]; ok {
			order.Items[i].ItemName = item.Name
		}
	}

	metrics.OrdersPlacedTotal.Inc()
	s.hub.Publish(realtime.Event{
		Type:  realtime.EventInsert,
		Table: realtime.TableOrders,
		New:   order,
	})
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.Get(ctx, id)
}

func (s *OrderService) ListActive(ctx context.Context, restaurantID, customerName string, tableID *string) ([]*models.Order, error) {
	return s.orderRepo.ListActive(ctx, restaurantID, customerName, tableID)
}

// KitchenBoard returns the orders the kitchen acts on, oldest first
func (s *OrderService) KitchenBoard(ctx context.Context, restaurantID string) ([]*models.Order, error) {
	return s.orderRepo.ListByStatus(ctx, restaurantID, []string{
		models.OrderPending, models.OrderPreparing, models.OrderReady,
	})
}

var orderTransitions = map[string][]string{
	models.OrderPending:   {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing: {models.OrderReady, models.OrderCancelled},
	models.OrderReady:     {models.OrderServed},
	models.OrderServed:    {models.OrderCompleted},
}

// UpdateStatus enforces the forward-only order lifecycle
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	current, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range orderTransitions[current.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot move order from %s to %s", current.Status, status)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(realtime.Event{
		Type:  realtime.EventUpdate,
		Table: realtime.TableOrders,
		Old:   current,
		New:   updated,
	})
	return updated, nil
}
