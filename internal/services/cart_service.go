package services

import (
	"context"
	"fmt"

	"resto-backend/internal/cart"
	"resto-backend/internal/models"
)

// CartService binds QR cart sessions to the menu and order pipeline. All
// cart mutations go through the session store so every change is persisted
// before it is acknowledged.
type CartService struct {
	store  *cart.Store
	orders *OrderService
	tables *TableService
}

func NewCartService(store *cart.Store, orders *OrderService, tables *TableService) *CartService {
	return &CartService{
		store:  store,
		orders: orders,
		tables: tables,
	}
}

// Open binds a session to the table resolved from a scanned QR token
func (s *CartService) Open(ctx context.Context, sessionID, qrToken, customerName string) (*cart.Session, error) {
	table, err := s.tables.ResolveQRToken(ctx, qrToken)
	if err != nil {
		return nil, fmt.Errorf("invalid qr token: %w", err)
	}
	return s.store.Mutate(ctx, sessionID, func(sess *cart.Session) {
		sess.RestaurantID = table.RestaurantID
		sess.TableID = table.ID
		sess.TableNumber = table.TableNumber
		sess.CustomerName = customerName
		sess.OrderType = models.OrderDineIn
	})
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*cart.Session, error) {
	return s.store.Load(ctx, sessionID)
}

// AddItem prices the entry from the current menu before adding it. The cart
// shows live prices; the authoritative re-pricing happens again at checkout.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req *models.OrderItemRequest) (*cart.Session, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	items, err := s.orders.menuRepo.GetItems(ctx, []string{req.ItemID})
	if err != nil {
		return nil, err
	}
	item, ok := items[req.ItemID]
	if !ok {
		return nil, fmt.Errorf("unknown menu item %s", req.ItemID)
	}
	if !item.IsAvailable {
		return nil, fmt.Errorf("item %s is not available", item.Name)
	}

	return s.store.Mutate(ctx, sessionID, func(sess *cart.Session) {
		sess.Add(cart.Entry{
			ItemID:   req.ItemID,
			Name:     item.Name,
			Portion:  req.Portion,
			Quantity: req.Quantity,
			Price:    PriceFor(item, req.Portion),
			Taste:    req.TastePreference,
		})
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID, portion string, delta int) (*cart.Session, error) {
	return s.store.Mutate(ctx, sessionID, func(sess *cart.Session) {
		sess.UpdateQuantity(itemID, portion, delta)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID, portion string) (*cart.Session, error) {
	return s.store.Mutate(ctx, sessionID, func(sess *cart.Session) {
		sess.Remove(itemID, portion)
	})
}

// Checkout places an order from the cart contents and clears the cart,
// keeping the order ID on the session for the active-bill view. The order
// is re-priced server side; cart entry prices are display only.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*models.Order, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(sess.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	if sess.RestaurantID == "" {
		return nil, fmt.Errorf("cart session not bound to a restaurant")
	}

	req := &models.CreateOrderRequest{
		RestaurantID: sess.RestaurantID,
		CustomerName: sess.CustomerName,
		OrderType:    sess.OrderType,
	}
	if sess.TableID != "" {
		tableID := sess.TableID
		req.TableID = &tableID
	}
	if req.OrderType == "" {
		req.OrderType = models.OrderDineIn
	}
	for _, e := range sess.Items {
		req.Items = append(req.Items, models.OrderItemRequest{
			ItemID:          e.ItemID,
			Quantity:        e.Quantity,
			Portion:         e.Portion,
			TastePreference: e.Taste,
		})
	}

	order, err := s.orders.Place(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Mutate(ctx, sessionID, func(sess *cart.Session) {
		sess.Clear()
		sess.OrderIDs = append(sess.OrderIDs, order.ID)
	}); err != nil {
		// Order is placed; a stale cart is recoverable
		return order, nil
	}
	return order, nil
}
