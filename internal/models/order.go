package models

import "time"

// Order statuses
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order types
const (
	OrderDineIn   = "dine-in"
	OrderTakeaway = "takeaway"
)

type Order struct {
	ID            string      `json:"id"`
	RestaurantID  string      `json:"restaurant_id"`
	TableID       *string     `json:"table_id"`
	Status        string      `json:"status"`
	OrderType     string      `json:"order_type"`
	TotalAmount   float64     `json:"total_amount"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Items         []OrderItem `json:"order_items"`
}

// OrderItem snapshots the price at order time so later menu edits never
// change a placed order's total.
type OrderItem struct {
	ID              string  `json:"id"`
	OrderID         string  `json:"order_id"`
	ItemID          string  `json:"item_id"`
	Quantity        int     `json:"quantity"`
	Portion         string  `json:"portion"` // half or full
	TastePreference string  `json:"taste_preference"`
	PriceAtTime     float64 `json:"price_at_time"`
	ItemName        string  `json:"item_name,omitempty"` // joined from menu_items
}

// CreateOrderRequest represents the order creation body
type CreateOrderRequest struct {
	RestaurantID  string             `json:"restaurant_id"`
	TableID       *string            `json:"table_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	OrderType     string             `json:"order_type"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested line; the server re-prices it from the
// menu rather than trusting the client.
type OrderItemRequest struct {
	ItemID          string `json:"item_id"`
	Quantity        int    `json:"quantity"`
	Portion         string `json:"portion"`
	TastePreference string `json:"taste_preference"`
}

// UpdateOrderStatusRequest represents the status transition body
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
