package models

import "time"

// Stock movement types. IN and RETURN add the quantity to stock, OUT and
// WASTAGE subtract it, ADJUST applies the quantity as a signed correction.
const (
	MovementIn      = "IN"
	MovementOut     = "OUT"
	MovementAdjust  = "ADJUST"
	MovementWastage = "WASTAGE"
	MovementReturn  = "RETURN"
)

// InventoryItem is one tracked stock line (rice, oil, gas cylinder, ...)
type InventoryItem struct {
	ID            string    `json:"id"`
	RestaurantID  string    `json:"restaurant_id"`
	Name          string    `json:"name"`
	Unit          string    `json:"unit"` // kg, litre, piece, ...
	CurrentStock  float64   `json:"current_stock"`
	MinStockLevel float64   `json:"min_stock_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockMovement is one entry in an item's stock ledger. Quantity stores the
// magnitude for IN/OUT/WASTAGE/RETURN and the signed delta for ADJUST; the
// type carries the direction.
type StockMovement struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	ItemID       string    `json:"item_id"`
	Type         string    `json:"type"`
	Quantity     float64   `json:"quantity"`
	Reason       string    `json:"reason"`
	PerformedBy  string    `json:"performed_by"`
	CreatedAt    time.Time `json:"created_at"`

	ItemName string `json:"item_name,omitempty"` // joined from inventory_items
	ItemUnit string `json:"item_unit,omitempty"`
}

// Cancellation logs a cancelled or damaged order item for shrinkage review
type Cancellation struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	OrderID        *string   `json:"order_id"`
	ItemName       string    `json:"item_name"`
	Quantity       float64   `json:"quantity"`
	ReasonCategory string    `json:"reason_category"` // customer, kitchen, damage, ...
	Notes          string    `json:"notes"`
	AmountImpact   float64   `json:"amount_impact"`
	ReportedBy     string    `json:"reported_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateInventoryItemRequest represents the item creation body
type CreateInventoryItemRequest struct {
	RestaurantID  string  `json:"restaurant_id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	CurrentStock  float64 `json:"current_stock"`
	MinStockLevel float64 `json:"min_stock_level"`
}

// UpdateInventoryItemRequest represents the item update body
type UpdateInventoryItemRequest struct {
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	MinStockLevel float64 `json:"min_stock_level"`
}

// RecordMovementRequest represents the stock movement body
type RecordMovementRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	ItemID       string  `json:"item_id"`
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	Reason       string  `json:"reason"`
	PerformedBy  string  `json:"performed_by"`
}

// CreateCancellationRequest represents the cancellation log body
type CreateCancellationRequest struct {
	RestaurantID   string  `json:"restaurant_id"`
	OrderID        *string `json:"order_id"`
	ItemName       string  `json:"item_name"`
	Quantity       float64 `json:"quantity"`
	ReasonCategory string  `json:"reason_category"`
	Notes          string  `json:"notes"`
	AmountImpact   float64 `json:"amount_impact"`
	ReportedBy     string  `json:"reported_by"`
}

// ValidMovementType reports whether t is one of the accepted movement types
func ValidMovementType(t string) bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjust, MovementWastage, MovementReturn:
		return true
	}
	return false
}
