package models

import "time"

// Vendor is an inventory supplier
type Vendor struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Category     string    `json:"category"` // vegetables, dairy, grocery, ...
	CreatedAt    time.Time `json:"created_at"`
}

// Purchase records a stock purchase from a vendor. The credit part
// (amount - paid_amount) is the outstanding payable to the vendor.
type Purchase struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	VendorID     string    `json:"vendor_id"`
	ItemName     string    `json:"item_name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Amount       float64   `json:"amount"`
	PaidAmount   float64   `json:"paid_amount"`
	PurchaseDate string    `json:"purchase_date"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`

	VendorName string `json:"vendor_name,omitempty"` // joined from vendors
}

// CreateVendorRequest represents the vendor creation body
type CreateVendorRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Category     string `json:"category"`
}

// CreatePurchaseRequest represents the purchase entry body
type CreatePurchaseRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	VendorID     string  `json:"vendor_id"`
	ItemName     string  `json:"item_name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Amount       float64 `json:"amount"`
	PaidAmount   float64 `json:"paid_amount"`
	PurchaseDate string  `json:"purchase_date"`
}
