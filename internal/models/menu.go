package models

import "time"

type MenuCategory struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Name         string     `json:"name"`
	SortOrder    int        `json:"sort_order"`
	CreatedAt    time.Time  `json:"created_at"`
	Items        []MenuItem `json:"menu_items"`
}

// MenuItem prices: price_half is nil for items without a half portion.
type MenuItem struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceFull   float64   `json:"price_full"`
	PriceHalf   *float64  `json:"price_half"`
	IsVeg       bool      `json:"is_veg"`
	IsAvailable bool      `json:"is_available"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateMenuItemRequest represents the menu item creation body
type CreateMenuItemRequest struct {
	CategoryID  string   `json:"category_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceFull   float64  `json:"price_full"`
	PriceHalf   *float64 `json:"price_half"`
	IsVeg       bool     `json:"is_veg"`
	Image       string   `json:"image"`
}

// UpdateMenuItemRequest represents the menu item update body
type UpdateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceFull   float64  `json:"price_full"`
	PriceHalf   *float64 `json:"price_half"`
	IsVeg       bool     `json:"is_veg"`
	IsAvailable bool     `json:"is_available"`
	Image       string   `json:"image"`
}

// CreateCategoryRequest represents the category creation body
type CreateCategoryRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	SortOrder    int    `json:"sort_order"`
}
