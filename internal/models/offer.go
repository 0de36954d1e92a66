package models

import "time"

// Offer types
const (
	OfferPercent = "percent"
	OfferFlat    = "flat"
)

type Offer struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	Value        float64    `json:"value"`
	MinAmount    float64    `json:"min_amount"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateOfferRequest represents the offer creation body
type CreateOfferRequest struct {
	RestaurantID string     `json:"restaurant_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	Value        float64    `json:"value"`
	MinAmount    float64    `json:"min_amount"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     bool       `json:"is_active"`
}
