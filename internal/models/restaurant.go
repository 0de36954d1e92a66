package models

import "time"

type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Table is a physical table with a QR token customers scan to open a cart
// session bound to it.
type Table struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	TableNumber  string    `json:"table_number"`
	QRToken      string    `json:"qr_token"`
	Capacity     int       `json:"capacity"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
