package models

import "time"

// Customer is a billing customer. Khata (running credit ledger) is tracked
// per customer; upserts key on (restaurant_id, phone).
type Customer struct {
	ID            string    `json:"id"`
	RestaurantID  string    `json:"restaurant_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	IsKhataActive bool      `json:"is_khata_active"`
	CreditLimit   float64   `json:"credit_limit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Khata transaction types
const (
	KhataDebit  = "debit"  // customer took credit
	KhataCredit = "credit" // customer paid back
)

type KhataTransaction struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	OrderID         *string   `json:"order_id"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Notes           string    `json:"notes"`
	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpsertCustomerRequest represents the customer upsert body
type UpsertCustomerRequest struct {
	RestaurantID  string  `json:"restaurant_id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	IsKhataActive bool    `json:"is_khata_active"`
	CreditLimit   float64 `json:"credit_limit"`
}

// CreateKhataTransactionRequest represents the ledger entry body
type CreateKhataTransactionRequest struct {
	CustomerID string  `json:"customer_id"`
	OrderID    *string `json:"order_id"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Notes      string  `json:"notes"`
}

// KhataBalance is the computed outstanding credit for a customer
type KhataBalance struct {
	Balance     float64 `json:"balance"`
	TotalDebit  float64 `json:"total_debit"`
	TotalCredit float64 `json:"total_credit"`
}
