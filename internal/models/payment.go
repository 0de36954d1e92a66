package models

import "time"

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// Payment methods
const (
	MethodCash   = "cash"
	MethodUPI    = "upi"
	MethodCard   = "card"
	MethodKhata  = "khata"
	MethodOnline = "online"
)

type Payment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitiatePaymentRequest represents the payment initiation body
type InitiatePaymentRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
}

// OnlineTransaction tracks a Razorpay order through its lifecycle:
// created -> paid/failed, verified by webhook signature.
type OnlineTransaction struct {
	ID                string    `json:"id"`
	PaymentID         string    `json:"payment_id"`
	RazorpayOrderID   string    `json:"razorpay_order_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
