package models

import "time"

// Advance is one entry in a staff member's advance ledger. is_recovery
// entries reduce the outstanding balance instead of increasing it.
type Advance struct {
	ID         string    `json:"id"`
	StaffID    string    `json:"staff_id"`
	Amount     float64   `json:"amount"`
	IsRecovery bool      `json:"is_recovery"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined from staff for listing endpoints
	StaffName string `json:"staff_name,omitempty"`
}

// CreateAdvanceRequest represents the advance/recovery creation body
type CreateAdvanceRequest struct {
	StaffID    string  `json:"staff_id"`
	Amount     float64 `json:"amount"`
	IsRecovery bool    `json:"is_recovery"`
	Date       string  `json:"date"`
	Notes      string  `json:"notes"`
}

// AdvanceBalance is the computed outstanding balance for a staff member
type AdvanceBalance struct {
	Balance       float64 `json:"balance"`
	TotalAdvance  float64 `json:"total_advance"`
	TotalRecovery float64 `json:"total_recovery"`
}
