package models

import "time"

// Payroll statuses
const (
	PayrollPending = "pending"
	PayrollPaid    = "paid"
)

// AttendanceSummary counts attendance rows per status for one month
type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"half_day"`
	Leave   int `json:"leave"`
}

// PayrollRecord is the computed payroll for (staff_id, month). Recomputation
// upserts on that key; a record already marked paid keeps its paid status
// even when the amounts are overwritten.
type PayrollRecord struct {
	ID                 string            `json:"id"`
	StaffID            string            `json:"staff_id"`
	Month              string            `json:"month"` // YYYY-MM
	AttendanceSummary  AttendanceSummary `json:"attendance_summary"`
	BaseSalarySnapshot float64           `json:"base_salary_snapshot"`
	Deductions         float64           `json:"deductions"`
	FinalAmount        float64           `json:"final_amount"`
	Status             string            `json:"status"`
	PaidAt             *time.Time        `json:"paid_at"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`

	// Joined from staff for listing endpoints
	StaffName string `json:"staff_name,omitempty"`
	StaffRole string `json:"staff_role,omitempty"`
}

// GeneratePayrollRequest represents the payroll generate body
type GeneratePayrollRequest struct {
	StaffID string `json:"staff_id"`
	Month   string `json:"month"` // YYYY-MM
}
