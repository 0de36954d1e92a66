package models

import "time"

// Staff salary types
const (
	SalaryMonthly = "monthly"
	SalaryDaily   = "daily"
	SalaryHourly  = "hourly"
)

// Staff statuses. inactive and banned both revoke access; exited keeps the
// row for payroll history.
const (
	StaffActive   = "active"
	StaffInactive = "inactive"
	StaffExited   = "exited"
	StaffBanned   = "banned"
)

// StaffMember is the identity and authorization row joined to a session.
// At most one active staff row may exist per user_id.
type StaffMember struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	UserID       *string   `json:"user_id"` // nullable link to the auth principal
	Name         string    `json:"name"`
	Role         string    `json:"role"` // admin, manager, billing, counter, waiter, kitchen, staff
	Phone        string    `json:"phone"`
	SalaryType   string    `json:"salary_type"`
	BaseSalary   float64   `json:"base_salary"`
	Status       string    `json:"status"`
	JoinedAt     time.Time `json:"joined_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateStaffRequest represents the request body for creating a staff member
type CreateStaffRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Phone        string  `json:"phone"`
	SalaryType   string  `json:"salary_type"`
	BaseSalary   float64 `json:"base_salary"`
	UserID       *string `json:"user_id"`
}

// UpdateStaffRequest represents the request body for updating a staff member
type UpdateStaffRequest struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Phone      string  `json:"phone"`
	SalaryType string  `json:"salary_type"`
	BaseSalary float64 `json:"base_salary"`
	Status     string  `json:"status"`
	UserID     *string `json:"user_id"`
}
