package models

import "time"

// User is the authentication principal. Authorization comes from the staff
// row linked via staff.user_id; a user without a staff row is authenticated
// but profile-less, which callers must treat as non-fatal (the link may not
// have been created yet).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	TOTPSecret   string    `json:"-"`
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"`
}

// AuthResponse represents the response after successful authentication.
// Profile is nil when no staff row is linked to the user yet.
type AuthResponse struct {
	Token   string       `json:"token"`
	User    *User        `json:"user"`
	Profile *StaffMember `json:"profile"`
}
