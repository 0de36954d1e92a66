package models

import "time"

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half-day"
	AttendanceLeave   = "leave"
)

// AttendanceRecord holds one day's attendance for a staff member.
// (staff_id, date) is unique; writes are upserts, so marking twice for the
// same day overwrites rather than duplicating.
type AttendanceRecord struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staff_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	InTime    *string   `json:"in_time"`
	OutTime   *string   `json:"out_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertAttendanceRequest represents the attendance upsert body
type UpsertAttendanceRequest struct {
	StaffID string  `json:"staff_id"`
	Date    string  `json:"date"` // YYYY-MM-DD
	Status  string  `json:"status"`
	Notes   string  `json:"notes"`
	InTime  *string `json:"in_time"`
	OutTime *string `json:"out_time"`
}

// ValidAttendanceStatus reports whether s is one of the accepted statuses
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay, AttendanceLeave:
		return true
	}
	return false
}
