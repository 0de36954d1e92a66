// Package session revokes live sessions when the staff row backing them is
// deleted, unlinked from its auth user, or deactivated. The decision logic
// is a pure reducer over row-change events so it can be tested without a
// live change stream.
package session

import (
	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
)

// State of a guarded session. Revoked is terminal until re-authentication.
type State int

const (
	StateActive State = iota
	StateRevoked
)

// Revocation reasons, carried to the login surface as a query parameter
const (
	ReasonAccountDeleted     = "account_deleted"
	ReasonAccessRevoked      = "access_revoked"
	ReasonAccountDeactivated = "account_deactivated"
)

// Guard tracks one authenticated session against its staff row
type Guard struct {
	StaffID string
	UserID  string
	State   State
	Reason  string
	Profile *models.StaffMember
}

// NewGuard builds an active guard for the session's resolved staff row
func NewGuard(profile *models.StaffMember, userID string) Guard {
	return Guard{
		StaffID: profile.ID,
		UserID:  userID,
		State:   StateActive,
		Profile: profile,
	}
}

// Reduce applies one staff-table change event and returns the next state.
// Events touching other rows, and events on an already revoked guard, leave
// the guard unchanged.
func Reduce(g Guard, ev realtime.Event) Guard {
	if g.State == StateRevoked || ev.Table != realtime.TableStaff {
		return g
	}

	switch ev.Type {
	case realtime.EventDelete:
		old := staffFrom(ev.Old)
		if old == nil || old.ID != g.StaffID {
			return g
		}
		g.State = StateRevoked
		g.Reason = ReasonAccountDeleted
		g.Profile = nil

	case realtime.EventUpdate:
		row := staffFrom(ev.New)
		if row == nil || row.ID != g.StaffID {
			return g
		}
		// Unlinked: the row no longer points at this auth user
		if row.UserID == nil || *row.UserID != g.UserID {
			g.State = StateRevoked
			g.Reason = ReasonAccessRevoked
			g.Profile = nil
			return g
		}
		// Deactivated or banned
		if row.Status == models.StaffInactive || row.Status == models.StaffBanned {
			g.State = StateRevoked
			g.Reason = ReasonAccountDeactivated
			g.Profile = nil
			return g
		}
		// Benign update (name, role, salary): refresh the profile in place
		g.Profile = row
	}

	return g
}

func staffFrom(v interface{}) *models.StaffMember {
	switch s := v.(type) {
	case *models.StaffMember:
		return s
	case models.StaffMember:
		return &s
	}
	return nil
}
