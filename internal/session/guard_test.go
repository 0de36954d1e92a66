package session

import (
	"testing"

	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
)

func strPtr(s string) *string { return &s }

func activeGuard() Guard {
	uid := "user-1"
	return NewGuard(&models.StaffMember{
		ID:     "staff-1",
		UserID: &uid,
		Status: models.StaffActive,
		Name:   "Ravi",
	}, uid)
}

func TestReduceDeleteOwnRow(t *testing.T) {
	g := Reduce(activeGuard(), realtime.Event{
		Type:  realtime.EventDelete,
		Table: realtime.TableStaff,
		Old:   &models.StaffMember{ID: "staff-1"},
	})

	if g.State != StateRevoked {
		t.Fatal("expected revoked state")
	}
	if g.Reason != ReasonAccountDeleted {
		t.Fatalf("expected reason %q, got %q", ReasonAccountDeleted, g.Reason)
	}
	if g.Profile != nil {
		t.Fatal("profile must be cleared on revocation")
	}
}

func TestReduceDeleteOtherRow(t *testing.T) {
	g := Reduce(activeGuard(), realtime.Event{
		Type:  realtime.EventDelete,
		Table: realtime.TableStaff,
		Old:   &models.StaffMember{ID: "staff-9"},
	})

	if g.State != StateActive {
		t.Fatal("delete of another staff row must not revoke the session")
	}
}

func TestReduceUnlinked(t *testing.T) {
	tests := []struct {
		name   string
		userID *string
	}{
		{"user_id cleared", nil},
		{"user_id reassigned", strPtr("someone-else")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Reduce(activeGuard(), realtime.Event{
				Type:  realtime.EventUpdate,
				Table: realtime.TableStaff,
				New:   &models.StaffMember{ID: "staff-1", UserID: tt.userID, Status: models.StaffActive},
			})
			if g.State != StateRevoked || g.Reason != ReasonAccessRevoked {
				t.Fatalf("expected access_revoked, got state=%v reason=%q", g.State, g.Reason)
			}
		})
	}
}

func TestReduceDeactivated(t *testing.T) {
	for _, status := range []string{models.StaffInactive, models.StaffBanned} {
		g := Reduce(activeGuard(), realtime.Event{
			Type:  realtime.EventUpdate,
			Table: realtime.TableStaff,
			New:   &models.StaffMember{ID: "staff-1", UserID: strPtr("user-1"), Status: status},
		})
		if g.State != StateRevoked || g.Reason != ReasonAccountDeactivated {
			t.Fatalf("status %q: expected account_deactivated, got state=%v reason=%q", status, g.State, g.Reason)
		}
	}
}

func TestReduceBenignUpdateRefreshesProfile(t *testing.T) {
	g := Reduce(activeGuard(), realtime.Event{
		Type:  realtime.EventUpdate,
		Table: realtime.TableStaff,
		New:   &models.StaffMember{ID: "staff-1", UserID: strPtr("user-1"), Status: models.StaffActive, Name: "Ravi Kumar"},
	})

	if g.State != StateActive {
		t.Fatal("name change must not revoke the session")
	}
	if g.Profile == nil || g.Profile.Name != "Ravi Kumar" {
		t.Fatal("profile not refreshed in place")
	}
}

func TestReduceRevokedIsTerminal(t *testing.T) {
	g := Reduce(activeGuard(), realtime.Event{
		Type:  realtime.EventDelete,
		Table: realtime.TableStaff,
		Old:   &models.StaffMember{ID: "staff-1"},
	})

	// A later benign update must not resurrect the session
	g = Reduce(g, realtime.Event{
		Type:  realtime.EventUpdate,
		Table: realtime.TableStaff,
		New:   &models.StaffMember{ID: "staff-1", UserID: strPtr("user-1"), Status: models.StaffActive},
	})

	if g.State != StateRevoked || g.Reason != ReasonAccountDeleted {
		t.Fatal("revoked state must be terminal")
	}
}

func TestReduceIgnoresOtherTables(t *testing.T) {
	g := Reduce(activeGuard(), realtime.Event{
		Type:  realtime.EventDelete,
		Table: realtime.TableOrders,
		Old:   &models.StaffMember{ID: "staff-1"},
	})
	if g.State != StateActive {
		t.Fatal("events from other tables must be ignored")
	}
}
