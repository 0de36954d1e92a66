package services

import (
	"context"
	"strings"
	"testing"

	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
)

func TestMarkSameDayOverwrites(t *testing.T) {
	attendanceStore := newFakeAttendanceStore()
	payroll := NewPayrollService(newFakePayrollStore(), attendanceStore, monthlyStaffDirectory(), realtime.NewHub())
	svc := NewAttendanceService(attendanceStore, payroll, realtime.NewHub())

	ctx := context.Background()
	mark := func(status string) {
		t.Helper()
		_, err := svc.Mark(ctx, &models.UpsertAttendanceRequest{
			StaffID: "staff-1",
			Date:    "2026-02-01",
			Status:  status,
		})
		if err != nil {
			t.Fatalf("Mark(%s): %v", status, err)
		}
	}

	mark(models.AttendancePresent)
	mark(models.AttendanceAbsent)

	if len(attendanceStore.records) != 1 {
		t.Fatalf("got %d attendance records, want 1", len(attendanceStore.records))
	}
	rec := attendanceStore.records["staff-1|2026-02-01"]
	if rec == nil {
		t.Fatal("record for staff-1 on 2026-02-01 missing")
	}
	if rec.Status != models.AttendanceAbsent {
		t.Errorf("status = %q, want %q (second mark wins)", rec.Status, models.AttendanceAbsent)
	}
}

func TestMarkRejectsInvalidStatus(t *testing.T) {
	s := NewAttendanceService(nil, nil, nil)
	_, err := s.Mark(context.Background(), &models.UpsertAttendanceRequest{
		StaffID: "staff-1",
		Date:    "2026-02-01",
		Status:  "vacation",
	})
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	if !strings.Contains(err.Error(), "invalid attendance status") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarkRejectsInvalidDate(t *testing.T) {
	s := NewAttendanceService(nil, nil, nil)
	for _, date := range []string{"", "01-02-2026", "2026-2-1", "2026-02-30"} {
		_, err := s.Mark(context.Background(), &models.UpsertAttendanceRequest{
			StaffID: "staff-1",
			Date:    date,
			Status:  models.AttendancePresent,
		})
		if err == nil {
			t.Errorf("expected error for date %q", date)
		}
	}
}
