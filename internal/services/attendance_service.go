package services

import (
	"context"
	"fmt"
	"log"

	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
	"resto-backend/internal/timeutil"
)

// AttendanceStore is the attendance persistence surface the service (and
// payroll generation) depend on. *repositories.AttendanceRepository
// satisfies it.
type AttendanceStore interface {
	Upsert(ctx context.Context, rec *models.AttendanceRecord) error
	ListByDate(ctx context.Context, restaurantID, date string) ([]*models.AttendanceRecord, error)
	ListRange(ctx context.Context, staffID, startDate, endDate string) ([]*models.AttendanceRecord, error)
}

type AttendanceService struct {
	attendanceRepo AttendanceStore
	payroll        *PayrollService
	hub            *realtime.Hub
}

func NewAttendanceService(attendanceRepo AttendanceStore, payroll *PayrollService, hub *realtime.Hub) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		payroll:        payroll,
		hub:            hub,
	}
}

// Mark upserts one day's attendance and recomputes the affected month's
// payroll. The payroll recompute is best effort: a failure there is logged
// but does not fail the attendance write, since the attendance row is
// already durable and the payroll can be regenerated later.
func (s *AttendanceService) Mark(ctx context.Context, req *models.UpsertAttendanceRequest) (*models.AttendanceRecord, error) {
	if !models.ValidAttendanceStatus(req.Status) {
		return nil, fmt.Errorf("invalid attendance status %q", req.Status)
	}
	if _, err := timeutil.ParseDate(req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	rec := &models.AttendanceRecord{
		StaffID: req.StaffID,
		Date:    req.Date,
		Status:  req.Status,
		Notes:   req.Notes,
		InTime:  req.InTime,
		OutTime: req.OutTime,
	}
	if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	month := timeutil.MonthOf(req.Date)
	if _, err := s.payroll.Generate(ctx, req.StaffID, month); err != nil {
		log.Printf("[Attendance] Payroll recompute failed for staff %s month %s: %v", req.StaffID, month, err)
	}

	return rec, nil
}

func (s *AttendanceService) ListByDate(ctx context.Context, restaurantID, date string) ([]*models.AttendanceRecord, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.attendanceRepo.ListByDate(ctx, restaurantID, date)
}

func (s *AttendanceService) ListMonth(ctx context.Context, staffID, month string) ([]*models.AttendanceRecord, error) {
	startDate, endDate, err := timeutil.MonthRange(month)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListRange(ctx, staffID, startDate, endDate)
}
