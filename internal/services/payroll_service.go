package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
	"resto-backend/internal/repositories"
	"resto-backend/internal/timeutil"
)

// Summarize counts attendance rows per status. Rows outside the known
// statuses are ignored.
func Summarize(records []*models.AttendanceRecord) models.AttendanceSummary {
	var s models.AttendanceSummary
	for _, rec := range records {
		switch rec.Status {
		case models.AttendancePresent:
			s.Present++
		case models.AttendanceAbsent:
			s.Absent++
		case models.AttendanceHalfDay:
			s.HalfDay++
		case models.AttendanceLeave:
			s.Leave++
		}
	}
	return s
}

// ComputePayroll derives deductions and the final payable amount from a
// month's attendance summary and the staff member's salary terms.
//
// For monthly salaries the daily rate divides by a fixed 30 regardless of
// the month's actual length, so a day of absence costs the same in February
// as in July. Absences and half-days deduct from the base; leave does not.
// Daily salaries accrue per day worked, with half-days counting half.
// Hourly salaries accrue per present day until hour tracking lands.
func ComputePayroll(salaryType string, baseSalary float64, s models.AttendanceSummary) (deductions, finalAmount float64) {
	switch salaryType {
	case models.SalaryMonthly:
		dailyRate := baseSalary / 30
		deductions = math.Round(dailyRate*float64(s.Absent) + dailyRate/2*float64(s.HalfDay))
		finalAmount = math.Max(0, baseSalary-deductions)
	case models.SalaryDaily:
		finalAmount = math.Round(baseSalary * (float64(s.Present) + 0.5*float64(s.HalfDay)))
	case models.SalaryHourly:
		// TODO: multiply by tracked hours once in_time/out_time capture is reliable
		finalAmount = baseSalary * float64(s.Present)
	}
	return deductions, finalAmount
}

// PayrollStore is the payroll persistence surface the service depends on.
// *repositories.PayrollRepository satisfies it.
type PayrollStore interface {
	GetStatus(ctx context.Context, staffID, month string) (string, error)
	Upsert(ctx context.Context, rec *models.PayrollRecord) error
	ListByRestaurantMonth(ctx context.Context, restaurantID, month string) ([]*models.PayrollRecord, error)
	MarkPaid(ctx context.Context, payrollID string) (*models.PayrollRecord, error)
}

// StaffDirectory is the staff lookup surface payroll generation needs
type StaffDirectory interface {
	Get(ctx context.Context, id string) (*models.StaffMember, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.StaffMember, error)
}

type PayrollService struct {
	payrollRepo    PayrollStore
	attendanceRepo AttendanceStore
	staffRepo      StaffDirectory
	hub            *realtime.Hub
}

func NewPayrollService(
	payrollRepo PayrollStore,
	attendanceRepo AttendanceStore,
	staffRepo StaffDirectory,
	hub *realtime.Hub,
) *PayrollService {
	return &PayrollService{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		staffRepo:      staffRepo,
		hub:            hub,
	}
}

// Generate recomputes the payroll record for one staff member and month
// from the attendance rows inside the month's true calendar range.
//
// The write is an upsert on (staff_id, month): amounts are always
// overwritten, but a record already marked paid keeps its paid status so a
// late attendance correction cannot silently unmark a completed payment.
func (s *PayrollService) Generate(ctx context.Context, staffID, month string) (*models.PayrollRecord, error) {
	startDate, endDate, err := timeutil.MonthRange(month)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.Get(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff %s: %w", staffID, err)
	}

	records, err := s.attendanceRepo.ListRange(ctx, staffID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance for %s: %w", month, err)
	}

	summary := Summarize(records)
	deductions, finalAmount := ComputePayroll(staff.SalaryType, staff.BaseSalary, summary)

	status := models.PayrollPending
	existing, err := s.payrollRepo.GetStatus(ctx, staffID, month)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing == models.PayrollPaid {
		status = models.PayrollPaid
		log.Printf("[Payroll] Recomputing paid payroll for staff %s month %s, amounts overwritten but status kept paid", staffID, month)
	}

	rec := &models.PayrollRecord{
		StaffID:            staffID,
		Month:              month,
		AttendanceSummary:  summary,
		BaseSalarySnapshot: staff.BaseSalary,
		Deductions:         deductions,
		FinalAmount:        finalAmount,
		Status:             status,
	}
	if err := s.payrollRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	rec.StaffName = staff.Name
	rec.StaffRole = staff.Role

	s.hub.Publish(realtime.Event{
		Type:  realtime.EventUpdate,
		Table: realtime.TablePayroll,
		New:   rec,
	})
	return rec, nil
}

// GenerateForRestaurant recomputes every active staff member's payroll for
// the month. Individual failures are logged and skipped so one bad row does
// not block the rest of the run.
func (s *PayrollService) GenerateForRestaurant(ctx context.Context, restaurantID, month string) ([]*models.PayrollRecord, error) {
	if _, _, err := timeutil.MonthRange(month); err != nil {
		return nil, err
	}

	staffList, err := s.staffRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	var records []*models.PayrollRecord
	for _, staff := range staffList {
		if staff.Status != models.StaffActive {
			continue
		}
		rec, err := s.Generate(ctx, staff.ID, month)
		if err != nil {
			log.Printf("[Payroll] Failed to generate payroll for staff %s: %v", staff.ID, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *PayrollService) List(ctx context.Context, restaurantID, month string) ([]*models.PayrollRecord, error) {
	if _, _, err := timeutil.MonthRange(month); err != nil {
		return nil, err
	}
	return s.payrollRepo.ListByRestaurantMonth(ctx, restaurantID, month)
}

func (s *PayrollService) MarkPaid(ctx context.Context, payrollID string) (*models.PayrollRecord, error) {
	rec, err := s.payrollRepo.MarkPaid(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(realtime.Event{
		Type:  realtime.EventUpdate,
		Table: realtime.TablePayroll,
		New:   rec,
	})
	return rec, nil
}
