package services

import (
	"context"
	"testing"

	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
	"resto-backend/internal/repositories"
	"resto-backend/internal/timeutil"
)

// In-memory stores for exercising the services without Postgres

type fakePayrollStore struct {
	records map[string]*models.PayrollRecord // keyed staffID|month
}

func newFakePayrollStore() *fakePayrollStore {
	return &fakePayrollStore{records: make(map[string]*models.PayrollRecord)}
}

func (f *fakePayrollStore) GetStatus(_ context.Context, staffID, month string) (string, error) {
	rec, ok := f.records[staffID+"|"+month]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return rec.Status, nil
}

func (f *fakePayrollStore) Upsert(_ context.Context, rec *models.PayrollRecord) error {
	cp := *rec
	f.records[rec.StaffID+"|"+rec.Month] = &cp
	return nil
}

func (f *fakePayrollStore) ListByRestaurantMonth(_ context.Context, _, month string) ([]*models.PayrollRecord, error) {
	var out []*models.PayrollRecord
	for _, rec := range f.records {
		if rec.Month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePayrollStore) MarkPaid(_ context.Context, payrollID string) (*models.PayrollRecord, error) {
	for _, rec := range f.records {
		if rec.ID == payrollID {
			rec.Status = models.PayrollPaid
			return rec, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeAttendanceStore struct {
	records map[string]*models.AttendanceRecord // keyed staffID|date
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: make(map[string]*models.AttendanceRecord)}
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, rec *models.AttendanceRecord) error {
	cp := *rec
	f.records[rec.StaffID+"|"+rec.Date] = &cp
	return nil
}

func (f *fakeAttendanceStore) ListByDate(_ context.Context, _, date string) ([]*models.AttendanceRecord, error) {
	var out []*models.AttendanceRecord
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListRange(_ context.Context, staffID, startDate, endDate string) ([]*models.AttendanceRecord, error) {
	var out []*models.AttendanceRecord
	for _, rec := range f.records {
		if rec.StaffID == staffID && rec.Date >= startDate && rec.Date <= endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeStaffDirectory struct {
	staff map[string]*models.StaffMember
}

func (f *fakeStaffDirectory) Get(_ context.Context, id string) (*models.StaffMember, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return s, nil
}

func (f *fakeStaffDirectory) ListByRestaurant(_ context.Context, _ string) ([]*models.StaffMember, error) {
	var out []*models.StaffMember
	for _, s := range f.staff {
		out = append(out, s)
	}
	return out, nil
}

func monthlyStaffDirectory() *fakeStaffDirectory {
	return &fakeStaffDirectory{staff: map[string]*models.StaffMember{
		"staff-1": {
			ID:         "staff-1",
			Name:       "Ravi",
			Role:       "cook",
			SalaryType: models.SalaryMonthly,
			BaseSalary: 30000,
			Status:     models.StaffActive,
		},
	}}
}

func TestComputePayrollMonthlyDeductions(t *testing.T) {
	// 30000 base, 2 absences and 1 half-day: daily rate 1000,
	// deductions 2000 + 500 = 2500, payable 27500.
	summary := models.AttendanceSummary{Present: 24, Absent: 2, HalfDay: 1, Leave: 3}
	deductions, final := ComputePayroll(models.SalaryMonthly, 30000, summary)
	if deductions != 2500 {
		t.Errorf("deductions = %v, want 2500", deductions)
	}
	if final != 27500 {
		t.Errorf("final = %v, want 27500", final)
	}
}

func TestComputePayrollMonthlyLeaveNotDeducted(t *testing.T) {
	clean := models.AttendanceSummary{Present: 20}
	withLeave := models.AttendanceSummary{Present: 20, Leave: 6}
	_, cleanFinal := ComputePayroll(models.SalaryMonthly, 30000, clean)
	_, leaveFinal := ComputePayroll(models.SalaryMonthly, 30000, withLeave)
	if cleanFinal != leaveFinal {
		t.Errorf("leave changed final amount: %v vs %v", leaveFinal, cleanFinal)
	}
}

func TestComputePayrollMonthlyFlooredAtZero(t *testing.T) {
	// More absence than the base covers must not go negative
	summary := models.AttendanceSummary{Absent: 45}
	deductions, final := ComputePayroll(models.SalaryMonthly, 30000, summary)
	if final != 0 {
		t.Errorf("final = %v, want 0", final)
	}
	if deductions != 45000 {
		t.Errorf("deductions = %v, want 45000", deductions)
	}
}

func TestComputePayrollDaily(t *testing.T) {
	// 500/day, 21 days present: 10500, no deductions
	summary := models.AttendanceSummary{Present: 21, Absent: 4}
	deductions, final := ComputePayroll(models.SalaryDaily, 500, summary)
	if final != 10500 {
		t.Errorf("final = %v, want 10500", final)
	}
	if deductions != 0 {
		t.Errorf("deductions = %v, want 0", deductions)
	}
}

func TestComputePayrollDailyHalfDay(t *testing.T) {
	summary := models.AttendanceSummary{Present: 10, HalfDay: 3}
	_, final := ComputePayroll(models.SalaryDaily, 500, summary)
	if final != 5750 {
		t.Errorf("final = %v, want 5750", final)
	}
}

func TestComputePayrollHourly(t *testing.T) {
	summary := models.AttendanceSummary{Present: 15}
	deductions, final := ComputePayroll(models.SalaryHourly, 80, summary)
	if final != 1200 {
		t.Errorf("final = %v, want 1200", final)
	}
	if deductions != 0 {
		t.Errorf("deductions = %v, want 0", deductions)
	}
}

func TestComputePayrollDeterministic(t *testing.T) {
	summary := models.AttendanceSummary{Present: 22, Absent: 3, HalfDay: 2}
	d1, f1 := ComputePayroll(models.SalaryMonthly, 27350, summary)
	d2, f2 := ComputePayroll(models.SalaryMonthly, 27350, summary)
	if d1 != d2 || f1 != f2 {
		t.Errorf("recompute changed result: (%v, %v) vs (%v, %v)", d1, f1, d2, f2)
	}
}

func TestGeneratePreservesPaidStatus(t *testing.T) {
	payrollStore := newFakePayrollStore()
	attendanceStore := newFakeAttendanceStore()
	svc := NewPayrollService(payrollStore, attendanceStore, monthlyStaffDirectory(), realtime.NewHub())

	// Month already generated and paid out
	payrollStore.records["staff-1|2026-02"] = &models.PayrollRecord{
		StaffID:     "staff-1",
		Month:       "2026-02",
		FinalAmount: 30000,
		Status:      models.PayrollPaid,
	}

	// Late attendance corrections land after the payout
	ctx := context.Background()
	for _, rec := range []*models.AttendanceRecord{
		{StaffID: "staff-1", Date: "2026-02-03", Status: models.AttendanceAbsent},
		{StaffID: "staff-1", Date: "2026-02-04", Status: models.AttendanceAbsent},
		{StaffID: "staff-1", Date: "2026-02-05", Status: models.AttendanceHalfDay},
	} {
		if err := attendanceStore.Upsert(ctx, rec); err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	rec, err := svc.Generate(ctx, "staff-1", "2026-02")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if rec.Status != models.PayrollPaid {
		t.Errorf("status = %q, want %q", rec.Status, models.PayrollPaid)
	}
	if rec.Deductions != 2500 || rec.FinalAmount != 27500 {
		t.Errorf("amounts = (%v, %v), want (2500, 27500)", rec.Deductions, rec.FinalAmount)
	}

	stored := payrollStore.records["staff-1|2026-02"]
	if stored == nil {
		t.Fatal("recompute removed the stored record")
	}
	if stored.Status != models.PayrollPaid {
		t.Errorf("stored status = %q, want %q", stored.Status, models.PayrollPaid)
	}
	if stored.FinalAmount != 27500 {
		t.Errorf("stored final = %v, want 27500", stored.FinalAmount)
	}
}

func TestSummarizeCounts(t *testing.T) {
	records := []*models.AttendanceRecord{
		{Status: models.AttendancePresent},
		{Status: models.AttendancePresent},
		{Status: models.AttendanceAbsent},
		{Status: models.AttendanceHalfDay},
		{Status: models.AttendanceLeave},
		{Status: "unknown"},
	}
	s := Summarize(records)
	want := models.AttendanceSummary{Present: 2, Absent: 1, HalfDay: 1, Leave: 1}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
}

func TestMonthRangeUsesTrueMonthLength(t *testing.T) {
	cases := []struct {
		month string
		start string
		end   string
	}{
		{"2025-02", "2025-02-01", "2025-02-28"},
		{"2024-02", "2024-02-01", "2024-02-29"},
		{"2025-01", "2025-01-01", "2025-01-31"},
		{"2025-04", "2025-04-01", "2025-04-30"},
	}
	for _, c := range cases {
		start, end, err := timeutil.MonthRange(c.month)
		if err != nil {
			t.Fatalf("MonthRange(%q): %v", c.month, err)
		}
		if start != c.start || end != c.end {
			t.Errorf("MonthRange(%q) = (%s, %s), want (%s, %s)", c.month, start, end, c.start, c.end)
		}
	}
}

func TestMonthRangeRejectsBadInput(t *testing.T) {
	for _, month := range []string{"", "2025", "2025-13", "Feb-2025"} {
		if _, _, err := timeutil.MonthRange(month); err == nil {
			t.Errorf("MonthRange(%q) accepted invalid month", month)
		}
	}
}
