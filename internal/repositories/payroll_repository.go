package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type PayrollRepository struct {
	DB *pgxpool.Pool
}

func NewPayrollRepository(db *pgxpool.Pool) *PayrollRepository {
	return &PayrollRepository{DB: db}
}

// GetStatus returns the current status for (staff_id, month), or
// ErrNotFound when no record exists yet.
func (r *PayrollRepository) GetStatus(ctx context.Context, staffID, month string) (string, error) {
	var status string
	err := r.DB.QueryRow(ctx,
		`SELECT status FROM staff_payroll WHERE staff_id = $1 AND month = $2`,
		staffID, month,
	).Scan(&status)
	if err != nil {
		return "", notFound(err)
	}
	return status, nil
}

// Upsert overwrites the payroll record for (staff_id, month), including
// the status column: the caller decides whether paid is preserved.
func (r *PayrollRepository) Upsert(ctx context.Context, rec *models.PayrollRecord) error {
	summary, err := json.Marshal(rec.AttendanceSummary)
	if err != nil {
		return fmt.Errorf("failed to encode attendance summary: %w", err)
	}

	query := `
		INSERT INTO staff_payroll (staff_id, month, attendance_summary, base_salary_snapshot, deductions, final_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (staff_id, month)
		DO UPDATE SET attendance_summary = EXCLUDED.attendance_summary,
		              base_salary_snapshot = EXCLUDED.base_salary_snapshot,
		              deductions = EXCLUDED.deductions,
		              final_amount = EXCLUDED.final_amount,
		              status = EXCLUDED.status,
		              updated_at = NOW()
		RETURNING id, paid_at, created_at, updated_at
	`
	err = r.DB.QueryRow(ctx, query,
		rec.StaffID, rec.Month, summary, rec.BaseSalarySnapshot, rec.Deductions, rec.FinalAmount, rec.Status,
	).Scan(&rec.ID, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert payroll: %w", err)
	}
	return nil
}

// ListByRestaurantMonth returns all payroll rows for a restaurant's month,
// joined with staff name and role for the dashboard.
func (r *PayrollRepository) ListByRestaurantMonth(ctx context.Context, restaurantID, month string) ([]*models.PayrollRecord, error) {
	query := `
		SELECT p.id, p.staff_id, p.month, p.attendance_summary, p.base_salary_snapshot,
		       p.deductions, p.final_amount, p.status, p.paid_at, p.created_at, p.updated_at,
		       s.name, s.role
		FROM staff_payroll p
		JOIN staff s ON s.id = p.staff_id
		WHERE s.restaurant_id = $1 AND p.month = $2
		ORDER BY s.name
	`
	rows, err := r.DB.Query(ctx, query, restaurantID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PayrollRecord
	for rows.Next() {
		rec := &models.PayrollRecord{}
		var summary []byte
		err := rows.Scan(
			&rec.ID,
			&rec.StaffID,
			&rec.Month,
			&summary,
			&rec.BaseSalarySnapshot,
			&rec.Deductions,
			&rec.FinalAmount,
			&rec.Status,
			&rec.PaidAt,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.StaffName,
			&rec.StaffRole,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(summary, &rec.AttendanceSummary); err != nil {
			return nil, fmt.Errorf("corrupt attendance summary on payroll %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// MarkPaid flips a payroll record to paid and stamps paid_at
func (r *PayrollRepository) MarkPaid(ctx context.Context, payrollID string) (*models.PayrollRecord, error) {
	query := `
		UPDATE staff_payroll
		SET status = 'paid', paid_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING id, staff_id, month, attendance_summary, base_salary_snapshot,
		          deductions, final_amount, status, paid_at, created_at, updated_at
	`
	rec := &models.PayrollRecord{}
	var summary []byte
	err := r.DB.QueryRow(ctx, query, payrollID).Scan(
		&rec.ID,
		&rec.StaffID,
		&rec.Month,
		&summary,
		&rec.BaseSalarySnapshot,
		&rec.Deductions,
		&rec.FinalAmount,
		&rec.Status,
		&rec.PaidAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	if err := json.Unmarshal(summary, &rec.AttendanceSummary); err != nil {
		return nil, fmt.Errorf("corrupt attendance summary on payroll %s: %w", rec.ID, err)
	}
	return rec, nil
}
