package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type AttendanceRepository struct {
	DB *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// Upsert writes one day's attendance for a staff member. The unique
// constraint on (staff_id, date) makes a repeated mark overwrite the
// earlier one instead of creating a duplicate row.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *models.AttendanceRecord) error {
	query := `
		INSERT INTO staff_attendance (staff_id, date, status, notes, in_time, out_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, date)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes,
		              in_time = EXCLUDED.in_time, out_time = EXCLUDED.out_time,
		              updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		rec.StaffID, rec.Date, rec.Status, rec.Notes, rec.InTime, rec.OutTime,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// ListByDate returns all attendance rows for a restaurant on one date
func (r *AttendanceRepository) ListByDate(ctx context.Context, restaurantID, date string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.staff_id, to_char(a.date, 'YYYY-MM-DD'), a.status, COALESCE(a.notes, ''),
		       a.in_time, a.out_time, a.created_at, a.updated_at
		FROM staff_attendance a
		JOIN staff s ON s.id = a.staff_id
		WHERE s.restaurant_id = $1 AND a.date = $2
	`
	return r.queryRecords(ctx, query, restaurantID, date)
}

// ListRange returns a staff member's attendance inside [startDate, endDate]
func (r *AttendanceRepository) ListRange(ctx context.Context, staffID, startDate, endDate string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, staff_id, to_char(date, 'YYYY-MM-DD'), status, COALESCE(notes, ''),
		       in_time, out_time, created_at, updated_at
		FROM staff_attendance
		WHERE staff_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`
	return r.queryRecords(ctx, query, staffID, startDate, endDate)
}

func (r *AttendanceRepository) queryRecords(ctx context.Context, query string, args ...any) ([]*models.AttendanceRecord, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		err := rows.Scan(
			&rec.ID,
			&rec.StaffID,
			&rec.Date,
			&rec.Status,
			&rec.Notes,
			&rec.InTime,
			&rec.OutTime,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
