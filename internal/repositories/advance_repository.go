package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type AdvanceRepository struct {
	DB *pgxpool.Pool
}

func NewAdvanceRepository(db *pgxpool.Pool) *AdvanceRepository {
	return &AdvanceRepository{DB: db}
}

func (r *AdvanceRepository) Create(ctx context.Context, adv *models.Advance) error {
	query := `
		INSERT INTO staff_advances (staff_id, amount, is_recovery, date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(ctx, query,
		adv.StaffID, adv.Amount, adv.IsRecovery, adv.Date, adv.Notes,
	).Scan(&adv.ID, &adv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create advance: %w", err)
	}
	return nil
}

func (r *AdvanceRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.Advance, error) {
	query := `
		SELECT a.id, a.staff_id, a.amount, a.is_recovery, to_char(a.date, 'YYYY-MM-DD'),
		       COALESCE(a.notes, ''), a.created_at, s.name
		FROM staff_advances a
		JOIN staff s ON s.id = a.staff_id
		WHERE s.restaurant_id = $1
		ORDER BY a.date DESC
	`
	rows, err := r.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advances []*models.Advance
	for rows.Next() {
		adv := &models.Advance{}
		err := rows.Scan(
			&adv.ID,
			&adv.StaffID,
			&adv.Amount,
			&adv.IsRecovery,
			&adv.Date,
			&adv.Notes,
			&adv.CreatedAt,
			&adv.StaffName,
		)
		if err != nil {
			return nil, err
		}
		advances = append(advances, adv)
	}
	return advances, rows.Err()
}

// Balance computes the outstanding advance for a staff member:
// sum of advances minus sum of recoveries.
func (r *AdvanceRepository) Balance(ctx context.Context, staffID string) (*models.AdvanceBalance, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE NOT is_recovery), 0),
		       COALESCE(SUM(amount) FILTER (WHERE is_recovery), 0)
		FROM staff_advances
		WHERE staff_id = $1
	`
	bal := &models.AdvanceBalance{}
	err := r.DB.QueryRow(ctx, query, staffID).Scan(&bal.TotalAdvance, &bal.TotalRecovery)
	if err != nil {
		return nil, err
	}
	bal.Balance = bal.TotalAdvance - bal.TotalRecovery
	return bal, nil
}
