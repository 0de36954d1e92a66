package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type OfferRepository struct {
	DB *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	query := `
		INSERT INTO offers (restaurant_id, title, description, type, value, min_amount, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(ctx, query,
		offer.RestaurantID, offer.Title, offer.Description, offer.Type, offer.Value,
		offer.MinAmount, offer.StartDate, offer.EndDate, offer.IsActive,
	).Scan(&offer.ID, &offer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// ListActive returns offers currently valid: active flag set and today
// inside the optional date window.
func (r *OfferRepository) ListActive(ctx context.Context, restaurantID string) ([]*models.Offer, error) {
	query := `
		SELECT id, restaurant_id, title, COALESCE(description, ''), type, value,
		       min_amount, start_date, end_date, is_active, created_at
		FROM offers
		WHERE restaurant_id = $1 AND is_active = TRUE
		  AND (start_date IS NULL OR start_date <= NOW())
		  AND (end_date IS NULL OR end_date >= NOW())
		ORDER BY created_at DESC
	`
	return r.queryOffers(ctx, query, restaurantID)
}

func (r *OfferRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.Offer, error) {
	query := `
		SELECT id, restaurant_id, title, COALESCE(description, ''), type, value,
		       min_amount, start_date, end_date, is_active, created_at
		FROM offers
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`
	return r.queryOffers(ctx, query, restaurantID)
}

func (r *OfferRepository) queryOffers(ctx context.Context, query string, args ...any) ([]*models.Offer, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*models.Offer
	for rows.Next() {
		offer := &models.Offer{}
		err := rows.Scan(
			&offer.ID,
			&offer.RestaurantID,
			&offer.Title,
			&offer.Description,
			&offer.Type,
			&offer.Value,
			&offer.MinAmount,
			&offer.StartDate,
			&offer.EndDate,
			&offer.IsActive,
			&offer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE offers SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
