package repositories

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type TableRepository struct {
	DB *pgxpool.Pool
}

func NewTableRepository(db *pgxpool.Pool) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	rest := &models.Restaurant{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(phone, ''), created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Phone, &rest.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return rest, nil
}

// Create assigns a random QR token the customer app resolves back to
// the table via ResolveQRToken.
func (r *TableRepository) Create(ctx context.Context, table *models.Table) error {
	token := make([]byte, 16)
	if _, err := rand.Read(token); err != nil {
		return fmt.Errorf("failed to generate qr token: %w", err)
	}
	table.QRToken = hex.EncodeToString(token)

	query := `
		INSERT INTO restaurant_tables (restaurant_id, table_number, qr_token, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`
	err := r.DB.QueryRow(ctx, query,
		table.RestaurantID, table.TableNumber, table.QRToken, table.Capacity,
	).Scan(&table.ID, &table.IsActive, &table.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.Table, error) {
	query := `
		SELECT id, restaurant_id, table_number, qr_token, capacity, is_active, created_at
		FROM restaurant_tables
		WHERE restaurant_id = $1
		ORDER BY table_number
	`
	rows, err := r.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*models.Table
	for rows.Next() {
		table := &models.Table{}
		err := rows.Scan(
			&table.ID,
			&table.RestaurantID,
			&table.TableNumber,
			&table.QRToken,
			&table.Capacity,
			&table.IsActive,
			&table.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

// ResolveQRToken maps a scanned QR token to its active table
func (r *TableRepository) ResolveQRToken(ctx context.Context, token string) (*models.Table, error) {
	table := &models.Table{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, restaurant_id, table_number, qr_token, capacity, is_active, created_at
		FROM restaurant_tables
		WHERE qr_token = $1 AND is_active = TRUE
	`, token).Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.QRToken,
		&table.Capacity,
		&table.IsActive,
		&table.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return table, nil
}

func (r *TableRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE restaurant_tables SET is_active = $2 WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
