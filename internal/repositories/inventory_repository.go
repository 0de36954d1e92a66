package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type InventoryRepository struct {
	DB *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (restaurant_id, name, unit, current_stock, min_stock_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		item.RestaurantID, item.Name, item.Unit, item.CurrentStock, item.MinStockLevel,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) ListItems(ctx context.Context, restaurantID string) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, restaurant_id, name, COALESCE(unit, ''), current_stock, min_stock_level, created_at, updated_at
		FROM inventory_items
		WHERE restaurant_id = $1
		ORDER BY name
	`
	return r.queryItems(ctx, query, restaurantID)
}

// ListLowStock returns items at or below their reorder level, or out of
// stock entirely
func (r *InventoryRepository) ListLowStock(ctx context.Context, restaurantID string) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, restaurant_id, name, COALESCE(unit, ''), current_stock, min_stock_level, created_at, updated_at
		FROM inventory_items
		WHERE restaurant_id = $1
		  AND (current_stock <= min_stock_level OR current_stock = 0)
		ORDER BY name
	`
	return r.queryItems(ctx, query, restaurantID)
}

func (r *InventoryRepository) queryItems(ctx context.Context, query string, args ...any) ([]*models.InventoryItem, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item := &models.InventoryItem{}
		err := rows.Scan(
			&item.ID, &item.RestaurantID, &item.Name, &item.Unit,
			&item.CurrentStock, &item.MinStockLevel, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, id string, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET name = $2, unit = $3, min_stock_level = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, restaurant_id, name, COALESCE(unit, ''), current_stock, min_stock_level, created_at, updated_at
	`
	item := &models.InventoryItem{}
	err := r.DB.QueryRow(ctx, query, id, req.Name, req.Unit, req.MinStockLevel).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Unit,
		&item.CurrentStock, &item.MinStockLevel, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordMovement logs the movement and applies delta to the item's stock in
// one transaction, locking the item row so concurrent movements serialize.
// Returns the item's stock level after the movement.
func (r *InventoryRepository) RecordMovement(ctx context.Context, m *models.StockMovement, delta float64) (float64, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to begin movement transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var currentStock float64
	err = tx.QueryRow(ctx, `
		SELECT current_stock FROM inventory_items WHERE id = $1 FOR UPDATE
	`, m.ItemID).Scan(&currentStock)
	if err != nil {
		return 0, notFound(err)
	}

	newStock := currentStock + delta
	if newStock < 0 {
		return 0, fmt.Errorf("movement would drive stock negative: have %.2f, delta %.2f", currentStock, delta)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO stock_movements (restaurant_id, item_id, type, quantity, reason, performed_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, m.RestaurantID, m.ItemID, m.Type, m.Quantity, m.Reason, m.PerformedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert stock movement: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE inventory_items SET current_stock = $2, updated_at = NOW() WHERE id = $1
	`, m.ItemID, newStock)
	if err != nil {
		return 0, fmt.Errorf("failed to update item stock: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newStock, nil
}

// ListMovements returns the newest movements first, joined to item names.
// itemID and movementType narrow the result when non-empty.
func (r *InventoryRepository) ListMovements(ctx context.Context, restaurantID, itemID, movementType string, limit int) ([]*models.StockMovement, error) {
	query := `
		SELECT m.id, m.restaurant_id, m.item_id, m.type, m.quantity,
		       COALESCE(m.reason, ''), COALESCE(m.performed_by, ''), m.created_at,
		       i.name, COALESCE(i.unit, '')
		FROM stock_movements m
		JOIN inventory_items i ON i.id = m.item_id
		WHERE m.restaurant_id = $1
		  AND ($2 = '' OR m.item_id::text = $2)
		  AND ($3 = '' OR m.type = $3)
		ORDER BY m.created_at DESC
		LIMIT $4
	`
	rows, err := r.DB.Query(ctx, query, restaurantID, itemID, movementType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*models.StockMovement
	for rows.Next() {
		m := &models.StockMovement{}
		err := rows.Scan(
			&m.ID, &m.RestaurantID, &m.ItemID, &m.Type, &m.Quantity,
			&m.Reason, &m.PerformedBy, &m.CreatedAt, &m.ItemName, &m.ItemUnit,
		)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *InventoryRepository) CreateCancellation(ctx context.Context, c *models.Cancellation) error {
	query := `
		INSERT INTO cancellations (restaurant_id, order_id, item_name, quantity, reason_category, notes, amount_impact, reported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(ctx, query,
		c.RestaurantID, c.OrderID, c.ItemName, c.Quantity,
		c.ReasonCategory, c.Notes, c.AmountImpact, c.ReportedBy,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create cancellation: %w", err)
	}
	return nil
}

func (r *InventoryRepository) ListCancellations(ctx context.Context, restaurantID string) ([]*models.Cancellation, error) {
	query := `
		SELECT id, restaurant_id, order_id, item_name, quantity,
		       COALESCE(reason_category, ''), COALESCE(notes, ''), amount_impact,
		       COALESCE(reported_by, ''), created_at
		FROM cancellations
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.Cancellation
	for rows.Next() {
		c := &models.Cancellation{}
		err := rows.Scan(
			&c.ID, &c.RestaurantID, &c.OrderID, &c.ItemName, &c.Quantity,
			&c.ReasonCategory, &c.Notes, &c.AmountImpact, &c.ReportedBy, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, c)
	}
	return logs, rows.Err()
}
