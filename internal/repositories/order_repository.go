package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order and its items in one transaction so a failed
// item insert never leaves a headless order behind.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (restaurant_id, table_id, status, order_type, total_amount, customer_name, customer_phone)
		VALUES ($1, $2, 'pending', $3, $4, $5, $6)
		RETURNING id, status, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		order.RestaurantID, order.TableID, order.OrderType, order.TotalAmount,
		order.CustomerName, order.CustomerPhone,
	).Scan(&order.ID, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, item_id, quantity, portion, taste_preference, price_at_time)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, item.OrderID, item.ItemID, item.Quantity, item.Portion, item.TastePreference, item.PriceAtTime,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	query := `
		SELECT id, restaurant_id, table_id, status, order_type, total_amount,
		       COALESCE(customer_name, ''), COALESCE(customer_phone, ''), created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	order := &models.Order{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.RestaurantID,
		&order.TableID,
		&order.Status,
		&order.OrderType,
		&order.TotalAmount,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListActive returns non-completed orders for a customer's active bill.
// TableID narrows the match when the customer scanned a specific table.
func (r *OrderRepository) ListActive(ctx context.Context, restaurantID, customerName string, tableID *string) ([]*models.Order, error) {
	query := `
		SELECT id, restaurant_id, table_id, status, order_type, total_amount,
		       COALESCE(customer_name, ''), COALESCE(customer_phone, ''), created_at, updated_at
		FROM orders
		WHERE restaurant_id = $1 AND customer_name = $2
		  AND status NOT IN ('completed', 'cancelled')
		  AND ($3::uuid IS NULL OR table_id = $3)
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, restaurantID, customerName, tableID)
}

// ListByStatus feeds the kitchen/counter live board
func (r *OrderRepository) ListByStatus(ctx context.Context, restaurantID string, statuses []string) ([]*models.Order, error) {
	query := `
		SELECT id, restaurant_id, table_id, status, order_type, total_amount,
		       COALESCE(customer_name, ''), COALESCE(customer_phone, ''), created_at, updated_at
		FROM orders
		WHERE restaurant_id = $1 AND status = ANY($2)
		ORDER BY created_at
	`
	return r.queryOrders(ctx, query, restaurantID, statuses)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*models.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.RestaurantID,
			&order.TableID,
			&order.Status,
			&order.OrderType,
			&order.TotalAmount,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		if err := r.loadItems(ctx, order); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, order *models.Order) error {
	rows, err := r.DB.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.item_id, oi.quantity, oi.portion,
		       COALESCE(oi.taste_preference, ''), oi.price_at_time, m.name
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.item_id
		WHERE oi.order_id = $1
	`, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = nil
	for rows.Next() {
		item := models.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ItemID,
			&item.Quantity,
			&item.Portion,
			&item.TastePreference,
			&item.PriceAtTime,
			&item.ItemName,
		)
		if err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, restaurant_id, table_id, status, order_type, total_amount,
		          COALESCE(customer_name, ''), COALESCE(customer_phone, ''), created_at, updated_at
	`
	order := &models.Order{}
	err := r.DB.QueryRow(ctx, query, id, status).Scan(
		&order.ID,
		&order.RestaurantID,
		&order.TableID,
		&order.Status,
		&order.OrderType,
		&order.TotalAmount,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
