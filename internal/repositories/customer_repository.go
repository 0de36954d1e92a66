package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// Upsert creates or refreshes a customer keyed on (restaurant_id, phone).
// A repeat visit with the same phone updates the name and khata settings
// instead of creating a duplicate.
func (r *CustomerRepository) Upsert(ctx context.Context, c *models.Customer) error {
	query := `
		INSERT INTO customers (restaurant_id, name, phone, email, is_khata_active, credit_limit)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (restaurant_id, phone)
		DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email,
		              is_khata_active = EXCLUDED.is_khata_active,
		              credit_limit = EXCLUDED.credit_limit,
		              updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		c.RestaurantID, c.Name, c.Phone, c.Email, c.IsKhataActive, c.CreditLimit,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (*models.Customer, error) {
	c := &models.Customer{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, restaurant_id, name, phone, COALESCE(email, ''),
		       is_khata_active, credit_limit, created_at, updated_at
		FROM customers
		WHERE id = $1
	`, id).Scan(
		&c.ID, &c.RestaurantID, &c.Name, &c.Phone, &c.Email,
		&c.IsKhataActive, &c.CreditLimit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *CustomerRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.Customer, error) {
	query := `
		SELECT id, restaurant_id, name, phone, COALESCE(email, ''),
		       is_khata_active, credit_limit, created_at, updated_at
		FROM customers
		WHERE restaurant_id = $1
		ORDER BY name
	`
	rows, err := r.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c := &models.Customer{}
		err := rows.Scan(
			&c.ID, &c.RestaurantID, &c.Name, &c.Phone, &c.Email,
			&c.IsKhataActive, &c.CreditLimit, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) CreateKhataTransaction(ctx context.Context, txn *models.KhataTransaction) error {
	query := `
		INSERT INTO khata_transactions (customer_id, order_id, type, amount, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, transaction_date, created_at
	`
	err := r.DB.QueryRow(ctx, query,
		txn.CustomerID, txn.OrderID, txn.Type, txn.Amount, txn.Notes,
	).Scan(&txn.ID, &txn.TransactionDate, &txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create khata transaction: %w", err)
	}
	return nil
}

func (r *CustomerRepository) ListKhataTransactions(ctx context.Context, customerID string) ([]*models.KhataTransaction, error) {
	query := `
		SELECT id, customer_id, order_id, type, amount, COALESCE(notes, ''),
		       transaction_date, created_at
		FROM khata_transactions
		WHERE customer_id = $1
		ORDER BY transaction_date DESC
	`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*models.KhataTransaction
	for rows.Next() {
		txn := &models.KhataTransaction{}
		err := rows.Scan(
			&txn.ID, &txn.CustomerID, &txn.OrderID, &txn.Type,
			&txn.Amount, &txn.Notes, &txn.TransactionDate, &txn.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

// KhataBalance computes outstanding credit: debits minus credits
func (r *CustomerRepository) KhataBalance(ctx context.Context, customerID string) (*models.KhataBalance, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'debit'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'credit'), 0)
		FROM khata_transactions
		WHERE customer_id = $1
	`
	bal := &models.KhataBalance{}
	err := r.DB.QueryRow(ctx, query, customerID).Scan(&bal.TotalDebit, &bal.TotalCredit)
	if err != nil {
		return nil, err
	}
	bal.Balance = bal.TotalDebit - bal.TotalCredit
	return bal, nil
}
