package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (order_id, amount, method, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query, p.OrderID, p.Amount, p.Method, p.Status).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID string) ([]*models.Payment, error) {
	query := `
		SELECT id, order_id, amount, method, status, created_at, updated_at
		FROM payments
		WHERE order_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) CreateOnlineTransaction(ctx context.Context, txn *models.OnlineTransaction) error {
	query := `
		INSERT INTO online_transactions (payment_id, razorpay_order_id, amount, currency, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		txn.PaymentID, txn.RazorpayOrderID, txn.Amount, txn.Currency, txn.Status,
	).Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create online transaction: %w", err)
	}
	return nil
}

// GetOnlineByRazorpayOrder looks up the transaction a webhook refers to
func (r *PaymentRepository) GetOnlineByRazorpayOrder(ctx context.Context, razorpayOrderID string) (*models.OnlineTransaction, error) {
	txn := &models.OnlineTransaction{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, payment_id, razorpay_order_id, COALESCE(razorpay_payment_id, ''),
		       amount, currency, status, created_at, updated_at
		FROM online_transactions
		WHERE razorpay_order_id = $1
	`, razorpayOrderID).Scan(
		&txn.ID, &txn.PaymentID, &txn.RazorpayOrderID, &txn.RazorpayPaymentID,
		&txn.Amount, &txn.Currency, &txn.Status, &txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return txn, nil
}

// SettleOnlineTransaction records the gateway payment id and final status
func (r *PaymentRepository) SettleOnlineTransaction(ctx context.Context, id, razorpayPaymentID, status string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE online_transactions
		SET razorpay_payment_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`, id, razorpayPaymentID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
