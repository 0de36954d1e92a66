package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type VendorRepository struct {
	DB *pgxpool.Pool
}

func NewVendorRepository(db *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(ctx context.Context, v *models.Vendor) error {
	query := `
		INSERT INTO vendors (restaurant_id, name, phone, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(ctx, query, v.RestaurantID, v.Name, v.Phone, v.Category).
		Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

func (r *VendorRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.Vendor, error) {
	query := `
		SELECT id, restaurant_id, name, COALESCE(phone, ''), COALESCE(category, ''), created_at
		FROM vendors
		WHERE restaurant_id = $1
		ORDER BY name
	`
	rows, err := r.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []*models.Vendor
	for rows.Next() {
		v := &models.Vendor{}
		err := rows.Scan(&v.ID, &v.RestaurantID, &v.Name, &v.Phone, &v.Category, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *VendorRepository) CreatePurchase(ctx context.Context, p *models.Purchase) error {
	query := `
		INSERT INTO purchases (restaurant_id, vendor_id, item_name, quantity, unit, amount, paid_amount, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(ctx, query,
		p.RestaurantID, p.VendorID, p.ItemName, p.Quantity, p.Unit,
		p.Amount, p.PaidAmount, p.PurchaseDate,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (r *VendorRepository) ListPurchases(ctx context.Context, restaurantID string) ([]*models.Purchase, error) {
	query := `
		SELECT p.id, p.restaurant_id, p.vendor_id, p.item_name, p.quantity, COALESCE(p.unit, ''),
		       p.amount, p.paid_amount, to_char(p.purchase_date, 'YYYY-MM-DD'), p.created_at, v.name
		FROM purchases p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE p.restaurant_id = $1
		ORDER BY p.purchase_date DESC
	`
	rows, err := r.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		p := &models.Purchase{}
		err := rows.Scan(
			&p.ID, &p.RestaurantID, &p.VendorID, &p.ItemName, &p.Quantity, &p.Unit,
			&p.Amount, &p.PaidAmount, &p.PurchaseDate, &p.CreatedAt, &p.VendorName,
		)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// VendorPayable is the outstanding amount owed to a vendor
func (r *VendorRepository) VendorPayable(ctx context.Context, vendorID string) (float64, error) {
	var payable float64
	err := r.DB.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount - paid_amount), 0)
		FROM purchases
		WHERE vendor_id = $1
	`, vendorID).Scan(&payable)
	if err != nil {
		return 0, err
	}
	return payable, nil
}
