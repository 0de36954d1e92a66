package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type MenuRepository struct {
	DB *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GetMenu returns categories in sort order, each with its items
func (r *MenuRepository) GetMenu(ctx context.Context, restaurantID string) ([]*models.MenuCategory, error) {
	catQuery := `
		SELECT id, restaurant_id, name, sort_order, created_at
		FROM menu_categories
		WHERE restaurant_id = $1
		ORDER BY sort_order
	`
	rows, err := r.DB.Query(ctx, catQuery, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.MenuCategory
	index := make(map[string]*models.MenuCategory)
	for rows.Next() {
		cat := &models.MenuCategory{Items: []models.MenuItem{}}
		if err := rows.Scan(&cat.ID, &cat.RestaurantID, &cat.Name, &cat.SortOrder, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
		index[cat.ID] = cat
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT i.id, i.category_id, i.name, COALESCE(i.description, ''), i.price_full, i.price_half,
		       i.is_veg, i.is_available, COALESCE(i.image, ''), i.created_at, i.updated_at
		FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		WHERE c.restaurant_id = $1
		ORDER BY i.name
	`
	itemRows, err := r.DB.Query(ctx, itemQuery, restaurantID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item := models.MenuItem{}
		err := itemRows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.Name,
			&item.Description,
			&item.PriceFull,
			&item.PriceHalf,
			&item.IsVeg,
			&item.IsAvailable,
			&item.Image,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if cat, ok := index[item.CategoryID]; ok {
			cat.Items = append(cat.Items, item)
		}
	}
	return categories, itemRows.Err()
}

// GetItems fetches menu items by ID for server-side order pricing
func (r *MenuRepository) GetItems(ctx context.Context, ids []string) (map[string]*models.MenuItem, error) {
	query := `
		SELECT id, category_id, name, COALESCE(description, ''), price_full, price_half,
		       is_veg, is_available, COALESCE(image, ''), created_at, updated_at
		FROM menu_items
		WHERE id = ANY($1)
	`
	rows, err := r.DB.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string]*models.MenuItem, len(ids))
	for rows.Next() {
		item := &models.MenuItem{}
		err := rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.Name,
			&item.Description,
			&item.PriceFull,
			&item.PriceHalf,
			&item.IsVeg,
			&item.IsAvailable,
			&item.Image,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items[item.ID] = item
	}
	return items, rows.Err()
}

func (r *MenuRepository) CreateCategory(ctx context.Context, cat *models.MenuCategory) error {
	query := `
		INSERT INTO menu_categories (restaurant_id, name, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(ctx, query, cat.RestaurantID, cat.Name, cat.SortOrder).
		Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (category_id, name, description, price_full, price_half, is_veg, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_available, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		item.CategoryID, item.Name, item.Description, item.PriceFull, item.PriceHalf, item.IsVeg, item.Image,
	).Scan(&item.ID, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, id string, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price_full = $4, price_half = $5,
		    is_veg = $6, is_available = $7, image = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING id, category_id, name, COALESCE(description, ''), price_full, price_half,
		          is_veg, is_available, COALESCE(image, ''), created_at, updated_at
	`
	item := &models.MenuItem{}
	err := r.DB.QueryRow(ctx, query,
		id, req.Name, req.Description, req.PriceFull, req.PriceHalf, req.IsVeg, req.IsAvailable, req.Image,
	).Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Description,
		&item.PriceFull,
		&item.PriceHalf,
		&item.IsVeg,
		&item.IsAvailable,
		&item.Image,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

// SetItemImage updates only the image URL after an upload to media storage
func (r *MenuRepository) SetItemImage(ctx context.Context, id, imageURL string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE menu_items SET image = $2, updated_at = NOW() WHERE id = $1`,
		id, imageURL,
	)
	return err
}

// RestaurantForItem resolves the owning restaurant, used for cache invalidation
func (r *MenuRepository) RestaurantForItem(ctx context.Context, itemID string) (string, error) {
	var restaurantID string
	err := r.DB.QueryRow(ctx, `
		SELECT c.restaurant_id FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		WHERE i.id = $1
	`, itemID).Scan(&restaurantID)
	if err != nil {
		return "", notFound(err)
	}
	return restaurantID, nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
