package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-backend/internal/models"
)

type StaffRepository struct {
	DB *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{DB: db}
}

const staffColumns = `id, restaurant_id, user_id, name, role, COALESCE(phone, ''), salary_type,
	base_salary, status, joined_at, created_at, updated_at`

func (r *StaffRepository) scanStaff(row interface{ Scan(...any) error }) (*models.StaffMember, error) {
	s := &models.StaffMember{}
	err := row.Scan(
		&s.ID,
		&s.RestaurantID,
		&s.UserID,
		&s.Name,
		&s.Role,
		&s.Phone,
		&s.SalaryType,
		&s.BaseSalary,
		&s.Status,
		&s.JoinedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StaffRepository) Create(ctx context.Context, s *models.StaffMember) error {
	query := `
		INSERT INTO staff (restaurant_id, user_id, name, role, phone, salary_type, base_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'active')
		RETURNING id, status, joined_at, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		s.RestaurantID, s.UserID, s.Name, s.Role, s.Phone, s.SalaryType, s.BaseSalary,
	).Scan(&s.ID, &s.Status, &s.JoinedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *StaffRepository) Get(ctx context.Context, id string) (*models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	s, err := r.scanStaff(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// GetByUserID resolves the active staff profile linked to an auth user.
// At most one active row exists per user_id.
func (r *StaffRepository) GetByUserID(ctx context.Context, userID string) (*models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE user_id = $1 AND status = 'active'`
	s, err := r.scanStaff(r.DB.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *StaffRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE restaurant_id = $1 ORDER BY name`
	rows, err := r.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*models.StaffMember
	for rows.Next() {
		s, err := r.scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func (r *StaffRepository) Update(ctx context.Context, id string, req *models.UpdateStaffRequest) (*models.StaffMember, error) {
	query := `
		UPDATE staff
		SET name = $2, role = $3, phone = $4, salary_type = $5, base_salary = $6,
		    status = $7, user_id = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + staffColumns
	s, err := r.scanStaff(r.DB.QueryRow(ctx, query,
		id, req.Name, req.Role, req.Phone, req.SalaryType, req.BaseSalary, req.Status, req.UserID,
	))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Delete returns the deleted row so the change event can carry it
func (r *StaffRepository) Delete(ctx context.Context, id string) (*models.StaffMember, error) {
	query := `DELETE FROM staff WHERE id = $1 RETURNING ` + staffColumns
	s, err := r.scanStaff(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}
