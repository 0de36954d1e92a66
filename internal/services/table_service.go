package services

import (
	"context"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
)

type TableService struct {
	tableRepo *repositories.TableRepository
}

func NewTableService(tableRepo *repositories.TableRepository) *TableService {
	return &TableService{tableRepo: tableRepo}
}

func (s *TableService) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.tableRepo.GetRestaurant(ctx, id)
}

func (s *TableService) Create(ctx context.Context, table *models.Table) error {
	return s.tableRepo.Create(ctx, table)
}

func (s *TableService) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.Table, error) {
	return s.tableRepo.ListByRestaurant(ctx, restaurantID)
}

func (s *TableService) ResolveQRToken(ctx context.Context, token string) (*models.Table, error) {
	return s.tableRepo.ResolveQRToken(ctx, token)
}

func (s *TableService) SetActive(ctx context.Context, id string, active bool) error {
	return s.tableRepo.SetActive(ctx, id, active)
}
