package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"resto-backend/internal/cache"
	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
	"resto-backend/internal/storage"
)

type MenuService struct {
	menuRepo *repositories.MenuRepository
	media    *storage.MediaStore
}

func NewMenuService(menuRepo *repositories.MenuRepository, media *storage.MediaStore) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		media:    media,
	}
}

// GetMenu returns the public menu for a restaurant, served from the Redis
// cache when warm. The cache stores the encoded JSON so cache hits skip
// both the database and re-encoding.
func (s *MenuService) GetMenu(ctx context.Context, restaurantID string) ([]byte, error) {
	if data, ok := cache.GetCachedMenu(ctx, restaurantID); ok {
		return data, nil
	}

	menu, err := s.menuRepo.GetMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(menu)
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu: %w", err)
	}
	cache.CacheMenu(ctx, restaurantID, data)
	return data, nil
}

func (s *MenuService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.MenuCategory, error) {
	cat := &models.MenuCategory{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		SortOrder:    req.SortOrder,
		Items:        []models.MenuItem{},
	}
	if err := s.menuRepo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	cache.InvalidateMenu(ctx, req.RestaurantID)
	return cat, nil
}

func (s *MenuService) CreateItem(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if req.PriceFull <= 0 {
		return nil, fmt.Errorf("price_full must be positive")
	}
	item := &models.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceFull:   req.PriceFull,
		PriceHalf:   req.PriceHalf,
		IsVeg:       req.IsVeg,
		Image:       req.Image,
	}
	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateForItem(ctx, item.ID)
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id string, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menuRepo.UpdateItem(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidateForItem(ctx, id)
	return item, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id string) error {
	// Resolve the restaurant before the row disappears
	restaurantID, err := s.menuRepo.RestaurantForItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.menuRepo.DeleteItem(ctx, id); err != nil {
		return err
	}
	cache.InvalidateMenu(ctx, restaurantID)
	return nil
}

// UploadItemImage stores the image in media storage and saves the public
// URL on the menu item.
func (s *MenuService) UploadItemImage(ctx context.Context, itemID string, data []byte, contentType string) (string, error) {
	restaurantID, err := s.menuRepo.RestaurantForItem(ctx, itemID)
	if err != nil {
		return "", err
	}
	url, err := s.media.UploadMenuImage(ctx, restaurantID, itemID, data, contentType)
	if err != nil {
		return "", err
	}
	if err := s.menuRepo.SetItemImage(ctx, itemID, url); err != nil {
		return "", err
	}
	cache.InvalidateMenu(ctx, restaurantID)
	return url, nil
}

func (s *MenuService) invalidateForItem(ctx context.Context, itemID string) {
	restaurantID, err := s.menuRepo.RestaurantForItem(ctx, itemID)
	if err != nil {
		log.Printf("[Menu] Failed to resolve restaurant for item %s: %v", itemID, err)
		return
	}
	cache.InvalidateMenu(ctx, restaurantID)
}
