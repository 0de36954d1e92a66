package services

import (
	"context"
	"fmt"

	"resto-backend/internal/models"
	"resto-backend/internal/realtime"
	"resto-backend/internal/repositories"
)

type StaffService struct {
	staffRepo   *repositories.StaffRepository
	advanceRepo *repositories.AdvanceRepository
	hub         *realtime.Hub
}

func NewStaffService(staffRepo *repositories.StaffRepository, advanceRepo *repositories.AdvanceRepository, hub *realtime.Hub) *StaffService {
	return &StaffService{
		staffRepo:   staffRepo,
		advanceRepo: advanceRepo,
		hub:         hub,
	}
}

func (s *StaffService) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffMember, error) {
	if req.SalaryType != models.SalaryMonthly && req.SalaryType != models.SalaryDaily && req.SalaryType != models.SalaryHourly {
		return nil, fmt.Errorf("invalid salary type %q", req.SalaryType)
	}
	staff := &models.StaffMember{
		RestaurantID: req.RestaurantID,
		UserID:       req.UserID,
		Name:         req.Name,
		Role:         req.Role,
		Phone:        req.Phone,
		SalaryType:   req.SalaryType,
		BaseSalary:   req.BaseSalary,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	s.hub.Publish(realtime.Event{
		Type:  realtime.EventInsert,
		Table: realtime.TableStaff,
		New:   staff,
	})
	return staff, nil
}

func (s *StaffService) Get(ctx context.Context, id string) (*models.StaffMember, error) {
	return s.staffRepo.Get(ctx, id)
}

func (s *StaffService) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.StaffMember, error) {
	return s.staffRepo.ListByRestaurant(ctx, restaurantID)
}

// Update publishes the change with both the prior and resulting row so
// session watchers can detect unlinking and deactivation.
func (s *StaffService) Update(ctx context.Context, id string, req *models.UpdateStaffRequest) (*models.StaffMember, error) {
	old, err := s.staffRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.staffRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(realtime.Event{
		Type:  realtime.EventUpdate,
		Table: realtime.TableStaff,
		Old:   old,
		New:   updated,
	})
	return updated, nil
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	deleted, err := s.staffRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.hub.Publish(realtime.Event{
		Type:  realtime.EventDelete,
		Table: realtime.TableStaff,
		Old:   deleted,
	})
	return nil
}

func (s *StaffService) CreateAdvance(ctx context.Context, req *models.CreateAdvanceRequest) (*models.Advance, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("advance amount must be positive")
	}
	adv := &models.Advance{
		StaffID:    req.StaffID,
		Amount:     req.Amount,
		IsRecovery: req.IsRecovery,
		Date:       req.Date,
		Notes:      req.Notes,
	}
	if err := s.advanceRepo.Create(ctx, adv); err != nil {
		return nil, err
	}
	s.hub.Publish(realtime.Event{
		Type:  realtime.EventInsert,
		Table: realtime.TableAdvances,
		New:   adv,
	})
	return adv, nil
}

func (s *StaffService) ListAdvances(ctx context.Context, restaurantID string) ([]*models.Advance, error) {
	return s.advanceRepo.ListByRestaurant(ctx, restaurantID)
}

func (s *StaffService) AdvanceBalance(ctx context.Context, staffID string) (*models.AdvanceBalance, error) {
	return s.advanceRepo.Balance(ctx, staffID)
}
