package services

import (
	"context"
	"fmt"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
)

type KhataService struct {
	customerRepo *repositories.CustomerRepository
}

func NewKhataService(customerRepo *repositories.CustomerRepository) *KhataService {
	return &KhataService{customerRepo: customerRepo}
}

// UpsertCustomer creates or refreshes a customer record keyed on phone
func (s *KhataService) UpsertCustomer(ctx context.Context, req *models.UpsertCustomerRequest) (*models.Customer, error) {
	if req.Phone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}
	c := &models.Customer{
		RestaurantID:  req.RestaurantID,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		IsKhataActive: req.IsKhataActive,
		CreditLimit:   req.CreditLimit,
	}
	if err := s.customerRepo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *KhataService) ListCustomers(ctx context.Context, restaurantID string) ([]*models.Customer, error) {
	return s.customerRepo.ListByRestaurant(ctx, restaurantID)
}

// RecordTransaction writes one khata ledger entry. Debits require an active
// khata and respect the customer's credit limit when one is set.
func (s *KhataService) RecordTransaction(ctx context.Context, req *models.CreateKhataTransactionRequest) (*models.KhataTransaction, error) {
	if req.Type != models.KhataDebit && req.Type != models.KhataCredit {
		return nil, fmt.Errorf("invalid khata transaction type %q", req.Type)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("khata amount must be positive")
	}

	customer, err := s.customerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	if req.Type == models.KhataDebit {
		if !customer.IsKhataActive {
			return nil, fmt.Errorf("khata is not active for customer %s", customer.Name)
		}
		if customer.CreditLimit > 0 {
			bal, err := s.customerRepo.KhataBalance(ctx, req.CustomerID)
			if err != nil {
				return nil, err
			}
			if bal.Balance+req.Amount > customer.CreditLimit {
				return nil, fmt.Errorf("credit limit exceeded: outstanding %.2f, limit %.2f", bal.Balance, customer.CreditLimit)
			}
		}
	}

	txn := &models.KhataTransaction{
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		Type:       req.Type,
		Amount:     req.Amount,
		Notes:      req.Notes,
	}
	if err := s.customerRepo.CreateKhataTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *KhataService) Ledger(ctx context.Context, customerID string) ([]*models.KhataTransaction, *models.KhataBalance, error) {
	txns, err := s.customerRepo.ListKhataTransactions(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	bal, err := s.customerRepo.KhataBalance(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	return txns, bal, nil
}
