package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/transbook/transbook-backend/internal/apperrors"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func NewCustomerService(repo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, ownerID string) (*domain.Customer, error) {
	if req.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: creditLimit must not be negative", apperrors.ErrValidation)
	}
	if req.OutstandingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: outstandingAmount must not be negative", apperrors.ErrValidation)
	}

	status := domain.CustomerStatus(req.Status)
	if status == "" {
		status = domain.CustomerActive
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:        uuid.NewString(),
		OwnerID:           ownerID,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		GSTIN:             req.GSTIN,
		CreditLimit:       req.CreditLimit,
		OutstandingAmount: req.OutstandingAmount,
		Status:            status,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID, ownerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID, ownerID)
}

func (s *customerService) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx, ownerID)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, ownerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.GSTIN != nil {
		customer.GSTIN = *req.GSTIN
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: creditLimit must not be negative", apperrors.ErrValidation)
		}
		customer.CreditLimit = *req.CreditLimit
	}
	if req.OutstandingAmount != nil {
		if req.OutstandingAmount.IsNegative() {
			return nil, fmt.Errorf("%w: outstandingAmount must not be negative", apperrors.ErrValidation)
		}
		customer.OutstandingAmount = *req.OutstandingAmount
	}
	if req.Status != nil {
		customer.Status = domain.CustomerStatus(*req.Status)
	}
	customer.UpdatedAt = time.Now()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID, ownerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return err
	}
	return nil
}
