package services

import (
	"context"
	"errors"
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

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
	tripRepo    portsrepo.TripRepository
	vehicleRepo portsrepo.VehicleRepository
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, tripRepo portsrepo.TripRepository, vehicleRepo portsrepo.VehicleRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *expenseService) checkReferences(ctx context.Context, tripID, vehicleID *string, ownerID string) error {
	if tripID != nil {
		if _, err := s.tripRepo.FindTripByID(ctx, *tripID, ownerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: trip %s not found", apperrors.ErrValidation, *tripID)
			}
			return err
		}
	}
	if vehicleID != nil {
		if _, err := s.vehicleRepo.FindVehicleByID(ctx, *vehicleID, ownerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: vehicle %s not found", apperrors.ErrValidation, *vehicleID)
			}
			return err
		}
	}
	return nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, ownerID string) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := s.checkReferences(ctx, req.TripID, req.VehicleID, ownerID); err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerID:     ownerID,
		TripID:      req.TripID,
		VehicleID:   req.VehicleID,
		Category:    domain.ExpenseCategory(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		BillNumber:  req.BillNumber,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID), slog.String("category", req.Category))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID, ownerID)
}

func (s *expenseService) ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	return s.expenseRepo.ListExpenses(ctx, ownerID)
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, ownerID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.TripID != nil {
		expense.TripID = req.TripID
	}
	if req.VehicleID != nil {
		expense.VehicleID = req.VehicleID
	}
	if req.TripID != nil || req.VehicleID != nil {
		if err := s.checkReferences(ctx, expense.TripID, expense.VehicleID, ownerID); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		expense.Category = domain.ExpenseCategory(*req.Category)
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.BillNumber != nil {
		expense.BillNumber = *req.BillNumber
	}
	expense.UpdatedAt = time.Now()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID, ownerID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	return nil
}
