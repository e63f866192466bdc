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

type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepository
	customerRepo portsrepo.CustomerRepository
	tripRepo     portsrepo.TripRepository
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, customerRepo portsrepo.CustomerRepository, tripRepo portsrepo.TripRepository) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		tripRepo:     tripRepo,
	}
}

func (s *invoiceService) checkReferences(ctx context.Context, customerID string, tripID *string, ownerID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID, ownerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, customerID)
		}
		return err
	}
	if tripID != nil {
		if _, err := s.tripRepo.FindTripByID(ctx, *tripID, ownerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: trip %s not found", apperrors.ErrValidation, *tripID)
			}
			return err
		}
	}
	return nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, ownerID string) (*domain.Invoice, error) {
	if req.Amount.IsNegative() || req.GSTAmount.IsNegative() || req.TotalAmount.IsNegative() || req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice amounts must not be negative", apperrors.ErrValidation)
	}
	if err := s.checkReferences(ctx, req.CustomerID, req.TripID, ownerID); err != nil {
		return nil, err
	}

	status := domain.InvoiceStatus(req.Status)
	if status == "" {
		status = domain.InvoiceDraft
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		OwnerID:       ownerID,
		CustomerID:    req.CustomerID,
		TripID:        req.TripID,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		GSTAmount:     req.GSTAmount,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    req.PaidAmount,
		DueDate:       req.DueDate,
		PaidDate:      req.PaidDate,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, ownerID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx, ownerID)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, ownerID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		invoice.CustomerID = *req.CustomerID
	}
	if req.TripID != nil {
		invoice.TripID = req.TripID
	}
	if req.CustomerID != nil || req.TripID != nil {
		if err := s.checkReferences(ctx, invoice.CustomerID, invoice.TripID, ownerID); err != nil {
			return nil, err
		}
	}
	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		invoice.Amount = *req.Amount
	}
	if req.GSTAmount != nil {
		if req.GSTAmount.IsNegative() {
			return nil, fmt.Errorf("%w: gstAmount must not be negative", apperrors.ErrValidation)
		}
		invoice.GSTAmount = *req.GSTAmount
	}
	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return nil, fmt.Errorf("%w: totalAmount must not be negative", apperrors.ErrValidation)
		}
		invoice.TotalAmount = *req.TotalAmount
	}
	if req.PaidAmount != nil {
		if req.PaidAmount.IsNegative() {
			return nil, fmt.Errorf("%w: paidAmount must not be negative", apperrors.ErrValidation)
		}
		invoice.PaidAmount = *req.PaidAmount
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.PaidDate != nil {
		invoice.PaidDate = req.PaidDate
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
	}
	invoice.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}
	return nil
}
