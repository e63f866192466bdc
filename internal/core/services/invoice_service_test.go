package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transbook/transbook-backend/internal/apperrors"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/core/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error {
	args := m.Called(ctx, invoiceID, ownerID)
	return args.Error(0)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockCustomerRepo *MockCustomerRepository
	mockTripRepo     *MockTripRepository
	service          portssvc.InvoiceSvcFacade
	ownerID          string
	customerID       string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockCustomerRepo, suite.mockTripRepo)
	suite.ownerID = uuid.NewString()
	suite.customerID = uuid.NewString()
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_WithoutTrip() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customerID,
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(10000),
		GSTAmount:     decimal.NewFromInt(1800),
		TotalAmount:   decimal.NewFromInt(11800),
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID, suite.ownerID).
		Return(&domain.Customer{CustomerID: suite.customerID}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(i domain.Invoice) bool {
		return i.OwnerID == suite.ownerID && i.TripID == nil && i.Status == domain.InvoiceDraft
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Nil(invoice.TripID)
	suite.Equal(domain.InvoiceDraft, invoice.Status)
	// No trip reference means no trip lookup.
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindTripByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TripMustBeOwned() {
	ctx := context.Background()
	tripID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customerID,
		TripID:        &tripID,
		InvoiceNumber: "INV-002",
		TotalAmount:   decimal.NewFromInt(5000),
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID, suite.ownerID).
		Return(&domain.Customer{CustomerID: suite.customerID}, nil).Once()
	suite.mockTripRepo.On("FindTripByID", ctx, tripID, suite.ownerID).
		Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customerID,
		InvoiceNumber: "INV-003",
		Amount:        decimal.NewFromInt(-1),
	}

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customerID,
		InvoiceNumber: "INV-004",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customerID, suite.ownerID).
		Return(&domain.Customer{CustomerID: suite.customerID}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(apperrors.ErrDuplicate).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_MarkPaid() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerID:       suite.ownerID,
		CustomerID:    suite.customerID,
		InvoiceNumber: "INV-005",
		TotalAmount:   decimal.NewFromInt(11800),
		Status:        domain.InvoiceSent,
	}
	paid := "paid"
	paidAmount := decimal.NewFromInt(11800)
	req := dto.UpdateInvoiceRequest{Status: &paid, PaidAmount: &paidAmount}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID, suite.ownerID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(i domain.Invoice) bool {
		return i.Status == domain.InvoicePaid && i.PaidAmount.Equal(paidAmount)
	})).Return(nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
