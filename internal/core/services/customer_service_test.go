package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transbook/transbook-backend/internal/apperrors"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/core/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID, ownerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID, ownerID string) error {
	args := m.Called(ctx, customerID, ownerID)
	return args.Error(0)
}

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
	ownerID  string
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:        "Sharma Logistics",
		Email:       "ops@sharmalogistics.example",
		CreditLimit: decimal.NewFromInt(50000),
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && c.OwnerID == suite.ownerID && c.Status == domain.CustomerActive && c.CustomerID != ""
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.Equal(suite.ownerID, customer.OwnerID)
	suite.Equal(domain.CustomerActive, customer.Status)
	suite.True(customer.CreditLimit.Equal(req.CreditLimit))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_NegativeCreditLimit() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:        "Bad Limit Co",
		CreditLimit: decimal.NewFromInt(-1),
	}

	customer, err := suite.service.CreateCustomer(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_ExplicitStatusKept() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:   "Dormant Freight",
		Status: "inactive",
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Status == domain.CustomerInactive
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(domain.CustomerInactive, customer.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByID_OtherOwnerNotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("FindCustomerByID", ctx, customerID, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.GetCustomerByID(ctx, customerID, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialMergePreservesOmitted() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{
		CustomerID:  customerID,
		OwnerID:     suite.ownerID,
		Name:        "Old Name",
		Phone:       "9876543210",
		CreditLimit: decimal.NewFromInt(20000),
		Status:      domain.CustomerActive,
	}
	newName := "New Name"
	req := dto.UpdateCustomerRequest{Name: &newName}

	suite.mockRepo.On("FindCustomerByID", ctx, customerID, suite.ownerID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == newName && c.Phone == "9876543210" && c.CreditLimit.Equal(decimal.NewFromInt(20000))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, customerID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.True(updated.CreditLimit.Equal(decimal.NewFromInt(20000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_NegativeCreditLimitRejected() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{CustomerID: customerID, OwnerID: suite.ownerID, Name: "Someone"}
	negative := decimal.NewFromInt(-500)
	req := dto.UpdateCustomerRequest{CreditLimit: &negative}

	suite.mockRepo.On("FindCustomerByID", ctx, customerID, suite.ownerID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, customerID, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_AbsentIsSuccess() {
	ctx := context.Background()
	customerID := uuid.NewString()

	// The repository treats zero rows affected as success.
	suite.mockRepo.On("DeleteCustomer", ctx, customerID, suite.ownerID).Return(nil).Once()

	err := suite.service.DeleteCustomer(ctx, customerID, suite.ownerID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestListCustomers_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCustomers", ctx, suite.ownerID).Return([]domain.Customer{}, nil).Once()

	customers, err := suite.service.ListCustomers(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotNil(customers)
	suite.Empty(customers)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestListCustomers_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListCustomers", ctx, suite.ownerID).Return(nil, expectedErr).Once()

	customers, err := suite.service.ListCustomers(ctx, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(customers)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
