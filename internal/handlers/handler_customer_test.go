package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transbook/transbook-backend/internal/apperrors"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
	"github.com/transbook/transbook-backend/internal/handlers"
	"github.com/transbook/transbook-backend/pkg/config"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, ownerID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID, ownerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, ownerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID, ownerID string) error {
	args := m.Called(ctx, customerID, ownerID)
	return args.Error(0)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Test Suite ---
type CustomerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCustomerService
	jwtSecret   string
	userID      string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CustomerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "transbook-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockService = new(MockCustomerService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger registration
	}
	container := &portssvc.ServiceContainer{Customer: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *CustomerHandlerTestSuite) doRequest(method, url string, body []byte, withToken bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CustomerHandlerTestSuite) TestListCustomers_NoToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/customers", nil, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListCustomers", mock.Anything, mock.Anything)
}

func (suite *CustomerHandlerTestSuite) TestListCustomers_Success() {
	expected := []domain.Customer{
		{CustomerID: uuid.NewString(), OwnerID: suite.userID, Name: "Sharma Logistics"},
	}
	suite.mockService.On("ListCustomers", mock.Anything, suite.userID).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var got []domain.Customer
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Equal("Sharma Logistics", got[0].Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	body := []byte(`{"name":"Sharma Logistics","creditLimit":"50000"}`)
	created := &domain.Customer{
		CustomerID:  uuid.NewString(),
		OwnerID:     suite.userID,
		Name:        "Sharma Logistics",
		CreditLimit: decimal.NewFromInt(50000),
		Status:      domain.CustomerActive,
	}
	suite.mockService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(r dto.CreateCustomerRequest) bool {
		return r.Name == "Sharma Logistics"
	}), suite.userID).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/customers", body, true)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.Customer
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(created.CustomerID, got.CustomerID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_MissingName() {
	body := []byte(`{"creditLimit":"50000"}`)

	w := suite.doRequest(http.MethodPost, "/api/v1/customers", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CustomerHandlerTestSuite) TestGetCustomerByID_NotFound() {
	customerID := uuid.NewString()
	suite.mockService.On("GetCustomerByID", mock.Anything, customerID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/"+customerID, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestUpdateCustomer_ValidationError() {
	customerID := uuid.NewString()
	body := []byte(`{"creditLimit":"-5"}`)
	suite.mockService.On("UpdateCustomer", mock.Anything, customerID, mock.Anything, suite.userID).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/customers/"+customerID, body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer_NoContent() {
	customerID := uuid.NewString()
	suite.mockService.On("DeleteCustomer", mock.Anything, customerID, suite.userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/customers/"+customerID, nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestHealthCheck_Public() {
	w := suite.doRequest(http.MethodGet, "/api/health", nil, false)

	suite.Equal(http.StatusOK, w.Code)
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
