package handlers_test

import (
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/handlers"
	"github.com/transbook/transbook-backend/pkg/config"
)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Test Suite ---
type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDashboardService
	jwtSecret   string
	userID      string
}

func (suite *DashboardHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockService = new(MockDashboardService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{Dashboard: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *DashboardHandlerTestSuite) TestGetStats_Success() {
	stats := &domain.DashboardStats{
		TotalRevenue:      decimal.NewFromInt(5000),
		ActiveTrips:       1,
		PendingPayments:   decimal.NewFromInt(11800),
		AvailableVehicles: 2,
		TotalVehicles:     3,
	}
	suite.mockService.On("GetStats", mock.Anything, suite.userID).Return(stats, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.DashboardStats
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.TotalRevenue.Equal(decimal.NewFromInt(5000)))
	suite.Equal(int64(1), got.ActiveTrips)
	suite.Equal(int64(3), got.TotalVehicles)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetStats_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetStats", mock.Anything, mock.Anything)
}

func (suite *DashboardHandlerTestSuite) TestGetStats_ServiceError() {
	suite.mockService.On("GetStats", mock.Anything, suite.userID).Return(nil, assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
