package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transbook/transbook-backend/internal/apperrors"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
	"github.com/transbook/transbook-backend/internal/handlers"
	"github.com/transbook/transbook-backend/internal/utils"
	"github.com/transbook/transbook-backend/pkg/config"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockUserService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		JWTIssuer:    "transbook-test",
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{User: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *AuthHandlerTestSuite) postJSON(url string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	body := []byte(`{"email":"owner@transco.example","password":"s3cret-pass","firstName":"Asha"}`)
	created := &domain.User{
		UserID:    uuid.NewString(),
		Email:     "owner@transco.example",
		FirstName: "Asha",
	}
	suite.mockService.On("CreateUser", mock.Anything, mock.MatchedBy(func(r dto.RegisterRequest) bool {
		return r.Email == "owner@transco.example"
	})).Return(created, nil).Once()

	w := suite.postJSON("/api/v1/auth/register", body)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(created.UserID, got.UserID)
	// Password hash is never exposed.
	suite.NotContains(w.Body.String(), "password")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	body := []byte(`{"email":"owner@transco.example","password":"s3cret-pass"}`)
	suite.mockService.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/api/v1/auth/register", body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	body := []byte(`{"email":"owner@transco.example","password":"short"}`)

	w := suite.postJSON("/api/v1/auth/register", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "owner@transco.example",
		PasswordHash: hash,
	}
	suite.mockService.On("GetUserByEmail", mock.Anything, "owner@transco.example").Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", []byte(`{"email":"owner@transco.example","password":"s3cret-pass"}`))

	suite.Equal(http.StatusOK, w.Code)
	var got dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.NotEmpty(got.Token)
	suite.Equal(user.UserID, got.User.UserID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "owner@transco.example",
		PasswordHash: hash,
	}
	suite.mockService.On("GetUserByEmail", mock.Anything, "owner@transco.example").Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", []byte(`{"email":"owner@transco.example","password":"wrong-pass"}`))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmail() {
	suite.mockService.On("GetUserByEmail", mock.Anything, "nobody@transco.example").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postJSON("/api/v1/auth/login", []byte(`{"email":"nobody@transco.example","password":"whatever1"}`))

	// Unknown email and wrong password produce the same response.
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
