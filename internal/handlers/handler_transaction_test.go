package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/sabaipos/pos_backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CorrectMostRecent(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Transaction), args.Error(2)
}

func (m *MockTransactionService) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListByDate(ctx context.Context, date string) ([]domain.Transaction, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) MostRecentActive(ctx context.Context) (*domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListArchivedByMonth(ctx context.Context, month string) ([]domain.ArchivedTransaction, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedTransaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pos-test",
		Subject:   "staff-1",
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

func (suite *TransactionHandlerTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

const validCreateBody = `{"staffName":"Anong","serviceType":"Thai Massage","location":"In-Shop","durationMinutes":60,"paymentMethod":"Cash"}`

func sampleDomainTxn(txnID string, status domain.TxnStatus) *domain.Transaction {
	return &domain.Transaction{
		ID:              "row-1",
		TransactionID:   txnID,
		Timestamp:       time.Date(2026, 3, 14, 6, 45, 30, 0, time.UTC),
		Date:            "2026-03-14",
		StaffName:       "Anong",
		ServiceType:     "Thai Massage",
		Location:        "In-Shop",
		DurationMinutes: 60,
		PaymentAmount:   decimal.NewFromInt(350),
		PaymentMethod:   "Cash",
		StaffFee:        decimal.NewFromInt(120),
		Status:          status,
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	expected := sampleDomainTxn("20260314134530.120", domain.TxnActive)
	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.StaffName == "Anong" && req.ServiceType == "Thai Massage"
	})).Return(expected, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions", validCreateBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("20260314134530.120", resp.TransactionID)
	suite.Equal("ACTIVE", resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	w := suite.serve(http.MethodPost, "/api/v1/transactions", `{"staffName": not-json`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "Invalid request format")
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_EmptyBody() {
	w := suite.serve(http.MethodPost, "/api/v1/transactions", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingFields() {
	w := suite.serve(http.MethodPost, "/api/v1/transactions", `{"staffName":"Anong"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "ServiceType is required")
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_IDCollisionMapsToConflict() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: transaction id 20260314134530.120", apperrors.ErrDuplicate)).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions", validCreateBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCorrectMostRecent_NothingToCorrect() {
	suite.mockService.On("CorrectMostRecent", mock.Anything, mock.Anything).
		Return(nil, nil, fmt.Errorf("%w: nothing to correct", apperrors.ErrInvalidState)).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions/correction", validCreateBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCorrectMostRecent_ReturnsBothRows() {
	voided := sampleDomainTxn("20260314120000.000", domain.TxnVoid)
	replacement := sampleDomainTxn("20260314134530.120", domain.TxnCorrected)
	replacement.CorrectedFromID = voided.TransactionID
	suite.mockService.On("CorrectMostRecent", mock.Anything, mock.Anything).
		Return(voided, replacement, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions/correction", validCreateBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CorrectionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("VOID", resp.Voided.Status)
	suite.Equal("CORRECTED", resp.Replacement.Status)
	suite.Equal(voided.TransactionID, resp.Replacement.CorrectedFromID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListByDate_MalformedDate() {
	w := suite.serve(http.MethodGet, "/api/v1/transactions?date=14-03-2026", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListByDate", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestRequests_RequireToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/most-recent", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "MostRecentActive", mock.Anything)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
