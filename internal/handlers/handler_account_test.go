package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/handlers"
	"github.com/SscSPs/journal_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockLedgerService  *MockLedgerService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, testIssuer))
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService, suite.mockLedgerService)
}

func (suite *AccountHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestListAccountLedger_Success() {
	accountID := uuid.NewString()
	next := "next-page"
	txns := []domain.LedgerTransaction{
		{
			LedgerTransactionID: uuid.NewString(),
			AccountID:           accountID,
			JournalEntryID:      uuid.NewString(),
			PostReference:       "JE-2",
			Date:                time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Debit:               decimal.NewFromInt(30),
			Credit:              decimal.Zero,
			Balance:             decimal.NewFromInt(80),
		},
		{
			LedgerTransactionID: uuid.NewString(),
			AccountID:           accountID,
			JournalEntryID:      uuid.NewString(),
			PostReference:       "JE-1",
			Date:                time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Debit:               decimal.NewFromInt(50),
			Credit:              decimal.Zero,
			Balance:             decimal.NewFromInt(50),
		},
	}
	suite.mockLedgerService.On("ListAccountLedger", mock.Anything, accountID,
		mock.MatchedBy(func(p dto.ListLedgerParams) bool { return p.Limit == 2 }),
	).Return(txns, &next, nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/ledger?limit=2", accountID)
	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, url, nil, &testAccountant))

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListLedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(accountID, res.AccountID)
	suite.Require().Len(res.Transactions, 2)
	suite.Equal("JE-2", res.Transactions[0].PostReference)
	suite.True(res.Transactions[0].Balance.Equal(decimal.NewFromInt(80)))
	suite.Require().NotNil(res.NextToken)
	suite.Equal(next, *res.NextToken)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccountLedger_LimitOutOfRange() {
	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/accounts/acc-1/ledger?limit=10000", nil, &testAccountant))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListAccountLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccount", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: account missing", apperrors.ErrNotFound)).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/accounts/missing", nil, &testAccountant))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_ActiveOnly() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, dto.ListAccountsParams{Active: true}).
		Return([]domain.Account{{AccountID: "acc-cash", AccountNumber: "1000", Name: "Cash", IsActive: true}}, nil).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/accounts?active=true", nil, &testAccountant))

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 1)
	suite.Equal("Cash", res[0].Name)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
