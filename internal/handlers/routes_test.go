package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/core/services"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/handlers"
	"github.com/SscSPs/journal_engine/internal/platform/config"
	"github.com/SscSPs/journal_engine/internal/repositories/database/memory"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RoutesTestSuite drives the full router over the in-memory store.
type RoutesTestSuite struct {
	suite.Suite
	store  *memory.Store
	router *gin.Engine
}

func (suite *RoutesTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	registerTestValidators(&suite.Suite)
}

func (suite *RoutesTestSuite) newRouter(rateLimiter *limiter.Limiter) *gin.Engine {
	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: testIssuer, IsProduction: true}
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(suite.store.Provider()), rateLimiter)
	return r
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.store.SeedAccounts(
		domain.Account{AccountID: "acc-cash", AccountNumber: "1000", Name: "Cash", Category: domain.Assets, NormalSide: domain.NormalDebit, IsActive: true},
		domain.Account{AccountID: "acc-rent", AccountNumber: "5000", Name: "Rent", Category: domain.Expenses, NormalSide: domain.NormalDebit, IsActive: true},
	)
	suite.router = suite.newRouter(nil)
}

func (suite *RoutesTestSuite) do(method, url string, body any, actor domain.Actor) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, newJSONRequest(&suite.Suite, method, url, body, &actor))
	return w
}

func (suite *RoutesTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	suite.Require().NoError(err)
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

var ginParam = regexp.MustCompile(`:(\w+)`)

func (suite *RoutesTestSuite) TestSwaggerDocumentsEveryRoute() {
	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: testIssuer}
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(suite.store.Provider()), nil)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	suite.Require().NoError(err)
	r.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	suite.Equal("/api/v1", doc.BasePath)

	documented := 0
	for _, route := range r.Routes() {
		path, ok := strings.CutPrefix(route.Path, doc.BasePath)
		if !ok {
			continue
		}
		path = ginParam.ReplaceAllString(path, "{$1}")
		suite.Contains(doc.Paths[path], strings.ToLower(route.Method), "%s %s is not documented", route.Method, route.Path)
		documented++
	}
	suite.Equal(14, documented)

	// not served in production
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoutesTestSuite) TestSubmitApprovePost() {
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", createBody("submit"), testAccountant)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(domain.StatusPendingApproval, created.Status)
	suite.Equal("acc-rent", created.LineItems[0].AccountID)

	base := "/api/v1/journal-entries/" + created.JournalEntryID

	w = suite.do(http.MethodPost, base+"/approve", nil, testAccountant)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, base+"/approve", nil, testManager)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPost, base+"/post", nil, testManager)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var posted dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posted))
	suite.Equal(domain.StatusPosted, posted.Status)

	w = suite.do(http.MethodGet, "/api/v1/accounts/acc-rent/ledger", nil, testAccountant)
	suite.Require().Equal(http.StatusOK, w.Code)
	var ledger dto.ListLedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &ledger))
	suite.Require().Len(ledger.Transactions, 1)
	suite.True(ledger.Transactions[0].Balance.Equal(decimal.NewFromInt(100)))
	suite.Equal(created.JournalEntryID, ledger.Transactions[0].JournalEntryID)

	w = suite.do(http.MethodGet, base+"/history", nil, testAccountant)
	suite.Require().Equal(http.StatusOK, w.Code)
	var history []dto.AuditEventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &history))
	suite.Require().Len(history, 3)
	suite.Equal(domain.EventSubmitted, history[0].EventType)
	suite.Equal(domain.EventPosted, history[2].EventType)
}

func (suite *RoutesTestSuite) TestAccountantDirectPostIsDowngraded() {
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", createBody("post"), testAccountant)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.StatusPendingApproval, res.Status)
	suite.NotEmpty(res.Notice)

	w = suite.do(http.MethodGet, "/api/v1/accounts/acc-rent/ledger", nil, testAccountant)
	suite.Require().Equal(http.StatusOK, w.Code)
	var ledger dto.ListLedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &ledger))
	suite.Empty(ledger.Transactions)
}

func (suite *RoutesTestSuite) TestUnbalancedEntryReportsDifference() {
	body := createBody("submit")
	body["lineItems"] = []map[string]any{
		{"accountID": "acc-rent", "debit": "100.00"},
		{"accountID": "acc-cash", "credit": "90.00"},
	}

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", body, testAccountant)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var res dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().NotEmpty(res.Details)
	found := false
	for _, d := range res.Details {
		if d.Difference != nil {
			found = true
			suite.True(d.Difference.Equal(decimal.NewFromInt(10)))
		}
	}
	suite.True(found, "expected the imbalance to be reported")
}

func (suite *RoutesTestSuite) TestRateLimit() {
	rate, err := limiter.NewRateFromFormatted("2-M")
	suite.Require().NoError(err)
	suite.router = suite.newRouter(limiter.New(limitermemory.NewStore(), rate))

	for i := 0; i < 2; i++ {
		w := suite.do(http.MethodGet, "/api/v1/accounts", nil, testAccountant)
		suite.Equal(http.StatusOK, w.Code)
		suite.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
	}
	w := suite.do(http.MethodGet, "/api/v1/accounts", nil, testAccountant)
	suite.Equal(http.StatusTooManyRequests, w.Code)

	// limits are per user
	w = suite.do(http.MethodGet, "/api/v1/accounts", nil, testManager)
	suite.Equal(http.StatusOK, w.Code)
}

func TestRoutes(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
