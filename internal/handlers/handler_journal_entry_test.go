package handlers_test

import (
	"bytes"
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
	"github.com/SscSPs/journal_engine/internal/utils"
	"github.com/SscSPs/journal_engine/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testIssuer    = "journal-engine-test"
)

var (
	testAccountant = domain.Actor{UserID: "u-acc", Username: "alice", Role: domain.RoleAccountant}
	testManager    = domain.Actor{UserID: "u-mgr", Username: "mona", Role: domain.RoleManager}
)

// registerTestValidators installs the custom binding tags once per test binary.
func registerTestValidators(s *suite.Suite) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	s.Require().True(ok)
	s.Require().NoError(dto.RegisterValidators(v))
}

func testToken(s *suite.Suite, actor domain.Actor) string {
	token, err := utils.GenerateJWT(actor, testJWTSecret, time.Hour, testIssuer)
	s.Require().NoError(err)
	return token
}

func newJSONRequest(s *suite.Suite, method, url string, body any, actor *domain.Actor) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+testToken(s, *actor))
	}
	return req
}

func sampleEntry(status domain.JournalEntryStatus) *domain.JournalEntry {
	return &domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		EntryNumber:    7,
		EntryDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:    "March rent",
		Status:         status,
		TotalAmount:    decimal.NewFromInt(100),
		LineItems: []domain.LineItem{
			{AccountID: "acc-rent", AccountNumber: "5000", AccountName: "Rent", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{AccountID: "acc-cash", AccountNumber: "1000", AccountName: "Cash", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		},
		Version: 1,
	}
}

// --- Test Suite ---
type JournalEntryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockJournalEntryService
}

func (suite *JournalEntryHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	registerTestValidators(&suite.Suite)
}

func (suite *JournalEntryHandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.mockService = new(MockJournalEntryService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, testIssuer))
	handlers.RegisterJournalEntryRoutes(v1, suite.mockService)
}

func (suite *JournalEntryHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalEntryHandlerTestSuite) decodeEntry(w *httptest.ResponseRecorder) dto.JournalEntryResponse {
	var res dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (suite *JournalEntryHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var res dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func createBody(intent string) map[string]any {
	return map[string]any{
		"intent":      intent,
		"entryDate":   "2024-03-01T00:00:00Z",
		"description": "March rent",
		"lineItems": []map[string]any{
			{"accountID": "acc-rent", "debit": "100.00", "credit": "0"},
			{"accountID": "acc-cash", "debit": "0", "credit": "100.00"},
		},
	}
}

func (suite *JournalEntryHandlerTestSuite) TestCreate_DowngradedPostCarriesNotice() {
	entry := sampleEntry(domain.StatusPendingApproval)
	suite.mockService.On("CreateJournalEntry", mock.Anything, testAccountant,
		mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
			return req.Intent == dto.IntentPost &&
				len(req.LineItems) == 2 &&
				req.LineItems[0].Debit.Equal(decimal.NewFromInt(100))
		}),
	).Return(entry, domain.NoticeSubmittedForApproval, nil).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost, "/api/v1/journal-entries", createBody("post"), &testAccountant))

	suite.Equal(http.StatusCreated, w.Code)
	res := suite.decodeEntry(w)
	suite.Equal(entry.JournalEntryID, res.JournalEntryID)
	suite.Equal(domain.StatusPendingApproval, res.Status)
	suite.Equal(string(domain.NoticeSubmittedForApproval), res.Notice)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestCreate_UnknownIntentIsRejectedBeforeTheService() {
	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost, "/api/v1/journal-entries", createBody("publish"), &testAccountant))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestCreate_ValidationErrorsAreListed() {
	diff := decimal.NewFromInt(10)
	verrs := accounting.ValidationErrors{
		{Kind: accounting.MissingDescription, Field: "description", Row: accounting.EntryRow, Message: "description is required"},
		{Kind: accounting.Unbalanced, Field: "lineItems", Row: accounting.EntryRow, Difference: &diff, Message: "debits and credits differ"},
	}
	suite.mockService.On("CreateJournalEntry", mock.Anything, testAccountant, mock.Anything).
		Return(nil, domain.NoticeNone, verrs).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost, "/api/v1/journal-entries", createBody("submit"), &testAccountant))

	suite.Equal(http.StatusBadRequest, w.Code)
	res := suite.decodeError(w)
	suite.Require().Len(res.Details, 2)
	suite.Equal(accounting.MissingDescription, res.Details[0].Kind)
	suite.Equal(accounting.Unbalanced, res.Details[1].Kind)
	suite.Require().NotNil(res.Details[1].Difference)
	suite.True(res.Details[1].Difference.Equal(diff))
}

func (suite *JournalEntryHandlerTestSuite) TestAuthentication() {
	suite.Run("missing token", func() {
		w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/journal-entries", nil, nil))
		suite.Equal(http.StatusUnauthorized, w.Code)
	})
	suite.Run("unknown role", func() {
		auditor := domain.Actor{UserID: "u-aud", Username: "ava", Role: domain.Role("Auditor")}
		w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/journal-entries", nil, &auditor))
		suite.Equal(http.StatusUnauthorized, w.Code)
	})
	suite.Run("wrong issuer", func() {
		token, err := utils.GenerateJWT(testManager, testJWTSecret, time.Hour, "someone-else")
		suite.Require().NoError(err)
		req := newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/journal-entries", nil, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		suite.Equal(http.StatusUnauthorized, suite.serve(req).Code)
	})
	suite.mockService.AssertNotCalled(suite.T(), "ListJournalEntries", mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestPost_DispatchesOnCurrentStatus() {
	suite.Run("draft goes through PostDraft", func() {
		draft := sampleEntry(domain.StatusDraft)
		posted := sampleEntry(domain.StatusPosted)
		posted.JournalEntryID = draft.JournalEntryID
		suite.mockService.On("GetJournalEntry", mock.Anything, draft.JournalEntryID).Return(draft, nil).Once()
		suite.mockService.On("PostDraft", mock.Anything, testManager, draft.JournalEntryID).
			Return(posted, domain.NoticeNone, nil).Once()

		w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost,
			fmt.Sprintf("/api/v1/journal-entries/%s/post", draft.JournalEntryID), nil, &testManager))

		suite.Equal(http.StatusOK, w.Code)
		res := suite.decodeEntry(w)
		suite.Equal(domain.StatusPosted, res.Status)
		suite.Empty(res.Notice)
	})
	suite.Run("approved goes through PostJournalEntry", func() {
		approved := sampleEntry(domain.StatusApproved)
		posted := sampleEntry(domain.StatusPosted)
		posted.JournalEntryID = approved.JournalEntryID
		suite.mockService.On("GetJournalEntry", mock.Anything, approved.JournalEntryID).Return(approved, nil).Once()
		suite.mockService.On("PostJournalEntry", mock.Anything, testManager, approved.JournalEntryID).Return(posted, nil).Once()

		w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost,
			fmt.Sprintf("/api/v1/journal-entries/%s/post", approved.JournalEntryID), nil, &testManager))

		suite.Equal(http.StatusOK, w.Code)
	})
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestErrorMapping() {
	id := uuid.NewString()
	url := fmt.Sprintf("/api/v1/journal-entries/%s/approve", id)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"illegal transition", fmt.Errorf("%w: cannot approve an entry that is posted", apperrors.ErrIllegalTransition), http.StatusConflict, ""},
		{"stale version", fmt.Errorf("%w: journal entry changed", apperrors.ErrConflict), http.StatusConflict, ""},
		{"not found", fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, id), http.StatusNotFound, ""},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, ""},
		{"audit failure", fmt.Errorf("%w: mongo unavailable", apperrors.ErrAuditFailure), http.StatusInternalServerError,
			"The change could not be recorded in the audit trail and was not applied. Please try again."},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError, "Failed to approve journal entry"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.On("ApproveJournalEntry", mock.Anything, testManager, id).Return(nil, tt.err).Once()

			w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost, url, nil, &testManager))

			suite.Equal(tt.status, w.Code)
			if tt.message != "" {
				suite.Equal(tt.message, suite.decodeError(w).Error)
			}
		})
	}
}

func (suite *JournalEntryHandlerTestSuite) TestReject_RequiresReason() {
	id := uuid.NewString()
	url := fmt.Sprintf("/api/v1/journal-entries/%s/reject", id)

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost, url, map[string]any{"reason": "   "}, &testManager))
	suite.Equal(http.StatusBadRequest, w.Code)

	rejected := sampleEntry(domain.StatusRejected)
	suite.mockService.On("RejectJournalEntry", mock.Anything, testManager, id, dto.RejectJournalEntryRequest{Reason: "wrong account"}).
		Return(rejected, nil).Once()
	w = suite.serve(newJSONRequest(&suite.Suite, http.MethodPost, url, map[string]any{"reason": "wrong account"}, &testManager))
	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestResubmit_BodyIsOptional() {
	id := uuid.NewString()
	suite.mockService.On("ResubmitJournalEntry", mock.Anything, testAccountant, id, dto.ResubmitJournalEntryRequest{}).
		Return(sampleEntry(domain.StatusPendingApproval), nil).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPost,
		fmt.Sprintf("/api/v1/journal-entries/%s/resubmit", id), nil, &testAccountant))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestDeleteDraft() {
	id := uuid.NewString()
	suite.mockService.On("DeleteDraft", mock.Anything, testAccountant, id).Return(nil).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodDelete, "/api/v1/journal-entries/"+id, nil, &testAccountant))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestUpdateDraft_PassesVersion() {
	id := uuid.NewString()
	body := createBody("draft")
	delete(body, "intent")
	body["version"] = 3
	suite.mockService.On("UpdateDraft", mock.Anything, testAccountant, id,
		mock.MatchedBy(func(req dto.UpdateDraftRequest) bool {
			return req.Version != nil && *req.Version == 3 && req.Description == "March rent"
		}),
	).Return(sampleEntry(domain.StatusDraft), nil).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodPut, "/api/v1/journal-entries/"+id, body, &testAccountant))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestList() {
	suite.Run("bad status", func() {
		w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/journal-entries?status=archived", nil, &testManager))
		suite.Equal(http.StatusBadRequest, w.Code)
	})
	suite.Run("approval queue", func() {
		next := "token-2"
		suite.mockService.On("ListJournalEntries", mock.Anything,
			mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool {
				return p.Status == "pending_approval" && p.Limit == 2
			}),
		).Return([]domain.JournalEntry{*sampleEntry(domain.StatusPendingApproval), *sampleEntry(domain.StatusPendingApproval)}, &next, nil).Once()

		w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/journal-entries?status=pending_approval&limit=2", nil, &testManager))

		suite.Equal(http.StatusOK, w.Code)
		var res dto.ListJournalEntriesResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
		suite.Len(res.JournalEntries, 2)
		suite.Require().NotNil(res.NextToken)
		suite.Equal(next, *res.NextToken)
	})
}

func (suite *JournalEntryHandlerTestSuite) TestHistory() {
	id := uuid.NewString()
	suite.mockService.On("GetJournalEntryHistory", mock.Anything, id).
		Return(nil, fmt.Errorf("%w: no history", apperrors.ErrNotFound)).Once()

	w := suite.serve(newJSONRequest(&suite.Suite, http.MethodGet, "/api/v1/journal-entries/"+id+"/history", nil, &testManager))

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestJournalEntryHandler(t *testing.T) {
	suite.Run(t, new(JournalEntryHandlerTestSuite))
}
