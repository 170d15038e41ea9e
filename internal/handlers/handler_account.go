package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/journal_engine/internal/core/ports/services"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler serves the read-only account directory and account ledgers.
type accountHandler struct {
	accountService portssvc.AccountReaderSvc
	ledgerService  portssvc.LedgerSvc
}

func newAccountHandler(as portssvc.AccountReaderSvc, ls portssvc.LedgerSvc) *accountHandler {
	return &accountHandler{accountService: as, ledgerService: ls}
}

// RegisterAccountRoutes registers the account routes on rg.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountReaderSvc, ledgerService portssvc.LedgerSvc) {
	h := newAccountHandler(accountService, ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/ledger", h.listAccountLedger)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Param   active query bool false "Only active accounts"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary Get an account
// @Description Returns an account with its running debit and credit totals.
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get account"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccount(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondWithError(c, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountLedger godoc
// @Summary Ledger of an account
// @Description Lists the account's posted ledger rows newest first, each with the balance after it.
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list ledger"
// @Security BearerAuth
// @Router /accounts/{accountID}/ledger [get]
func (h *accountHandler) listAccountLedger(c *gin.Context) {
	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	accountID := c.Param("accountID")
	txns, nextToken, err := h.ledgerService.ListAccountLedger(c.Request.Context(), accountID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerResponse(accountID, txns, nextToken))
}
