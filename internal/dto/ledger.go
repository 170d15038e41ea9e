package dto

import (
	"time"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerParams defines the query parameters for an account's ledger.
type ListLedgerParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// LedgerTransactionResponse is one ledger row with its running balance.
type LedgerTransactionResponse struct {
	LedgerTransactionID string          `json:"ledgerTransactionID"`
	JournalEntryID      string          `json:"journalEntryID"`
	PostReference       string          `json:"postReference"`
	Date                time.Time       `json:"date"`
	Description         string          `json:"description"`
	Debit               decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit              decimal.Decimal `json:"credit" swaggertype:"string"`
	Balance             decimal.Decimal `json:"balance" swaggertype:"string"`
	CreatedAt           time.Time       `json:"createdAt"`
	CreatedBy           string          `json:"createdBy"`
}

// ListLedgerResponse wraps a page of ledger rows for one account.
type ListLedgerResponse struct {
	AccountID    string                      `json:"accountID"`
	Transactions []LedgerTransactionResponse `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}

// ToListLedgerResponse converts ledger rows of one account.
func ToListLedgerResponse(accountID string, txns []domain.LedgerTransaction, nextToken *string) ListLedgerResponse {
	res := make([]LedgerTransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = LedgerTransactionResponse{
			LedgerTransactionID: t.LedgerTransactionID,
			JournalEntryID:      t.JournalEntryID,
			PostReference:       t.PostReference,
			Date:                t.Date,
			Description:         t.Description,
			Debit:               t.Debit,
			Credit:              t.Credit,
			Balance:             t.Balance,
			CreatedAt:           t.CreatedAt,
			CreatedBy:           t.CreatedBy,
		}
	}
	return ListLedgerResponse{AccountID: accountID, Transactions: res, NextToken: nextToken}
}
