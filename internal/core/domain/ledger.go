package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction is an append-only ledger row written by posting, one per line item.
// Balance is the account's running balance right after this row was applied.
type LedgerTransaction struct {
	LedgerTransactionID string          `json:"ledgerTransactionID"`
	AccountID           string          `json:"accountID"`
	JournalEntryID      string          `json:"journalEntryID"`
	Sequence            int64           `json:"sequence"` // insertion order, breaks timestamp ties
	Date                time.Time       `json:"date"`
	Description         string          `json:"description"`
	Debit               decimal.Decimal `json:"debit"`
	Credit              decimal.Decimal `json:"credit"`
	Balance             decimal.Decimal `json:"balance"`
	PostReference       string          `json:"postReference"`
	CreatedAt           time.Time       `json:"createdAt"`
	CreatedBy           string          `json:"createdBy"`
}

// PostReference is the human-readable reference stamped on ledger rows of an entry.
func PostReference(entryNumber int64) string {
	return fmt.Sprintf("JE-%d", entryNumber)
}
