package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction is a row of the ledger_transactions table.
// Sequence is a bigserial assigned by the database.
type LedgerTransaction struct {
	LedgerTransactionID string          `db:"ledger_transaction_id"`
	Sequence            int64           `db:"sequence"`
	AccountID           string          `db:"account_id"`
	JournalEntryID      string          `db:"journal_entry_id"`
	EntryDate           time.Time       `db:"entry_date"`
	Description         string          `db:"description"`
	Debit               decimal.Decimal `db:"debit"`
	Credit              decimal.Decimal `db:"credit"`
	Balance             decimal.Decimal `db:"balance"`
	PostReference       string          `db:"post_reference"`
	CreatedAt           time.Time       `db:"created_at"`
	CreatedBy           string          `db:"created_by"`
}
