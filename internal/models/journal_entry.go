package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table. Lines live in journal_entry_lines.
type JournalEntry struct {
	JournalEntryID  string          `db:"journal_entry_id"`
	EntryNumber     int64           `db:"entry_number"`
	EntryDate       time.Time       `db:"entry_date"`
	Reference       string          `db:"reference"`
	Description     string          `db:"description"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	SubmittedAt     *time.Time      `db:"submitted_at"`
	ApprovedBy      *string         `db:"approved_by"`
	ApprovedAt      *time.Time      `db:"approved_at"`
	RejectedBy      *string         `db:"rejected_by"`
	RejectedAt      *time.Time      `db:"rejected_at"`
	RejectionReason *string         `db:"rejection_reason"`
	PostedBy        *string         `db:"posted_by"`
	PostedAt        *time.Time      `db:"posted_at"`
	Version         int64           `db:"version"`
	AuditFields
}

// JournalEntryLine is a row of the journal_entry_lines table.
type JournalEntryLine struct {
	JournalEntryID string          `db:"journal_entry_id"`
	LineNo         int             `db:"line_no"`
	AccountID      string          `db:"account_id"`
	AccountNumber  string          `db:"account_number"`
	AccountName    string          `db:"account_name"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	Description    string          `db:"description"`
}
