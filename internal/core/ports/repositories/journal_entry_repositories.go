package repositories

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries.
// Writes go through a UnitOfWork so they can be grouped with account and ledger writes.
type JournalEntryReader interface {
	// FindJournalEntryByID retrieves an entry with its line items.
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntries returns entries newest entry number first, with a token for the next page.
	ListJournalEntries(ctx context.Context, filter domain.JournalEntryFilter, nextToken *string) ([]domain.JournalEntry, *string, error)
}
