package repositories

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
)

// UnitOfWork groups the writes of one workflow operation so they commit or
// fail together. Reads that must see the transaction (the entry counter and
// account locks) execute immediately; everything else is staged and applied
// in order on Commit.
type UnitOfWork interface {
	// NextEntryNumber increments the entry counter inside the transaction.
	NextEntryNumber(ctx context.Context) (int64, error)

	// LockAccounts loads accounts and holds them against concurrent posting until Commit or Rollback.
	LockAccounts(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	StageJournalEntryInsert(entry domain.JournalEntry)

	// StageJournalEntryUpdate replaces the stored entry (header and lines) if its
	// version still equals expectedVersion. Otherwise Commit fails with ErrConflict.
	StageJournalEntryUpdate(entry domain.JournalEntry, expectedVersion int64)

	// StageJournalEntryDelete removes an entry if its version still equals expectedVersion.
	StageJournalEntryDelete(journalEntryID string, expectedVersion int64)

	StageAccountUpdate(account domain.Account)

	StageLedgerTransactions(txns []domain.LedgerTransaction)

	// Flush applies the writes staged so far inside the open transaction, so a
	// conflict surfaces before Commit. Locks taken by LockAccounts stay held.
	// After a failed Flush the unit of work can only be rolled back.
	Flush(ctx context.Context) error

	// Commit applies any remaining staged writes and makes everything durable.
	Commit(ctx context.Context) error

	// Rollback discards staged writes. Safe to call after Commit.
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory starts units of work against a store.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
