package repositories

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
)

// LedgerReader defines read operations for posted ledger rows.
type LedgerReader interface {
	// ListLedgerTransactionsByAccount returns an account's ledger rows newest first (by sequence).
	ListLedgerTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerTransaction, *string, error)
}
