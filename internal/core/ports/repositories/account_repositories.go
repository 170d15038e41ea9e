package repositories

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
)

// AccountReader defines read operations against the account directory.
// Accounts are maintained elsewhere; the journal engine only ever writes
// their debit/credit/balance columns, and only through a UnitOfWork.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts ordered by account number.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
}
