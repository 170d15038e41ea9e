package services

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/dto"
)

// AccountReaderSvc exposes the read-only account directory.
type AccountReaderSvc interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// LedgerSvc defines read operations over posted ledger rows.
type LedgerSvc interface {
	// ListAccountLedger returns an account's ledger rows newest first.
	ListAccountLedger(ctx context.Context, accountID string, params dto.ListLedgerParams) ([]domain.LedgerTransaction, *string, error)
}
