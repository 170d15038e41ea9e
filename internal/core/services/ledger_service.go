package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_engine/internal/core/ports/services"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/utils/pagination"
)

// ledgerService serves the read side of posting: account directory lookups and ledger listings.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerReader
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerReader) *ledgerService {
	return &ledgerService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var (
	_ portssvc.LedgerSvc        = (*ledgerService)(nil)
	_ portssvc.AccountReaderSvc = (*ledgerService)(nil)
)

func (s *ledgerService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *ledgerService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, params.Active)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *ledgerService) ListAccountLedger(ctx context.Context, accountID string, params dto.ListLedgerParams) ([]domain.LedgerTransaction, *string, error) {
	// 404 for unknown accounts rather than an empty page
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, nil, err
	}

	txns, nextToken, err := s.ledgerRepo.ListLedgerTransactionsByAccount(ctx, accountID, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger transactions", slog.String("account_id", accountID))
		return nil, nil, err
	}
	return txns, nextToken, nil
}
