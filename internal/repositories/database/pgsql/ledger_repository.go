package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/models"
	"github.com/SscSPs/journal_engine/internal/utils/mapping"
	"github.com/SscSPs/journal_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// ListLedgerTransactionsByAccount retrieves an account's ledger rows newest first using token-based pagination.
func (r *PgxLedgerRepository) ListLedgerTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerTransaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	fetchLimit := limit + 1

	var before *int64
	if nextToken != nil && *nextToken != "" {
		pos, err := pagination.DecodeToken(pagination.KindLedger, *nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		before = &pos
	}

	query := `
		SELECT ledger_transaction_id, sequence, account_id, journal_entry_id, entry_date, description,
		       debit, credit, balance, post_reference, created_at, created_by
		FROM ledger_transactions
		WHERE account_id = $1
		  AND ($2::bigint IS NULL OR sequence < $2)
		ORDER BY sequence DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, before, fetchLimit)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger for account "+accountID, err)
	}
	defer rows.Close()

	results := make([]models.LedgerTransaction, 0, fetchLimit)
	for rows.Next() {
		var m models.LedgerTransaction
		if err := rows.Scan(
			&m.LedgerTransactionID,
			&m.Sequence,
			&m.AccountID,
			&m.JournalEntryID,
			&m.EntryDate,
			&m.Description,
			&m.Debit,
			&m.Credit,
			&m.Balance,
			&m.PostReference,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger row for account "+accountID, err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger rows for account "+accountID, err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		results = results[:limit]
		token := pagination.EncodeToken(pagination.KindLedger, results[limit-1].Sequence)
		nextTokenVal = &token
	}
	return mapping.ToDomainLedgerTransactionSlice(results), nextTokenVal, nil
}
