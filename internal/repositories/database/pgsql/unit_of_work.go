package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// journalEntryCounter is the counters row that numbers journal entries.
const journalEntryCounter = "journal_entry"

// PgxUnitOfWorkFactory opens units of work on a pgx transaction.
type PgxUnitOfWorkFactory struct {
	BaseRepository
}

func newPgxUnitOfWorkFactory(pool *pgxpool.Pool) *PgxUnitOfWorkFactory {
	return &PgxUnitOfWorkFactory{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWorkFactory = (*PgxUnitOfWorkFactory)(nil)

// Begin opens a transaction. Counter increments and account locks run on it
// immediately; staged writes are queued on a batch sent at Flush or Commit.
func (f *PgxUnitOfWorkFactory) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	tx, err := f.BaseRepository.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxUnitOfWork{repo: f.BaseRepository, tx: tx, batch: &pgx.Batch{}}, nil
}

type pgxUnitOfWork struct {
	repo  BaseRepository
	tx    pgx.Tx
	batch *pgx.Batch
	done  bool
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

func (u *pgxUnitOfWork) NextEntryNumber(ctx context.Context) (int64, error) {
	var next int64
	err := u.tx.QueryRow(ctx,
		`UPDATE counters SET value = value + 1 WHERE name = $1 RETURNING value;`,
		journalEntryCounter,
	).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewAppError(500, "journal entry counter row is missing", err)
		}
		return 0, apperrors.NewAppError(500, "failed to increment journal entry counter", err)
	}
	return next, nil
}

// LockAccounts takes row locks in account id order so concurrent posts cannot deadlock.
func (u *pgxUnitOfWork) LockAccounts(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := u.tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts", err)
	}
	return collectAccounts(rows)
}

func (u *pgxUnitOfWork) queueLines(entry domain.JournalEntry) {
	_, lines := mapping.ToModelJournalEntry(entry)
	for _, l := range lines {
		u.batch.Queue(`
			INSERT INTO journal_entry_lines (`+journalEntryLineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			l.JournalEntryID,
			l.LineNo,
			l.AccountID,
			l.AccountNumber,
			l.AccountName,
			l.Debit,
			l.Credit,
			l.Description,
		)
	}
}

func (u *pgxUnitOfWork) StageJournalEntryInsert(entry domain.JournalEntry) {
	m, _ := mapping.ToModelJournalEntry(entry)
	u.batch.Queue(`
		INSERT INTO journal_entries (`+journalEntryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`,
		m.JournalEntryID,
		m.EntryNumber,
		m.EntryDate,
		m.Reference,
		m.Description,
		m.TotalAmount,
		m.Status,
		m.SubmittedAt,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectedBy,
		m.RejectedAt,
		m.RejectionReason,
		m.PostedBy,
		m.PostedAt,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	u.queueLines(entry)
}

func (u *pgxUnitOfWork) StageJournalEntryUpdate(entry domain.JournalEntry, expectedVersion int64) {
	m, _ := mapping.ToModelJournalEntry(entry)
	u.batch.Queue(`
		UPDATE journal_entries
		SET entry_date = $2, reference = $3, description = $4, total_amount = $5, status = $6,
		    submitted_at = $7, approved_by = $8, approved_at = $9, rejected_by = $10, rejected_at = $11,
		    rejection_reason = $12, posted_by = $13, posted_at = $14, version = $15,
		    last_updated_at = $16, last_updated_by = $17
		WHERE journal_entry_id = $1 AND version = $18;`,
		m.JournalEntryID,
		m.EntryDate,
		m.Reference,
		m.Description,
		m.TotalAmount,
		m.Status,
		m.SubmittedAt,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectedBy,
		m.RejectedAt,
		m.RejectionReason,
		m.PostedBy,
		m.PostedAt,
		m.Version,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		expectedVersion,
	).Exec(expectOneRow(apperrors.ErrConflict, "journal entry "+entry.JournalEntryID))
	u.batch.Queue(`DELETE FROM journal_entry_lines WHERE journal_entry_id = $1;`, entry.JournalEntryID)
	u.queueLines(entry)
}

// StageJournalEntryDelete removes the header; lines go with it through ON DELETE CASCADE.
func (u *pgxUnitOfWork) StageJournalEntryDelete(journalEntryID string, expectedVersion int64) {
	u.batch.Queue(
		`DELETE FROM journal_entries WHERE journal_entry_id = $1 AND version = $2;`,
		journalEntryID, expectedVersion,
	).Exec(expectOneRow(apperrors.ErrConflict, "journal entry "+journalEntryID))
}

func (u *pgxUnitOfWork) StageAccountUpdate(account domain.Account) {
	m := mapping.ToModelAccount(account)
	u.batch.Queue(`
		UPDATE accounts
		SET debit = $2, credit = $3, balance = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;`,
		m.AccountID,
		m.Debit,
		m.Credit,
		m.Balance,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Exec(expectOneRow(apperrors.ErrNotFound, "account "+account.AccountID))
}

func (u *pgxUnitOfWork) StageLedgerTransactions(txns []domain.LedgerTransaction) {
	for _, t := range txns {
		m := mapping.ToModelLedgerTransaction(t)
		u.batch.Queue(`
			INSERT INTO ledger_transactions (ledger_transaction_id, account_id, journal_entry_id, entry_date, description,
			                                 debit, credit, balance, post_reference, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			m.LedgerTransactionID,
			m.AccountID,
			m.JournalEntryID,
			m.EntryDate,
			m.Description,
			m.Debit,
			m.Credit,
			m.Balance,
			m.PostReference,
			m.CreatedAt,
			m.CreatedBy,
		)
	}
}

// Flush sends the queued batch on the open transaction. Row locks stay held.
func (u *pgxUnitOfWork) Flush(ctx context.Context) error {
	if u.done {
		return fmt.Errorf("unit of work already finished")
	}
	if u.batch.Len() == 0 {
		return nil
	}

	batch := u.batch
	u.batch = &pgx.Batch{}
	if err := u.tx.SendBatch(ctx, batch).Close(); err != nil {
		u.done = true
		if rbErr := u.repo.Rollback(ctx, u.tx); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		return classifyBatchError(err)
	}
	return nil
}

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	if err := u.Flush(ctx); err != nil {
		return err
	}
	u.done = true
	return u.repo.Commit(ctx, u.tx)
}

func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	return u.repo.Rollback(ctx, u.tx)
}

// expectOneRow fails the batch with sentinel when a conditional write touched no row.
func expectOneRow(sentinel error, what string) func(pgconn.CommandTag) error {
	return func(ct pgconn.CommandTag) error {
		if ct.RowsAffected() != 1 {
			return fmt.Errorf("%w: %s", sentinel, what)
		}
		return nil
	}
}

func classifyBatchError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrNotFound):
		return err
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", apperrors.ErrDuplicate, err)
	default:
		return apperrors.NewAppError(500, "failed to apply unit of work", err)
	}
}
