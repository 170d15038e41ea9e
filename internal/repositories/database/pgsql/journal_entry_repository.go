package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/models"
	"github.com/SscSPs/journal_engine/internal/utils/mapping"
	"github.com/SscSPs/journal_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalEntryColumns = `journal_entry_id, entry_number, entry_date, reference, description, total_amount,
		status, submitted_at, approved_by, approved_at, rejected_by, rejected_at, rejection_reason,
		posted_by, posted_at, version, created_at, created_by, last_updated_at, last_updated_by`

const journalEntryLineColumns = `journal_entry_id, line_no, account_id, account_number, account_name, debit, credit, description`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries and their lines.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) *PgxJournalEntryRepository {
	return &PgxJournalEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalEntryRepository implements portsrepo.JournalEntryReader
var _ portsrepo.JournalEntryReader = (*PgxJournalEntryRepository)(nil)

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Reference,
		&m.Description,
		&m.TotalAmount,
		&m.Status,
		&m.SubmittedAt,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.RejectionReason,
		&m.PostedBy,
		&m.PostedAt,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// findLinesByEntryIDs loads the lines of several entries, grouped by entry and in line order.
func findLinesByEntryIDs(ctx context.Context, q querier, journalEntryIDs []string) (map[string][]models.JournalEntryLine, error) {
	out := make(map[string][]models.JournalEntryLine, len(journalEntryIDs))
	if len(journalEntryIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT ` + journalEntryLineColumns + `
		FROM journal_entry_lines
		WHERE journal_entry_id = ANY($1)
		ORDER BY journal_entry_id, line_no;
	`
	rows, err := q.Query(ctx, query, journalEntryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.JournalEntryLine
		if err := rows.Scan(
			&l.JournalEntryID,
			&l.LineNo,
			&l.AccountID,
			&l.AccountNumber,
			&l.AccountName,
			&l.Debit,
			&l.Credit,
			&l.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry line: %w", err)
		}
		out[l.JournalEntryID] = append(out[l.JournalEntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry lines: %w", err)
	}
	return out, nil
}

// FindJournalEntryByID retrieves an entry with its line items.
func (r *PgxJournalEntryRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`

	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, journalEntryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+journalEntryID, err)
	}

	lines, err := findLinesByEntryIDs(ctx, r.Pool, []string{journalEntryID})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load lines for journal entry "+journalEntryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m, lines[journalEntryID])
	return &entry, nil
}

// ListJournalEntries lists entries newest entry number first, optionally by status.
// The token carries the entry number of the last entry returned.
func (r *PgxJournalEntryRepository) ListJournalEntries(ctx context.Context, filter domain.JournalEntryFilter, nextToken *string) ([]domain.JournalEntry, *string, error) {
	limit := pagination.NormalizeLimit(filter.Limit)
	// one extra row tells us whether there is a next page
	fetchLimit := limit + 1

	var before *int64
	if nextToken != nil && *nextToken != "" {
		pos, err := pagination.DecodeToken(pagination.KindJournalEntry, *nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		before = &pos
	}
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::bigint IS NULL OR entry_number < $2)
		ORDER BY entry_number DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, status, before, fetchLimit)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	headers := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextTokenVal *string
	if len(headers) > limit {
		headers = headers[:limit]
		token := pagination.EncodeToken(pagination.KindJournalEntry, headers[limit-1].EntryNumber)
		nextTokenVal = &token
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.JournalEntryID
	}
	lines, err := findLinesByEntryIDs(ctx, r.Pool, ids)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to load journal entry lines", err)
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, lines[h.JournalEntryID])
	}
	return entries, nextTokenVal, nil
}
