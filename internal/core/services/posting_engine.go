package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/utils/accounting"
	"github.com/google/uuid"
)

// PostingResult is what a post staged: the touched accounts before and after, and the ledger rows.
type PostingResult struct {
	Before []domain.Account
	After  []domain.Account
	Ledger []domain.LedgerTransaction
}

// PostingEngine is the only code path that changes account totals or writes ledger rows.
// It trusts its input: balance was checked by the workflow before it got here.
type PostingEngine struct {
	BaseService
}

// NewPostingEngine creates a PostingEngine.
func NewPostingEngine() *PostingEngine {
	return &PostingEngine{}
}

// Post locks the entry's accounts on uow and stages the account updates and one
// ledger row per line item. Lines hitting the same account chain their running balance.
func (p *PostingEngine) Post(ctx context.Context, uow portsrepo.UnitOfWork, entry *domain.JournalEntry, poster domain.Actor, at time.Time) (*PostingResult, error) {
	ids := lineAccountIDs(entry.LineItems)
	locked, err := uow.LockAccounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts for posting: %w", err)
	}

	result := &PostingResult{
		Before: make([]domain.Account, 0, len(ids)),
		After:  make([]domain.Account, 0, len(ids)),
		Ledger: make([]domain.LedgerTransaction, 0, len(entry.LineItems)),
	}
	working := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		acc, ok := locked[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		result.Before = append(result.Before, acc)
		working[id] = acc
	}

	reference := domain.PostReference(entry.EntryNumber)
	for _, line := range entry.LineItems {
		updated, err := accounting.ApplyLineItem(working[line.AccountID], line)
		if err != nil {
			return nil, err
		}
		working[line.AccountID] = updated

		description := line.Description
		if description == "" {
			description = entry.Description
		}
		result.Ledger = append(result.Ledger, domain.LedgerTransaction{
			LedgerTransactionID: uuid.NewString(),
			AccountID:           line.AccountID,
			JournalEntryID:      entry.JournalEntryID,
			Date:                entry.EntryDate,
			Description:         description,
			Debit:               line.Debit,
			Credit:              line.Credit,
			Balance:             updated.Balance,
			PostReference:       reference,
			CreatedAt:           at,
			CreatedBy:           poster.UserID,
		})
	}

	for _, id := range ids {
		acc := working[id]
		acc.LastUpdatedAt = at
		acc.LastUpdatedBy = poster.UserID
		uow.StageAccountUpdate(acc)
		result.After = append(result.After, acc)
	}
	uow.StageLedgerTransactions(result.Ledger)

	p.LogDebug(ctx, "Posting staged",
		"journal_entry_id", entry.JournalEntryID,
		"accounts", len(ids),
		"ledger_rows", len(result.Ledger))
	return result, nil
}

// lineAccountIDs returns distinct account ids in first-seen line order.
func lineAccountIDs(lines []domain.LineItem) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}
