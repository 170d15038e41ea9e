package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_engine/internal/core/ports/services"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/utils/accounting"
	"github.com/SscSPs/journal_engine/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// journalEntryService implements the approval state machine on top of the
// line-item validator, the balance checker and the posting engine.
type journalEntryService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	entryRepo   portsrepo.JournalEntryReader
	auditTrail  portsrepo.AuditTrailReader
	audit       portsrepo.AuditRecorder
	uowFactory  portsrepo.UnitOfWorkFactory
	posting     *PostingEngine
	now         func() time.Time
}

// JournalEntryServiceOption is a functional option for configuring the journal entry service
type JournalEntryServiceOption func(*journalEntryService)

// WithClock replaces the wall clock used to stamp entries and events.
func WithClock(now func() time.Time) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.now = now
	}
}

// WithAuditRecorder sends audit events somewhere other than the audit trail store.
func WithAuditRecorder(recorder portsrepo.AuditRecorder) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.audit = recorder
	}
}

// WithPostingEngine replaces the default posting engine.
func WithPostingEngine(engine *PostingEngine) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.posting = engine
	}
}

// NewJournalEntryService creates the journal entry service.
func NewJournalEntryService(
	accountRepo portsrepo.AccountReader,
	entryRepo portsrepo.JournalEntryReader,
	auditRepo portsrepo.AuditRepositoryFacade,
	uowFactory portsrepo.UnitOfWorkFactory,
	options ...JournalEntryServiceOption,
) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		auditTrail:  auditRepo,
		audit:       auditRepo,
		uowFactory:  uowFactory,
		posting:     NewPostingEngine(),
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure journalEntryService implements the JournalEntrySvcFacade interface
var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) GetJournalEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalEntryService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error) {
	filter := domain.JournalEntryFilter{Limit: pagination.NormalizeLimit(params.Limit)}
	if params.Status != "" {
		status, ok := domain.ParseJournalEntryStatus(params.Status)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &status
	}

	entries, nextToken, err := s.entryRepo.ListJournalEntries(ctx, filter, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, nil, err
	}
	return entries, nextToken, nil
}

func (s *journalEntryService) GetJournalEntryHistory(ctx context.Context, journalEntryID string) ([]domain.AuditEvent, error) {
	events, err := s.auditTrail.ListEventsByEntity(ctx, journalEntryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal entry history", slog.String("journal_entry_id", journalEntryID))
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no history for journal entry %s", apperrors.ErrNotFound, journalEntryID)
	}
	return events, nil
}

// authorize checks the transition table and then the permission table.
// entry is nil for actions on entries that do not exist yet.
func (s *journalEntryService) authorize(ctx context.Context, action domain.Action, actor domain.Actor, entry *domain.JournalEntry) (domain.JournalEntryStatus, error) {
	from := domain.StatusNone
	entityID := ""
	if entry != nil {
		from = entry.Status
		entityID = entry.JournalEntryID
	}

	to, ok := domain.NextStatus(from, action)
	if !ok {
		err := fmt.Errorf("%w: cannot %s an entry that is %s", apperrors.ErrIllegalTransition, action, describeStatus(from))
		s.LogWarn(ctx, err, "Rejected workflow action", "journal_entry_id", entityID, "action", action)
		return domain.StatusNone, err
	}
	if !domain.IsAllowed(action, actor, entry) {
		err := fmt.Errorf("%w: role %s may not %s this entry", apperrors.ErrIllegalTransition, actor.Role, action)
		s.LogWarn(ctx, err, "Rejected workflow action", "journal_entry_id", entityID, "action", action, "role", actor.Role)
		return domain.StatusNone, err
	}
	return to, nil
}

// validate runs the line-item validator and balance checker against the current account directory.
func (s *journalEntryService) validate(ctx context.Context, input accounting.EntryInput) ([]domain.LineItem, decimal.Decimal, error) {
	accounts := map[string]domain.Account{}
	if ids := accounting.AccountIDs(input); len(ids) > 0 {
		found, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load accounts for validation")
			return nil, decimal.Zero, err
		}
		accounts = found
	}

	lines, total, err := accounting.ValidateEntry(input, accounts)
	if err != nil {
		s.LogWarn(ctx, err, "Journal entry failed validation")
		return nil, decimal.Zero, err
	}
	return lines, total, nil
}

// load reads an entry and, when the caller sent one, checks the version it last saw.
func (s *journalEntryService) load(ctx context.Context, journalEntryID string, expectedVersion *int64) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	if expectedVersion != nil && *expectedVersion != entry.Version {
		return nil, fmt.Errorf("%w: journal entry %s is at version %d, not %d",
			apperrors.ErrConflict, journalEntryID, entry.Version, *expectedVersion)
	}
	return entry, nil
}

// storedInput turns a stored entry back into validator input so it can be re-validated.
func storedInput(e *domain.JournalEntry) accounting.EntryInput {
	lines := make([]accounting.LineInput, len(e.LineItems))
	for i, l := range e.LineItems {
		lines[i] = accounting.LineInput{
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return accounting.EntryInput{EntryDate: e.EntryDate, Description: e.Description, Lines: lines}
}

// applyContent copies validated content onto an entry.
func applyContent(e *domain.JournalEntry, content dto.JournalEntryContent, lines []domain.LineItem, total decimal.Decimal) {
	e.EntryDate = content.EntryDate
	e.Reference = strings.TrimSpace(content.Reference)
	e.Description = strings.TrimSpace(content.Description)
	e.LineItems = lines
	e.TotalAmount = total
}

// nextRevision clones e as the next version stamped for actor.
func nextRevision(e *domain.JournalEntry, actor domain.Actor, at time.Time) domain.JournalEntry {
	next := e.Clone()
	next.Version = e.Version + 1
	next.LastUpdatedAt = at
	next.LastUpdatedBy = actor.UserID
	return next
}

func describeStatus(s domain.JournalEntryStatus) string {
	if s == domain.StatusNone {
		return "not yet created"
	}
	return string(s)
}
