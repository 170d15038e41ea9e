package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/utils/accounting"
	"github.com/google/uuid"
)

var intentActions = map[dto.EntryIntent]domain.Action{
	dto.IntentDraft:  domain.ActionSaveDraft,
	dto.IntentSubmit: domain.ActionSubmit,
	dto.IntentPost:   domain.ActionPost,
}

func (s *journalEntryService) CreateJournalEntry(ctx context.Context, actor domain.Actor, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, domain.WorkflowNotice, error) {
	action, ok := intentActions[req.Intent]
	if !ok {
		return nil, domain.NoticeNone, fmt.Errorf("%w: unknown intent %q", apperrors.ErrValidation, req.Intent)
	}

	notice := domain.NoticeNone
	if action == domain.ActionPost && !domain.IsAllowed(domain.ActionPost, actor, nil) {
		action = domain.ActionSubmit
		notice = domain.NoticeSubmittedForApproval
		s.LogInfo(ctx, "Direct post downgraded to submission", "user_id", actor.UserID, "role", actor.Role)
	}

	to, err := s.authorize(ctx, action, actor, nil)
	if err != nil {
		return nil, domain.NoticeNone, err
	}

	lines, total, err := s.validate(ctx, req.ToEntryInput())
	if err != nil {
		return nil, domain.NoticeNone, err
	}

	now := s.now()
	entry := domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		Status:         to,
		Version:        1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	applyContent(&entry, req.JournalEntryContent, lines, total)

	var m mutation
	switch to {
	case domain.StatusPosted:
		entry.PostedBy = &actor.UserID
		entry.PostedAt = &now
		m = mutation{
			eventType: domain.EventPostedDirectly,
			primary: func(ctx context.Context, uow portsrepo.UnitOfWork) (any, any, error) {
				if err := s.numberAndInsert(ctx, uow, &entry); err != nil {
					return nil, nil, err
				}
				res, err := s.posting.Post(ctx, uow, &entry, actor, now)
				if err != nil {
					return nil, nil, err
				}
				return &domain.PostingImage{Accounts: res.Before}, &domain.PostingImage{Entry: &entry, Accounts: res.After}, nil
			},
		}
	default:
		eventType := domain.EventDraftCreated
		if to == domain.StatusPendingApproval {
			entry.SubmittedAt = &now
			eventType = domain.EventSubmitted
		}
		m = mutation{
			eventType: eventType,
			primary: func(ctx context.Context, uow portsrepo.UnitOfWork) (any, any, error) {
				if err := s.numberAndInsert(ctx, uow, &entry); err != nil {
					return nil, nil, err
				}
				return nil, &entry, nil
			},
			compensate: removeEntry(entry),
		}
	}
	m.entityID = entry.JournalEntryID

	if err := s.execute(ctx, actor, m); err != nil {
		return nil, domain.NoticeNone, err
	}

	s.LogInfo(ctx, "Journal entry created",
		"journal_entry_id", entry.JournalEntryID,
		"entry_number", entry.EntryNumber,
		"status", entry.Status)
	return &entry, notice, nil
}

func (s *journalEntryService) numberAndInsert(ctx context.Context, uow portsrepo.UnitOfWork, entry *domain.JournalEntry) error {
	number, err := uow.NextEntryNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to assign entry number: %w", err)
	}
	entry.EntryNumber = number
	uow.StageJournalEntryInsert(*entry)
	return nil
}

func (s *journalEntryService) UpdateDraft(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.UpdateDraftRequest) (*domain.JournalEntry, error) {
	entry, err := s.load(ctx, journalEntryID, req.Version)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, domain.ActionEditDraft, actor, entry); err != nil {
		return nil, err
	}

	lines, total, err := s.validate(ctx, req.ToEntryInput())
	if err != nil {
		return nil, err
	}

	updated := nextRevision(entry, actor, s.now())
	applyContent(&updated, req.JournalEntryContent, lines, total)

	if err := s.execute(ctx, actor, s.replace(domain.EventDraftUpdated, *entry, updated)); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Draft updated", "journal_entry_id", journalEntryID, "version", updated.Version)
	return &updated, nil
}

func (s *journalEntryService) SubmitDraft(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.load(ctx, journalEntryID, nil)
	if err != nil {
		return nil, err
	}
	return s.submitDraft(ctx, actor, entry)
}

func (s *journalEntryService) submitDraft(ctx context.Context, actor domain.Actor, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	to, err := s.authorize(ctx, domain.ActionSubmit, actor, entry)
	if err != nil {
		return nil, err
	}

	lines, total, err := s.validate(ctx, storedInput(entry))
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := nextRevision(entry, actor, now)
	updated.LineItems = lines
	updated.TotalAmount = total
	updated.Status = to
	updated.SubmittedAt = &now

	if err := s.execute(ctx, actor, s.replace(domain.EventSubmitted, *entry, updated)); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Draft submitted for approval", "journal_entry_id", entry.JournalEntryID)
	return &updated, nil
}

func (s *journalEntryService) PostDraft(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, domain.WorkflowNotice, error) {
	entry, err := s.load(ctx, journalEntryID, nil)
	if err != nil {
		return nil, domain.NoticeNone, err
	}

	if entry.Status == domain.StatusDraft && !domain.IsAllowed(domain.ActionPost, actor, entry) {
		s.LogInfo(ctx, "Direct post of draft downgraded to submission", "journal_entry_id", journalEntryID, "role", actor.Role)
		submitted, err := s.submitDraft(ctx, actor, entry)
		if err != nil {
			return nil, domain.NoticeNone, err
		}
		return submitted, domain.NoticeSubmittedForApproval, nil
	}

	if _, err := s.authorize(ctx, domain.ActionPost, actor, entry); err != nil {
		return nil, domain.NoticeNone, err
	}
	if entry.Status != domain.StatusDraft {
		// approved entries are posted through PostJournalEntry
		err := fmt.Errorf("%w: entry %s is not a draft", apperrors.ErrIllegalTransition, journalEntryID)
		s.LogWarn(ctx, err, "Rejected workflow action", "journal_entry_id", journalEntryID, "action", domain.ActionPost)
		return nil, domain.NoticeNone, err
	}

	lines, total, err := s.validate(ctx, storedInput(entry))
	if err != nil {
		return nil, domain.NoticeNone, err
	}

	posted, err := s.post(ctx, actor, entry, func(e *domain.JournalEntry) {
		e.LineItems = lines
		e.TotalAmount = total
	})
	if err != nil {
		return nil, domain.NoticeNone, err
	}
	return posted, domain.NoticeNone, nil
}

func (s *journalEntryService) DeleteDraft(ctx context.Context, actor domain.Actor, journalEntryID string) error {
	entry, err := s.load(ctx, journalEntryID, nil)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, domain.ActionDeleteDraft, actor, entry); err != nil {
		return err
	}

	deleted := entry.Clone()
	m := mutation{
		eventType: domain.EventDraftDeleted,
		entityID:  journalEntryID,
		primary: func(ctx context.Context, uow portsrepo.UnitOfWork) (any, any, error) {
			uow.StageJournalEntryDelete(deleted.JournalEntryID, deleted.Version)
			return &deleted, nil, nil
		},
		compensate: reinsertEntry(deleted),
	}
	if err := s.execute(ctx, actor, m); err != nil {
		return err
	}
	s.LogInfo(ctx, "Draft deleted", "journal_entry_id", journalEntryID, "entry_number", deleted.EntryNumber)
	return nil
}

func (s *journalEntryService) ApproveJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.load(ctx, journalEntryID, nil)
	if err != nil {
		return nil, err
	}
	to, err := s.authorize(ctx, domain.ActionApprove, actor, entry)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := nextRevision(entry, actor, now)
	updated.Status = to
	updated.ApprovedBy = &actor.UserID
	updated.ApprovedAt = &now

	if err := s.execute(ctx, actor, s.replace(domain.EventApproved, *entry, updated)); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry approved", "journal_entry_id", journalEntryID)
	return &updated, nil
}

func (s *journalEntryService) RejectJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.RejectJournalEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.load(ctx, journalEntryID, nil)
	if err != nil {
		return nil, err
	}
	to, err := s.authorize(ctx, domain.ActionReject, actor, entry)
	if err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		err := fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Rejection without reason", "journal_entry_id", journalEntryID)
		return nil, err
	}

	now := s.now()
	updated := nextRevision(entry, actor, now)
	updated.Status = to
	updated.RejectedBy = &actor.UserID
	updated.RejectedAt = &now
	updated.RejectionReason = &reason

	if err := s.execute(ctx, actor, s.replace(domain.EventRejected, *entry, updated)); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry rejected", "journal_entry_id", journalEntryID)
	return &updated, nil
}

func (s *journalEntryService) ResubmitJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.ResubmitJournalEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.load(ctx, journalEntryID, req.Version)
	if err != nil {
		return nil, err
	}
	to, err := s.authorize(ctx, domain.ActionResubmit, actor, entry)
	if err != nil {
		return nil, err
	}

	input := storedInput(entry)
	if req.Entry != nil {
		input = req.Entry.ToEntryInput()
	}
	lines, total, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := nextRevision(entry, actor, now)
	if req.Entry != nil {
		applyContent(&updated, *req.Entry, lines, total)
	} else {
		updated.LineItems = lines
		updated.TotalAmount = total
	}
	updated.ClearRejection()
	updated.Status = to
	updated.SubmittedAt = &now

	if err := s.execute(ctx, actor, s.replace(domain.EventResubmitted, *entry, updated)); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry resubmitted", "journal_entry_id", journalEntryID)
	return &updated, nil
}

func (s *journalEntryService) PostJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.load(ctx, journalEntryID, nil)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, domain.ActionPost, actor, entry); err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusApproved {
		// drafts are posted through PostDraft
		err := fmt.Errorf("%w: entry %s is not approved", apperrors.ErrIllegalTransition, journalEntryID)
		s.LogWarn(ctx, err, "Rejected workflow action", "journal_entry_id", journalEntryID, "action", domain.ActionPost)
		return nil, err
	}

	if _, err := accounting.CheckBalance(entry.LineItems); err != nil {
		s.LogWarn(ctx, err, "Approved entry no longer balances", "journal_entry_id", journalEntryID)
		return nil, err
	}

	return s.post(ctx, actor, entry, nil)
}

// post moves an existing entry to posted and runs the posting engine in the same unit of work.
// The account locks are held until the audit event is recorded.
func (s *journalEntryService) post(ctx context.Context, actor domain.Actor, entry *domain.JournalEntry, edit func(*domain.JournalEntry)) (*domain.JournalEntry, error) {
	now := s.now()
	before := entry.Clone()
	updated := nextRevision(entry, actor, now)
	if edit != nil {
		edit(&updated)
	}
	updated.Status = domain.StatusPosted
	updated.PostedBy = &actor.UserID
	updated.PostedAt = &now

	m := mutation{
		eventType: domain.EventPosted,
		entityID:  entry.JournalEntryID,
		primary: func(ctx context.Context, uow portsrepo.UnitOfWork) (any, any, error) {
			uow.StageJournalEntryUpdate(updated, before.Version)
			res, err := s.posting.Post(ctx, uow, &updated, actor, now)
			if err != nil {
				return nil, nil, err
			}
			return &domain.PostingImage{Entry: &before, Accounts: res.Before},
				&domain.PostingImage{Entry: &updated, Accounts: res.After}, nil
		},
	}
	if err := s.execute(ctx, actor, m); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		"journal_entry_id", entry.JournalEntryID,
		"entry_number", entry.EntryNumber,
		"total_amount", updated.TotalAmount.String())
	return &updated, nil
}

// replace is the mutation for status changes and edits that touch only the entry.
func (s *journalEntryService) replace(eventType domain.AuditEventType, before, after domain.JournalEntry) mutation {
	return mutation{
		eventType: eventType,
		entityID:  before.JournalEntryID,
		primary: func(ctx context.Context, uow portsrepo.UnitOfWork) (any, any, error) {
			uow.StageJournalEntryUpdate(after, before.Version)
			return &before, &after, nil
		},
		compensate: restoreEntry(before, after),
	}
}
