package services

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries.
type JournalEntryReaderSvc interface {
	GetJournalEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntries lists entries, optionally only those in one state (e.g. the approval queue).
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error)

	// GetJournalEntryHistory returns the audit trail of an entry, oldest first.
	GetJournalEntryHistory(ctx context.Context, journalEntryID string) ([]domain.AuditEvent, error)
}

// DraftSvc covers the draft part of the workflow.
type DraftSvc interface {
	// CreateJournalEntry validates and stores a new entry according to the request's intent.
	// A post intent from a non-privileged actor is downgraded to a submission and
	// reported through the returned notice.
	CreateJournalEntry(ctx context.Context, actor domain.Actor, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, domain.WorkflowNotice, error)

	UpdateDraft(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.UpdateDraftRequest) (*domain.JournalEntry, error)

	SubmitDraft(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error)

	// PostDraft posts a draft directly, downgrading to a submission like CreateJournalEntry.
	PostDraft(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, domain.WorkflowNotice, error)

	DeleteDraft(ctx context.Context, actor domain.Actor, journalEntryID string) error
}

// ApprovalSvc covers review and posting of submitted entries.
type ApprovalSvc interface {
	ApproveJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error)

	RejectJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.RejectJournalEntryRequest) (*domain.JournalEntry, error)

	ResubmitJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.ResubmitJournalEntryRequest) (*domain.JournalEntry, error)

	PostJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal-entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	DraftSvc
	ApprovalSvc
}
