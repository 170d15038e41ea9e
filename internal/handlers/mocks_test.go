package handlers_test

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	portssvc "github.com/SscSPs/journal_engine/internal/core/ports/services"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func entryOrNil(args mock.Arguments) *domain.JournalEntry {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.JournalEntry)
}

func (m *MockJournalEntryService) GetJournalEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	return entryOrNil(args), args.Error(1)
}
func (m *MockJournalEntryService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, params)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}
func (m *MockJournalEntryService) GetJournalEntryHistory(ctx context.Context, journalEntryID string) ([]domain.AuditEvent, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEvent), args.Error(1)
}
func (m *MockJournalEntryService) CreateJournalEntry(ctx context.Context, actor domain.Actor, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, domain.WorkflowNotice, error) {
	args := m.Called(ctx, actor, req)
	return entryOrNil(args), args.Get(1).(domain.WorkflowNotice), args.Error(2)
}
func (m *MockJournalEntryService) UpdateDraft(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.UpdateDraftRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, journalEntryID, req)
	return entryOrNil(args), args.Error(1)
}
func (m *MockJournalEntryService) SubmitDraft(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, journalEntryID)
	return entryOrNil(args), args.Error(1)
}
func (m *MockJournalEntryService) PostDraft(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, domain.WorkflowNotice, error) {
	args := m.Called(ctx, actor, journalEntryID)
	return entryOrNil(args), args.Get(1).(domain.WorkflowNotice), args.Error(2)
}
func (m *MockJournalEntryService) DeleteDraft(ctx context.Context, actor domain.Actor, journalEntryID string) error {
	args := m.Called(ctx, actor, journalEntryID)
	return args.Error(0)
}
func (m *MockJournalEntryService) ApproveJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, journalEntryID)
	return entryOrNil(args), args.Error(1)
}
func (m *MockJournalEntryService) RejectJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.RejectJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, journalEntryID, req)
	return entryOrNil(args), args.Error(1)
}
func (m *MockJournalEntryService) ResubmitJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string, req dto.ResubmitJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, journalEntryID, req)
	return entryOrNil(args), args.Error(1)
}
func (m *MockJournalEntryService) PostJournalEntry(ctx context.Context, actor domain.Actor, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, journalEntryID)
	return entryOrNil(args), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.AccountReaderSvc = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListAccountLedger(ctx context.Context, accountID string, params dto.ListLedgerParams) ([]domain.LedgerTransaction, *string, error) {
	args := m.Called(ctx, accountID, params)
	var txns []domain.LedgerTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.LedgerTransaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)
