// Package memory is an in-process store with the same UnitOfWork contract as
// the PostgreSQL adapters. It backs STORAGE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/utils/pagination"
)

// CommitFault is consulted before each staged write is applied by Flush or
// Commit. step counts writes across the whole unit of work. Returning an error
// aborts it after step writes have been applied to the working copy, which is
// then discarded.
type CommitFault func(step int, op string) error

type state struct {
	accounts  map[string]domain.Account
	entries   map[string]domain.JournalEntry
	ledger    []domain.LedgerTransaction
	counter   int64
	ledgerSeq int64
}

func (st *state) clone() *state {
	c := &state{
		accounts:  make(map[string]domain.Account, len(st.accounts)),
		entries:   make(map[string]domain.JournalEntry, len(st.entries)),
		ledger:    make([]domain.LedgerTransaction, len(st.ledger)),
		counter:   st.counter,
		ledgerSeq: st.ledgerSeq,
	}
	for k, v := range st.accounts {
		c.accounts[k] = v
	}
	for k, v := range st.entries {
		c.entries[k] = v.Clone()
	}
	copy(c.ledger, st.ledger)
	return c
}

// Store holds accounts, entries, ledger rows and audit events in memory.
type Store struct {
	// txMu serializes units of work, which is how posting holds its account locks.
	txMu sync.Mutex
	mu   sync.RWMutex

	state  *state
	events []domain.AuditEvent

	commitFault CommitFault
	auditErr    error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		state: &state{
			accounts: map[string]domain.Account{},
			entries:  map[string]domain.JournalEntry{},
		},
	}
}

var (
	_ portsrepo.AccountReader         = (*Store)(nil)
	_ portsrepo.JournalEntryReader    = (*Store)(nil)
	_ portsrepo.LedgerReader          = (*Store)(nil)
	_ portsrepo.AuditRepositoryFacade = (*Store)(nil)
	_ portsrepo.UnitOfWorkFactory     = (*Store)(nil)
)

// SeedAccounts loads the account directory.
func (s *Store) SeedAccounts(accounts ...domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range accounts {
		s.state.accounts[a.AccountID] = a
	}
}

// InjectCommitFault installs (or with nil, removes) a commit fault.
func (s *Store) InjectCommitFault(fault CommitFault) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitFault = fault
}

// InjectAuditFailure makes Record fail with err until cleared with nil.
func (s *Store) InjectAuditFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditErr = err
}

// Provider bundles the store behind every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      s,
		JournalEntryRepo: s,
		LedgerRepo:       s,
		AuditRepo:        s,
		UnitOfWork:       s,
	}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.state.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acc, nil
}

func (s *Store) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := s.state.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func (s *Store) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0, len(s.state.accounts))
	for _, acc := range s.state.accounts {
		if activeOnly && !acc.IsActive {
			continue
		}
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber < out[j].AccountNumber })
	return out, nil
}

func (s *Store) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.state.entries[journalEntryID]
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
	}
	c := entry.Clone()
	return &c, nil
}

func (s *Store) ListJournalEntries(ctx context.Context, filter domain.JournalEntryFilter, nextToken *string) ([]domain.JournalEntry, *string, error) {
	before := int64(-1)
	if nextToken != nil && *nextToken != "" {
		pos, err := pagination.DecodeToken(pagination.KindJournalEntry, *nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		before = pos
	}

	s.mu.RLock()
	matches := make([]domain.JournalEntry, 0)
	for _, e := range s.state.entries {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if before >= 0 && e.EntryNumber >= before {
			continue
		}
		matches = append(matches, e.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool { return matches[i].EntryNumber > matches[j].EntryNumber })

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(matches) <= limit {
		return matches, nil, nil
	}
	page := matches[:limit]
	token := pagination.EncodeToken(pagination.KindJournalEntry, page[len(page)-1].EntryNumber)
	return page, &token, nil
}

func (s *Store) ListLedgerTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerTransaction, *string, error) {
	before := int64(-1)
	if nextToken != nil && *nextToken != "" {
		pos, err := pagination.DecodeToken(pagination.KindLedger, *nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		before = pos
	}
	limit = pagination.NormalizeLimit(limit)

	s.mu.RLock()
	defer s.mu.RUnlock()
	page := make([]domain.LedgerTransaction, 0, limit)
	for i := len(s.state.ledger) - 1; i >= 0; i-- {
		t := s.state.ledger[i]
		if t.AccountID != accountID {
			continue
		}
		if before >= 0 && t.Sequence >= before {
			continue
		}
		if len(page) == limit {
			token := pagination.EncodeToken(pagination.KindLedger, page[len(page)-1].Sequence)
			return page, &token, nil
		}
		page = append(page, t)
	}
	return page, nil, nil
}

// Record appends an audit event.
func (s *Store) Record(ctx context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auditErr != nil {
		return s.auditErr
	}
	s.events = append(s.events, event)
	return nil
}

func (s *Store) ListEventsByEntity(ctx context.Context, entityID string) ([]domain.AuditEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AuditEvent, 0)
	for _, e := range s.events {
		if e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}
