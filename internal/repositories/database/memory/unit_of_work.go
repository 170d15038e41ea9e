package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
)

type stagedOp struct {
	name  string
	apply func(st *state) error
}

// unitOfWork applies staged writes to a private copy of the store state and
// swaps it in only when every write succeeded.
type unitOfWork struct {
	store   *Store
	working *state
	ops     []stagedOp
	step    int
	failed  error
	done    bool
}

var _ portsrepo.UnitOfWork = (*unitOfWork)(nil)

// Begin starts a unit of work. Units of work on one store run one at a time.
func (s *Store) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	return &unitOfWork{store: s, working: s.snapshot()}, nil
}

func (u *unitOfWork) NextEntryNumber(ctx context.Context) (int64, error) {
	u.working.counter++
	return u.working.counter, nil
}

func (u *unitOfWork) LockAccounts(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := u.working.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func (u *unitOfWork) stage(name string, apply func(st *state) error) {
	u.ops = append(u.ops, stagedOp{name: name, apply: apply})
}

func (u *unitOfWork) StageJournalEntryInsert(entry domain.JournalEntry) {
	entry = entry.Clone()
	u.stage("insert_journal_entry", func(st *state) error {
		if _, exists := st.entries[entry.JournalEntryID]; exists {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, entry.JournalEntryID)
		}
		st.entries[entry.JournalEntryID] = entry
		return nil
	})
}

func (u *unitOfWork) StageJournalEntryUpdate(entry domain.JournalEntry, expectedVersion int64) {
	entry = entry.Clone()
	u.stage("update_journal_entry", func(st *state) error {
		if err := checkVersion(st, entry.JournalEntryID, expectedVersion); err != nil {
			return err
		}
		st.entries[entry.JournalEntryID] = entry
		return nil
	})
}

func (u *unitOfWork) StageJournalEntryDelete(journalEntryID string, expectedVersion int64) {
	u.stage("delete_journal_entry", func(st *state) error {
		if err := checkVersion(st, journalEntryID, expectedVersion); err != nil {
			return err
		}
		delete(st.entries, journalEntryID)
		return nil
	})
}

func checkVersion(st *state, journalEntryID string, expectedVersion int64) error {
	current, ok := st.entries[journalEntryID]
	if !ok {
		return fmt.Errorf("%w: journal entry %s no longer exists", apperrors.ErrConflict, journalEntryID)
	}
	if current.Version != expectedVersion {
		return fmt.Errorf("%w: journal entry %s is at version %d, expected %d",
			apperrors.ErrConflict, journalEntryID, current.Version, expectedVersion)
	}
	return nil
}

func (u *unitOfWork) StageAccountUpdate(account domain.Account) {
	u.stage("update_account", func(st *state) error {
		if _, ok := st.accounts[account.AccountID]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
		}
		st.accounts[account.AccountID] = account
		return nil
	})
}

func (u *unitOfWork) StageLedgerTransactions(txns []domain.LedgerTransaction) {
	for _, t := range txns {
		t := t
		u.stage("insert_ledger_transaction", func(st *state) error {
			st.ledgerSeq++
			t.Sequence = st.ledgerSeq
			st.ledger = append(st.ledger, t)
			return nil
		})
	}
}

func (u *unitOfWork) Flush(ctx context.Context) error {
	if u.done {
		return fmt.Errorf("unit of work already finished")
	}
	if u.failed != nil {
		return u.failed
	}

	u.store.mu.RLock()
	fault := u.store.commitFault
	u.store.mu.RUnlock()

	ops := u.ops
	u.ops = nil
	for _, op := range ops {
		step := u.step
		u.step++
		if fault != nil {
			if err := fault(step, op.name); err != nil {
				u.failed = fmt.Errorf("commit aborted at %s (step %d): %w", op.name, step, err)
				return u.failed
			}
		}
		if err := op.apply(u.working); err != nil {
			u.failed = err
			return err
		}
	}
	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if err := u.Flush(ctx); err != nil {
		if !u.done {
			u.finish()
		}
		return err
	}
	defer u.finish()

	u.store.mu.Lock()
	u.store.state = u.working
	u.store.mu.Unlock()
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.finish()
	return nil
}

func (u *unitOfWork) finish() {
	u.done = true
	u.working = nil
	u.store.txMu.Unlock()
}
