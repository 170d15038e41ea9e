package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
)

// stageFunc stages writes on a unit of work.
type stageFunc func(ctx context.Context, uow portsrepo.UnitOfWork) error

// mutation is one audited workflow write. primary stages the business change and
// returns the before/after images for the audit event.
//
// A mutation with compensate set is committed first and, when its event cannot be
// recorded, undone by a second unit of work. A mutation without one (posting)
// records its event while the transaction and its account locks are still open,
// so an audit failure is a plain rollback and no other post can build on it.
type mutation struct {
	eventType  domain.AuditEventType
	entityID   string
	primary    func(ctx context.Context, uow portsrepo.UnitOfWork) (before, after any, err error)
	compensate stageFunc
}

// execute applies m and records its audit event. An operation whose audit trail is
// missing is reported as failed, never as a warning.
func (s *journalEntryService) execute(ctx context.Context, actor domain.Actor, m mutation) error {
	if m.compensate == nil {
		return s.executeLocked(ctx, actor, m)
	}

	var before, after any
	err := s.inUnitOfWork(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		before, after, err = m.primary(ctx, uow)
		return err
	})
	if err != nil {
		s.logWriteFailure(ctx, err, m)
		return err
	}

	auditErr := s.record(ctx, actor, m, before, after)
	if auditErr == nil {
		return nil
	}
	s.LogError(ctx, auditErr, "Audit recording failed, compensating", "journal_entry_id", m.entityID, "event_type", m.eventType)

	// the caller may already be gone; the revert must still land
	compErr := s.inUnitOfWork(context.WithoutCancel(ctx), m.compensate)
	if compErr != nil {
		s.LogError(ctx, compErr, "Compensation after audit failure did not complete", "journal_entry_id", m.entityID, "event_type", m.eventType)
		return errors.Join(fmt.Errorf("%w: %v", apperrors.ErrAuditFailure, auditErr), compErr)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrAuditFailure, auditErr)
}

// executeLocked flushes m inside an open unit of work, records the event, and only
// then commits. Any failure up to the commit rolls everything back.
func (s *journalEntryService) executeLocked(ctx context.Context, actor domain.Actor, m mutation) error {
	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer s.rollback(ctx, uow)

	before, after, err := m.primary(ctx, uow)
	if err == nil {
		err = uow.Flush(ctx)
	}
	if err != nil {
		s.logWriteFailure(ctx, err, m)
		return err
	}

	if auditErr := s.record(ctx, actor, m, before, after); auditErr != nil {
		s.LogError(ctx, auditErr, "Audit recording failed, rolling back", "journal_entry_id", m.entityID, "event_type", m.eventType)
		return fmt.Errorf("%w: %v", apperrors.ErrAuditFailure, auditErr)
	}

	if err := uow.Commit(ctx); err != nil {
		// the event is already durable and the sink is append-only
		s.LogError(ctx, err, "Commit failed after audit event was recorded", "journal_entry_id", m.entityID, "event_type", m.eventType)
		return err
	}
	return nil
}

func (s *journalEntryService) logWriteFailure(ctx context.Context, err error, m mutation) {
	if errors.Is(err, apperrors.ErrConflict) {
		s.LogWarn(ctx, err, "Journal entry changed concurrently", "journal_entry_id", m.entityID)
		return
	}
	s.LogError(ctx, err, "Failed to commit journal entry change", "journal_entry_id", m.entityID, "event_type", m.eventType)
}

func (s *journalEntryService) record(ctx context.Context, actor domain.Actor, m mutation, before, after any) error {
	event, err := domain.NewAuditEvent(m.eventType, m.entityID, before, after, actor, s.now())
	if err != nil {
		return err
	}
	return s.audit.Record(ctx, event)
}

// inUnitOfWork runs fn on a fresh unit of work and commits it.
func (s *journalEntryService) inUnitOfWork(ctx context.Context, fn stageFunc) error {
	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer s.rollback(ctx, uow)

	if err := fn(ctx, uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (s *journalEntryService) rollback(ctx context.Context, uow portsrepo.UnitOfWork) {
	if err := uow.Rollback(context.WithoutCancel(ctx)); err != nil {
		s.LogDebug(ctx, "Rollback after unit of work", "error", err.Error())
	}
}

// restoreEntry stages the before-image back over the entry written by a primary change.
// The version moves forward so readers of either image see a conflict.
func restoreEntry(before, after domain.JournalEntry) stageFunc {
	return func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		restored := before.Clone()
		restored.Version = after.Version + 1
		uow.StageJournalEntryUpdate(restored, after.Version)
		return nil
	}
}

// removeEntry stages the deletion of an entry inserted by a primary change.
func removeEntry(inserted domain.JournalEntry) stageFunc {
	return func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		uow.StageJournalEntryDelete(inserted.JournalEntryID, inserted.Version)
		return nil
	}
}

// reinsertEntry stages a deleted draft back into the store.
func reinsertEntry(deleted domain.JournalEntry) stageFunc {
	return func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		restored := deleted.Clone()
		restored.Version = deleted.Version + 1
		uow.StageJournalEntryInsert(restored)
		return nil
	}
}
