package repositories

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
)

// AuditRecorder persists audit events. A returned error means the event is not durable.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditTrailReader lists the recorded history of one entity, oldest first.
type AuditTrailReader interface {
	ListEventsByEntity(ctx context.Context, entityID string) ([]domain.AuditEvent, error)
}

// AuditRepositoryFacade combines the audit sink operations.
type AuditRepositoryFacade interface {
	AuditRecorder
	AuditTrailReader
}
