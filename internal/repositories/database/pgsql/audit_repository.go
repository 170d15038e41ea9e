package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/models"
	"github.com/SscSPs/journal_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAuditRepository stores audit events in the event_logs table.
type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// Record inserts one event. Images are stored as jsonb.
func (r *PgxAuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	m := mapping.ToModelEventLog(event)
	query := `
		INSERT INTO event_logs (event_id, event_type, entity_id, before_image, after_image, user_id, username, event_timestamp)
		VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.EventType,
		m.EntityID,
		m.BeforeImage,
		m.AfterImage,
		m.UserID,
		m.Username,
		m.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: event %s", apperrors.ErrDuplicate, m.EventID)
		}
		return apperrors.NewAppError(500, "failed to record audit event "+m.EventID, err)
	}
	return nil
}

// ListEventsByEntity returns an entity's events oldest first.
func (r *PgxAuditRepository) ListEventsByEntity(ctx context.Context, entityID string) ([]domain.AuditEvent, error) {
	query := `
		SELECT event_id, event_type, entity_id, before_image::text, after_image::text, user_id, username, event_timestamp
		FROM event_logs
		WHERE entity_id = $1
		ORDER BY event_timestamp, seq;
	`
	rows, err := r.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events for "+entityID, err)
	}
	defer rows.Close()

	events := make([]domain.AuditEvent, 0)
	for rows.Next() {
		var m models.EventLog
		if err := rows.Scan(
			&m.EventID,
			&m.EventType,
			&m.EntityID,
			&m.BeforeImage,
			&m.AfterImage,
			&m.UserID,
			&m.Username,
			&m.Timestamp,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan event row", err)
		}
		events = append(events, mapping.ToDomainAuditEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating event rows", err)
	}
	return events, nil
}
