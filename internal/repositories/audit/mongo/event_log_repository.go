// Package mongo stores audit events as documents in the eventLogs collection.
package mongo

import (
	"context"
	"fmt"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/models"
	"github.com/SscSPs/journal_engine/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// CollectionName is the collection audit events are written to.
	CollectionName = "eventLogs"
	// CountersCollectionName holds the insertion counter for CollectionName.
	CountersCollectionName = "counters"
)

// EventLogRepository is an AuditRepositoryFacade backed by MongoDB.
type EventLogRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

var _ portsrepo.AuditRepositoryFacade = (*EventLogRepository)(nil)

// NewEventLogRepository binds the repository to db's eventLogs collection.
func NewEventLogRepository(db *mongo.Database) *EventLogRepository {
	return &EventLogRepository{
		collection: db.Collection(CollectionName),
		counters:   db.Collection(CountersCollectionName),
	}
}

// EnsureIndexes creates the index history lookups rely on.
func (r *EventLogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "entityID", Value: 1}, {Key: "timestamp", Value: 1}, {Key: "seq", Value: 1}},
		Options: options.Index().SetName("entity_timestamp_seq"),
	})
	if err != nil {
		return fmt.Errorf("failed to create %s index: %w", CollectionName, err)
	}
	return nil
}

// nextSeq atomically increments the event counter. Stored timestamps only keep
// milliseconds, so seq is what orders events written in the same millisecond.
func (r *EventLogRepository) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": CollectionName},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to increment event counter", err)
	}
	return counter.Value, nil
}

// Record inserts one event document.
func (r *EventLogRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}
	doc := mapping.ToModelEventLog(event)
	doc.Seq = seq
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: event %s", apperrors.ErrDuplicate, event.EventID)
		}
		return apperrors.NewAppError(500, "failed to record audit event "+event.EventID, err)
	}
	return nil
}

// ListEventsByEntity returns an entity's events oldest first, insertion order within a timestamp.
func (r *EventLogRepository) ListEventsByEntity(ctx context.Context, entityID string) ([]domain.AuditEvent, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"entityID": entityID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "seq", Value: 1}}),
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events for "+entityID, err)
	}

	var docs []models.EventLog
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode events for "+entityID, err)
	}

	events := make([]domain.AuditEvent, len(docs))
	for i, d := range docs {
		events[i] = mapping.ToDomainAuditEvent(d)
	}
	return events, nil
}
