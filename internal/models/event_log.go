package models

import "time"

// EventLog is a stored audit event, shared by the event_logs table and the
// eventLogs Mongo collection. Images are JSON text.
type EventLog struct {
	EventID     string    `db:"event_id" bson:"_id"`
	EventType   string    `db:"event_type" bson:"eventType"`
	EntityID    string    `db:"entity_id" bson:"entityID"`
	BeforeImage *string   `db:"before_image" bson:"beforeImage,omitempty"`
	AfterImage  *string   `db:"after_image" bson:"afterImage,omitempty"`
	UserID      string    `db:"user_id" bson:"userID"`
	Username    string    `db:"username" bson:"username"`
	Timestamp   time.Time `db:"event_timestamp" bson:"timestamp"`
	// Seq orders events that share a timestamp.
	Seq         int64     `db:"seq" bson:"seq"`
}
