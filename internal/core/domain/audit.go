package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditEventType names the mutation an audit event records.
type AuditEventType string

const (
	EventDraftCreated   AuditEventType = "journal_entry.draft_created"
	EventDraftUpdated   AuditEventType = "journal_entry.draft_updated"
	EventDraftDeleted   AuditEventType = "journal_entry.draft_deleted"
	EventSubmitted      AuditEventType = "journal_entry.submitted"
	EventApproved       AuditEventType = "journal_entry.approved"
	EventRejected       AuditEventType = "journal_entry.rejected"
	EventResubmitted    AuditEventType = "journal_entry.resubmitted"
	EventPosted         AuditEventType = "journal_entry.posted"
	EventPostedDirectly AuditEventType = "journal_entry.posted_directly"
)

// AuditEvent is an immutable before/after record of a mutation.
// Images are JSON snapshots; a nil image means the object did not exist.
type AuditEvent struct {
	EventID     string          `json:"eventID"`
	EventType   AuditEventType  `json:"eventType"`
	EntityID    string          `json:"entityID"`
	BeforeImage json.RawMessage `json:"beforeImage,omitempty"`
	AfterImage  json.RawMessage `json:"afterImage,omitempty"`
	UserID      string          `json:"userID"`
	Username    string          `json:"username"`
	Timestamp   time.Time       `json:"timestamp"`
}

// PostingImage is the audit snapshot of a post: the entry plus every touched account.
type PostingImage struct {
	Entry    *JournalEntry `json:"entry,omitempty"`
	Accounts []Account     `json:"accounts,omitempty"`
}

// NewAuditEvent snapshots before and after into a new event stamped for actor.
func NewAuditEvent(eventType AuditEventType, entityID string, before, after any, actor Actor, at time.Time) (AuditEvent, error) {
	beforeImage, err := snapshot(before)
	if err != nil {
		return AuditEvent{}, fmt.Errorf("snapshot before image: %w", err)
	}
	afterImage, err := snapshot(after)
	if err != nil {
		return AuditEvent{}, fmt.Errorf("snapshot after image: %w", err)
	}
	return AuditEvent{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		EntityID:    entityID,
		BeforeImage: beforeImage,
		AfterImage:  afterImage,
		UserID:      actor.UserID,
		Username:    actor.Username,
		Timestamp:   at,
	}, nil
}

func snapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case *JournalEntry:
		if t == nil {
			return nil, nil
		}
	case *PostingImage:
		if t == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}
