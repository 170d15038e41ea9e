package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/journal_engine/internal/core/domain"
)

// AuditEventResponse is one entry of an entity's history.
type AuditEventResponse struct {
	EventID     string                `json:"eventID"`
	EventType   domain.AuditEventType `json:"eventType"`
	BeforeImage json.RawMessage       `json:"beforeImage,omitempty" swaggertype:"object"`
	AfterImage  json.RawMessage       `json:"afterImage,omitempty" swaggertype:"object"`
	UserID      string                `json:"userID"`
	Username    string                `json:"username"`
	Timestamp   time.Time             `json:"timestamp"`
}

// ToAuditEventResponses converts a history listing.
func ToAuditEventResponses(events []domain.AuditEvent) []AuditEventResponse {
	res := make([]AuditEventResponse, len(events))
	for i, e := range events {
		res[i] = AuditEventResponse{
			EventID:     e.EventID,
			EventType:   e.EventType,
			BeforeImage: e.BeforeImage,
			AfterImage:  e.AfterImage,
			UserID:      e.UserID,
			Username:    e.Username,
			Timestamp:   e.Timestamp,
		}
	}
	return res
}
