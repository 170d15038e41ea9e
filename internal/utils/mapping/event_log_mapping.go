package mapping

import (
	"encoding/json"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/models"
)

// ToModelEventLog converts a domain AuditEvent to a model EventLog
func ToModelEventLog(d domain.AuditEvent) models.EventLog {
	return models.EventLog{
		EventID:     d.EventID,
		EventType:   string(d.EventType),
		EntityID:    d.EntityID,
		BeforeImage: imageText(d.BeforeImage),
		AfterImage:  imageText(d.AfterImage),
		UserID:      d.UserID,
		Username:    d.Username,
		Timestamp:   d.Timestamp,
	}
}

// ToDomainAuditEvent converts a model EventLog to a domain AuditEvent
func ToDomainAuditEvent(m models.EventLog) domain.AuditEvent {
	return domain.AuditEvent{
		EventID:     m.EventID,
		EventType:   domain.AuditEventType(m.EventType),
		EntityID:    m.EntityID,
		BeforeImage: imageJSON(m.BeforeImage),
		AfterImage:  imageJSON(m.AfterImage),
		UserID:      m.UserID,
		Username:    m.Username,
		Timestamp:   m.Timestamp,
	}
}

func imageText(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	s := string(raw)
	return &s
}

func imageJSON(s *string) json.RawMessage {
	if s == nil {
		return nil
	}
	return json.RawMessage(*s)
}
