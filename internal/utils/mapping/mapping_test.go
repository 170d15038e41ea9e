package mapping_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalEntryLinesKeepOrder(t *testing.T) {
	approver := "u-manager"
	entry := domain.JournalEntry{
		JournalEntryID: "je-1",
		EntryNumber:    7,
		EntryDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:    "Rent",
		Status:         domain.StatusApproved,
		ApprovedBy:     &approver,
		Version:        3,
		TotalAmount:    decimal.RequireFromString("120"),
		LineItems: []domain.LineItem{
			{AccountID: "rent", AccountName: "Rent Expense", Debit: decimal.RequireFromString("120"), Credit: decimal.Zero},
			{AccountID: "cash", AccountName: "Cash", Debit: decimal.Zero, Credit: decimal.RequireFromString("120")},
		},
	}

	header, lines := mapping.ToModelJournalEntry(entry)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].LineNo)
	assert.Equal(t, 2, lines[1].LineNo)
	assert.Equal(t, "je-1", lines[1].JournalEntryID)
	assert.Equal(t, "approved", header.Status)

	assert.Equal(t, entry, mapping.ToDomainJournalEntry(header, lines))
}

func TestEventLogImages(t *testing.T) {
	event := domain.AuditEvent{
		EventID:    "ev-1",
		EventType:  domain.EventDraftCreated,
		EntityID:   "je-1",
		AfterImage: json.RawMessage(`{"status":"draft"}`),
		UserID:     "u-1",
	}

	m := mapping.ToModelEventLog(event)
	assert.Nil(t, m.BeforeImage)
	require.NotNil(t, m.AfterImage)
	assert.JSONEq(t, `{"status":"draft"}`, *m.AfterImage)

	back := mapping.ToDomainAuditEvent(m)
	assert.Nil(t, back.BeforeImage)
	assert.JSONEq(t, `{"status":"draft"}`, string(back.AfterImage))
	assert.Equal(t, domain.EventDraftCreated, back.EventType)
}
