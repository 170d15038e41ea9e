package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the lifecycle state of a journal entry.
type JournalEntryStatus string

const (
	// StatusNone is never stored. It stands for "not yet created" and "deleted draft".
	StatusNone            JournalEntryStatus = ""
	StatusDraft           JournalEntryStatus = "draft"
	StatusPendingApproval JournalEntryStatus = "pending_approval"
	StatusApproved        JournalEntryStatus = "approved"
	StatusRejected        JournalEntryStatus = "rejected"
	StatusPosted          JournalEntryStatus = "posted"
)

// ParseJournalEntryStatus validates a raw status string.
func ParseJournalEntryStatus(raw string) (JournalEntryStatus, bool) {
	switch s := JournalEntryStatus(raw); s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusPosted:
		return s, true
	default:
		return StatusNone, false
	}
}

// LineItem is one debit or credit row of a journal entry.
// Exactly one of Debit and Credit is positive once the entry is accepted.
type LineItem struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description,omitempty"`
}

// IsDebit reports whether the line sits in the debit column.
func (l LineItem) IsDebit() bool {
	return l.Debit.IsPositive()
}

// JournalEntry is a double-entry journal entry moving through the approval workflow.
type JournalEntry struct {
	JournalEntryID  string             `json:"journalEntryID"`
	EntryNumber     int64              `json:"entryNumber"`
	EntryDate       time.Time          `json:"entryDate"`
	Reference       string             `json:"reference,omitempty"`
	Description     string             `json:"description"`
	LineItems       []LineItem         `json:"lineItems"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Status          JournalEntryStatus `json:"status"`
	SubmittedAt     *time.Time         `json:"submittedAt,omitempty"`
	ApprovedBy      *string            `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time         `json:"approvedAt,omitempty"`
	RejectedBy      *string            `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time         `json:"rejectedAt,omitempty"`
	RejectionReason *string            `json:"rejectionReason,omitempty"`
	PostedBy        *string            `json:"postedBy,omitempty"`
	PostedAt        *time.Time         `json:"postedAt,omitempty"`
	Version         int64              `json:"version"`
	AuditFields
}

// Clone returns a deep copy so before-images stay untouched by later edits.
func (e JournalEntry) Clone() JournalEntry {
	c := e
	if e.LineItems != nil {
		c.LineItems = make([]LineItem, len(e.LineItems))
		copy(c.LineItems, e.LineItems)
	}
	c.SubmittedAt = cloneTime(e.SubmittedAt)
	c.ApprovedBy = cloneString(e.ApprovedBy)
	c.ApprovedAt = cloneTime(e.ApprovedAt)
	c.RejectedBy = cloneString(e.RejectedBy)
	c.RejectedAt = cloneTime(e.RejectedAt)
	c.RejectionReason = cloneString(e.RejectionReason)
	c.PostedBy = cloneString(e.PostedBy)
	c.PostedAt = cloneTime(e.PostedAt)
	return c
}

// ClearRejection drops the rejection stamp, used when a rejected entry is resubmitted.
func (e *JournalEntry) ClearRejection() {
	e.RejectedBy = nil
	e.RejectedAt = nil
	e.RejectionReason = nil
}

// JournalEntryFilter narrows ListJournalEntries.
type JournalEntryFilter struct {
	Status *JournalEntryStatus
	Limit  int
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
