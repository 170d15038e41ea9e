package dto

import (
	"time"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// EntryIntent is what the user asked to do with a new entry.
type EntryIntent string

const (
	IntentDraft  EntryIntent = "draft"
	IntentSubmit EntryIntent = "submit"
	IntentPost   EntryIntent = "post"
)

// LineItemRequest is one row of the entry form. Amount rules are enforced by
// the line-item validator so that every problem is reported in one response.
type LineItemRequest struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string" example:"100.00"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string" example:"0"`
	Description string          `json:"description" binding:"max=255"`
}

// JournalEntryContent is the editable part of an entry.
type JournalEntryContent struct {
	EntryDate   time.Time         `json:"entryDate" example:"2024-03-01T00:00:00Z"`
	Reference   string            `json:"reference" binding:"max=64"`
	Description string            `json:"description" binding:"max=500"`
	LineItems   []LineItemRequest `json:"lineItems" binding:"max=200,dive"`
}

// ToEntryInput converts the form into validator input.
func (c JournalEntryContent) ToEntryInput() accounting.EntryInput {
	lines := make([]accounting.LineInput, len(c.LineItems))
	for i, l := range c.LineItems {
		lines[i] = accounting.LineInput{
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return accounting.EntryInput{
		EntryDate:   c.EntryDate,
		Description: c.Description,
		Lines:       lines,
	}
}

// CreateJournalEntryRequest creates an entry as a draft, submits it for approval, or posts it.
type CreateJournalEntryRequest struct {
	Intent EntryIntent `json:"intent" binding:"required,oneof=draft submit post" example:"submit"`
	JournalEntryContent
}

// UpdateDraftRequest replaces a draft's content. Version, when sent, must match the stored entry.
type UpdateDraftRequest struct {
	JournalEntryContent
	Version *int64 `json:"version"`
}

// ResubmitJournalEntryRequest resubmits a rejected entry, optionally with corrections.
type ResubmitJournalEntryRequest struct {
	Entry   *JournalEntryContent `json:"entry"`
	Version *int64               `json:"version"`
}

// RejectJournalEntryRequest carries the mandatory rejection reason.
type RejectJournalEntryRequest struct {
	Reason string `json:"reason" binding:"required,notblank,max=500"`
}

// ListJournalEntriesParams defines the query parameters for listing entries.
type ListJournalEntriesParams struct {
	Status    string  `form:"status" binding:"omitempty,oneof=draft pending_approval approved rejected posted"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit        decimal.Decimal `json:"credit" swaggertype:"string"`
	Description   string          `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID  string                    `json:"journalEntryID"`
	EntryNumber     int64                     `json:"entryNumber"`
	EntryDate       time.Time                 `json:"entryDate"`
	Reference       string                    `json:"reference,omitempty"`
	Description     string                    `json:"description"`
	Status          domain.JournalEntryStatus `json:"status"`
	TotalAmount     decimal.Decimal           `json:"totalAmount" swaggertype:"string"`
	LineItems       []LineItemResponse        `json:"lineItems"`
	SubmittedAt     *time.Time                `json:"submittedAt,omitempty"`
	ApprovedBy      *string                   `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time                `json:"approvedAt,omitempty"`
	RejectedBy      *string                   `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time                `json:"rejectedAt,omitempty"`
	RejectionReason *string                   `json:"rejectionReason,omitempty"`
	PostedBy        *string                   `json:"postedBy,omitempty"`
	PostedAt        *time.Time                `json:"postedAt,omitempty"`
	Version         int64                     `json:"version"`
	CreatedAt       time.Time                 `json:"createdAt"`
	CreatedBy       string                    `json:"createdBy"`
	LastUpdatedAt   time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy   string                    `json:"lastUpdatedBy"`
	Notice          string                    `json:"notice,omitempty"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	JournalEntries []JournalEntryResponse `json:"journalEntries"`
	NextToken      *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]LineItemResponse, len(e.LineItems))
	for i, l := range e.LineItems {
		lines[i] = LineItemResponse{
			AccountID:     l.AccountID,
			AccountNumber: l.AccountNumber,
			AccountName:   l.AccountName,
			Debit:         l.Debit,
			Credit:        l.Credit,
			Description:   l.Description,
		}
	}
	return JournalEntryResponse{
		JournalEntryID:  e.JournalEntryID,
		EntryNumber:     e.EntryNumber,
		EntryDate:       e.EntryDate,
		Reference:       e.Reference,
		Description:     e.Description,
		Status:          e.Status,
		TotalAmount:     e.TotalAmount,
		LineItems:       lines,
		SubmittedAt:     e.SubmittedAt,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		RejectedBy:      e.RejectedBy,
		RejectedAt:      e.RejectedAt,
		RejectionReason: e.RejectionReason,
		PostedBy:        e.PostedBy,
		PostedAt:        e.PostedAt,
		Version:         e.Version,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToListJournalEntriesResponse converts a page of entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return ListJournalEntriesResponse{JournalEntries: res, NextToken: nextToken}
}
