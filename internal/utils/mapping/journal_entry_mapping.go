package mapping

import (
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/models"
)

// ToModelJournalEntry splits a domain JournalEntry into its header row and line rows.
func ToModelJournalEntry(d domain.JournalEntry) (models.JournalEntry, []models.JournalEntryLine) {
	entry := models.JournalEntry{
		JournalEntryID:  d.JournalEntryID,
		EntryNumber:     d.EntryNumber,
		EntryDate:       d.EntryDate,
		Reference:       d.Reference,
		Description:     d.Description,
		TotalAmount:     d.TotalAmount,
		Status:          string(d.Status),
		SubmittedAt:     d.SubmittedAt,
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		RejectedBy:      d.RejectedBy,
		RejectedAt:      d.RejectedAt,
		RejectionReason: d.RejectionReason,
		PostedBy:        d.PostedBy,
		PostedAt:        d.PostedAt,
		Version:         d.Version,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	lines := make([]models.JournalEntryLine, len(d.LineItems))
	for i, l := range d.LineItems {
		lines[i] = models.JournalEntryLine{
			JournalEntryID: d.JournalEntryID,
			LineNo:         i + 1,
			AccountID:      l.AccountID,
			AccountNumber:  l.AccountNumber,
			AccountName:    l.AccountName,
			Debit:          l.Debit,
			Credit:         l.Credit,
			Description:    l.Description,
		}
	}
	return entry, lines
}

// ToDomainJournalEntry joins a header row with its line rows, which must be in line order.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalEntryLine) domain.JournalEntry {
	items := make([]domain.LineItem, len(lines))
	for i, l := range lines {
		items[i] = domain.LineItem{
			AccountID:     l.AccountID,
			AccountNumber: l.AccountNumber,
			AccountName:   l.AccountName,
			Debit:         l.Debit,
			Credit:        l.Credit,
			Description:   l.Description,
		}
	}
	return domain.JournalEntry{
		JournalEntryID:  m.JournalEntryID,
		EntryNumber:     m.EntryNumber,
		EntryDate:       m.EntryDate,
		Reference:       m.Reference,
		Description:     m.Description,
		LineItems:       items,
		TotalAmount:     m.TotalAmount,
		Status:          domain.JournalEntryStatus(m.Status),
		SubmittedAt:     m.SubmittedAt,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		RejectedBy:      m.RejectedBy,
		RejectedAt:      m.RejectedAt,
		RejectionReason: m.RejectionReason,
		PostedBy:        m.PostedBy,
		PostedAt:        m.PostedAt,
		Version:         m.Version,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
