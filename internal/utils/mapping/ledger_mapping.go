package mapping

import (
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/models"
)

// ToModelLedgerTransaction converts a domain LedgerTransaction to a model LedgerTransaction
func ToModelLedgerTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		LedgerTransactionID: d.LedgerTransactionID,
		Sequence:            d.Sequence,
		AccountID:           d.AccountID,
		JournalEntryID:      d.JournalEntryID,
		EntryDate:           d.Date,
		Description:         d.Description,
		Debit:               d.Debit,
		Credit:              d.Credit,
		Balance:             d.Balance,
		PostReference:       d.PostReference,
		CreatedAt:           d.CreatedAt,
		CreatedBy:           d.CreatedBy,
	}
}

// ToDomainLedgerTransaction converts a model LedgerTransaction to a domain LedgerTransaction
func ToDomainLedgerTransaction(m models.LedgerTransaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		LedgerTransactionID: m.LedgerTransactionID,
		AccountID:           m.AccountID,
		JournalEntryID:      m.JournalEntryID,
		Sequence:            m.Sequence,
		Date:                m.EntryDate,
		Description:         m.Description,
		Debit:               m.Debit,
		Credit:              m.Credit,
		Balance:             m.Balance,
		PostReference:       m.PostReference,
		CreatedAt:           m.CreatedAt,
		CreatedBy:           m.CreatedBy,
	}
}

// ToDomainLedgerTransactionSlice converts a slice of model rows to domain rows
func ToDomainLedgerTransactionSlice(ms []models.LedgerTransaction) []domain.LedgerTransaction {
	ds := make([]domain.LedgerTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerTransaction(m)
	}
	return ds
}
