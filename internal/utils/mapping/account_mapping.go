package mapping

import (
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		AccountNumber: d.AccountNumber,
		Name:          d.Name,
		Category:      string(d.Category),
		NormalSide:    string(d.NormalSide),
		IsActive:      d.IsActive,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Balance:       d.Balance,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		Category:      domain.AccountCategory(m.Category),
		NormalSide:    domain.NormalSide(m.NormalSide),
		IsActive:      m.IsActive,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Balance:       m.Balance,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
