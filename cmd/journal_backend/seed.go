package main

import "github.com/SscSPs/journal_engine/internal/core/domain"

// demoAccounts is the chart of accounts loaded into the in-memory store.
func demoAccounts() []domain.Account {
	mk := func(id, number, name string, category domain.AccountCategory, side domain.NormalSide) domain.Account {
		return domain.Account{
			AccountID:     id,
			AccountNumber: number,
			Name:          name,
			Category:      category,
			NormalSide:    side,
			IsActive:      true,
		}
	}
	return []domain.Account{
		mk("acc-cash", "1000", "Cash", domain.Assets, domain.NormalDebit),
		mk("acc-receivable", "1100", "Accounts Receivable", domain.Assets, domain.NormalDebit),
		mk("acc-payable", "2000", "Accounts Payable", domain.Liabilities, domain.NormalCredit),
		mk("acc-capital", "3000", "Owner's Capital", domain.Equity, domain.NormalCredit),
		mk("acc-revenue", "4000", "Service Revenue", domain.Revenue, domain.NormalCredit),
		mk("acc-rent", "5000", "Rent Expense", domain.Expenses, domain.NormalDebit),
		mk("acc-utilities", "5100", "Utilities Expense", domain.Expenses, domain.NormalDebit),
	}
}
