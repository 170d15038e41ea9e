package accounting

import (
	"fmt"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateBalance derives an account balance from its cumulative debit and credit totals.
//
// Debit-normal accounts (usually Assets/Expenses):   balance = debit - credit
// Credit-normal accounts (usually Liabilities/Equity/Revenue): balance = credit - debit
func CalculateBalance(side domain.NormalSide, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch side {
	case domain.NormalDebit:
		return debit.Sub(credit), nil
	case domain.NormalCredit:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown normal side '%s'", side)
	}
}

// ApplyLineItem returns acc with the line's debit and credit added and the balance recomputed.
func ApplyLineItem(acc domain.Account, line domain.LineItem) (domain.Account, error) {
	newDebit := acc.Debit.Add(line.Debit)
	newCredit := acc.Credit.Add(line.Credit)
	balance, err := CalculateBalance(acc.NormalSide, newDebit, newCredit)
	if err != nil {
		return acc, fmt.Errorf("account %s: %w", acc.AccountID, err)
	}
	acc.Debit = newDebit
	acc.Credit = newCredit
	acc.Balance = balance
	return acc, nil
}

// SumColumns totals the debit and credit columns of a set of line items.
func SumColumns(lines []domain.LineItem) (totalDebits, totalCredits decimal.Decimal) {
	totalDebits = decimal.Zero
	totalCredits = decimal.Zero
	for _, l := range lines {
		totalDebits = totalDebits.Add(l.Debit)
		totalCredits = totalCredits.Add(l.Credit)
	}
	return totalDebits, totalCredits
}
