package domain

import (
	"github.com/shopspring/decimal"
)

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Assets      AccountCategory = "Assets"
	Liabilities AccountCategory = "Liabilities"
	Equity      AccountCategory = "Equity"
	Revenue     AccountCategory = "Revenue"
	Expenses    AccountCategory = "Expenses"
)

// NormalSide is the side on which an account's balance normally increases.
type NormalSide string

const (
	NormalDebit  NormalSide = "Debit"
	NormalCredit NormalSide = "Credit"
)

// Account represents a chart-of-accounts entry as seen by the journal engine.
// Debit, Credit and Balance are cumulative and are only written by posting.
type Account struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Category      AccountCategory `json:"category"`
	NormalSide    NormalSide      `json:"normalSide"`
	IsActive      bool            `json:"isActive"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
