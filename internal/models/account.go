package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID     string          `db:"account_id"`
	AccountNumber string          `db:"account_number"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	NormalSide    string          `db:"normal_side"`
	IsActive      bool            `db:"is_active"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}
