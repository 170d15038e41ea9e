package dto

import (
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListAccountsParams defines the query parameters for listing accounts.
type ListAccountsParams struct {
	Active bool `form:"active"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string                 `json:"accountID"`
	AccountNumber string                 `json:"accountNumber"`
	Name          string                 `json:"name"`
	Category      domain.AccountCategory `json:"category"`
	NormalSide    domain.NormalSide      `json:"normalSide"`
	IsActive      bool                   `json:"isActive"`
	Debit         decimal.Decimal        `json:"debit" swaggertype:"string"`
	Credit        decimal.Decimal        `json:"credit" swaggertype:"string"`
	Balance       decimal.Decimal        `json:"balance" swaggertype:"string"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		Name:          acc.Name,
		Category:      acc.Category,
		NormalSide:    acc.NormalSide,
		IsActive:      acc.IsActive,
		Debit:         acc.Debit,
		Credit:        acc.Credit,
		Balance:       acc.Balance,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
