package accounting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidationErrorKind identifies which rule a proposed entry broke.
type ValidationErrorKind string

const (
	MissingDate        ValidationErrorKind = "MissingDate"
	MissingDescription ValidationErrorKind = "MissingDescription"
	MissingAccount     ValidationErrorKind = "MissingAccount"
	MissingAmount      ValidationErrorKind = "MissingAmount"
	InvalidAmount      ValidationErrorKind = "InvalidAmount"
	BothDebitAndCredit ValidationErrorKind = "BothDebitAndCredit"
	InsufficientLines  ValidationErrorKind = "InsufficientLines"
	InactiveAccount    ValidationErrorKind = "InactiveAccount"
	UnknownAccount     ValidationErrorKind = "UnknownAccount"
	Unbalanced         ValidationErrorKind = "Unbalanced"
	ZeroTotal          ValidationErrorKind = "ZeroTotal"
)

// EntryRow is used for errors that belong to the entry rather than a line.
const EntryRow = -1

// CurrencyPlaces is the number of decimal places of the smallest currency unit.
const CurrencyPlaces int32 = 2

var (
	// MinimumAmount is the smallest representable currency unit.
	MinimumAmount = decimal.New(1, -CurrencyPlaces)
)

// FieldError is a single field-tagged validation failure.
type FieldError struct {
	Kind        ValidationErrorKind `json:"kind"`
	Field       string              `json:"field"`
	Row         int                 `json:"row"`
	AccountName string              `json:"accountName,omitempty"`
	Difference  *decimal.Decimal    `json:"difference,omitempty" swaggertype:"string"`
	Message     string              `json:"message"`
}

// ValidationErrors collects every failure found in one pass. It unwraps to apperrors.ErrValidation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return fmt.Sprintf("%s: %s", apperrors.ErrValidation.Error(), strings.Join(msgs, "; "))
}

func (v ValidationErrors) Unwrap() error {
	return apperrors.ErrValidation
}

// Has reports whether any error of the given kind was collected.
func (v ValidationErrors) Has(kind ValidationErrorKind) bool {
	for _, e := range v {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// EntryInput is a proposed entry as typed by the user.
type EntryInput struct {
	EntryDate   time.Time
	Description string
	Lines       []LineInput
}

// LineInput is one candidate row of a proposed entry.
type LineInput struct {
	AccountID   string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

func (r LineInput) isBlank() bool {
	return strings.TrimSpace(r.AccountID) == "" && r.Debit.IsZero() && r.Credit.IsZero()
}

// ValidateLineItems checks a proposed entry and returns the normalized line items,
// debit lines first. Every rule is evaluated; nothing is partially accepted.
func ValidateLineItems(input EntryInput, accounts map[string]domain.Account) ([]domain.LineItem, error) {
	var errs ValidationErrors

	if input.EntryDate.IsZero() {
		errs = append(errs, FieldError{Kind: MissingDate, Field: "entryDate", Row: EntryRow, Message: "entry date is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, FieldError{Kind: MissingDescription, Field: "description", Row: EntryRow, Message: "description is required"})
	}

	usable := 0
	lines := make([]domain.LineItem, 0, len(input.Lines))
	for i, row := range input.Lines {
		if row.isBlank() {
			continue
		}
		accountID := strings.TrimSpace(row.AccountID)
		hasAccount := accountID != ""
		hasAmount := !row.Debit.IsZero() || !row.Credit.IsZero()

		errs = append(errs, checkAmount(i, "debit", row.Debit)...)
		errs = append(errs, checkAmount(i, "credit", row.Credit)...)

		if row.Debit.IsPositive() && row.Credit.IsPositive() {
			errs = append(errs, FieldError{Kind: BothDebitAndCredit, Field: "lineItems", Row: i,
				Message: fmt.Sprintf("line %d has both a debit and a credit", i+1)})
		}
		if hasAccount && !hasAmount {
			errs = append(errs, FieldError{Kind: MissingAmount, Field: "amount", Row: i,
				Message: fmt.Sprintf("line %d needs a debit or credit amount", i+1)})
		}
		if !hasAccount && hasAmount {
			errs = append(errs, FieldError{Kind: MissingAccount, Field: "accountID", Row: i,
				Message: fmt.Sprintf("line %d has an amount but no account", i+1)})
		}

		var acc domain.Account
		if hasAccount {
			var found bool
			acc, found = accounts[accountID]
			switch {
			case !found:
				errs = append(errs, FieldError{Kind: UnknownAccount, Field: "accountID", Row: i,
					Message: fmt.Sprintf("line %d references unknown account %s", i+1, accountID)})
			case !acc.IsActive:
				errs = append(errs, FieldError{Kind: InactiveAccount, Field: "accountID", Row: i, AccountName: acc.Name,
					Message: fmt.Sprintf("account %s is inactive", acc.Name)})
			}
		}

		if hasAccount && hasAmount {
			usable++
		}
		lines = append(lines, domain.LineItem{
			AccountID:     accountID,
			AccountNumber: acc.AccountNumber,
			AccountName:   acc.Name,
			Debit:         row.Debit,
			Credit:        row.Credit,
			Description:   strings.TrimSpace(row.Description),
		})
	}

	if usable < 2 {
		errs = append(errs, FieldError{Kind: InsufficientLines, Field: "lineItems", Row: EntryRow,
			Message: "an entry needs at least two lines with an account and an amount"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].IsDebit() && !lines[j].IsDebit()
	})
	return lines, nil
}

func checkAmount(row int, field string, amount decimal.Decimal) []FieldError {
	switch {
	case amount.IsNegative():
		return []FieldError{{Kind: InvalidAmount, Field: field, Row: row,
			Message: fmt.Sprintf("line %d %s cannot be negative", row+1, field)}}
	case amount.IsPositive() && amount.LessThan(MinimumAmount):
		return []FieldError{{Kind: InvalidAmount, Field: field, Row: row,
			Message: fmt.Sprintf("line %d %s is below %s", row+1, field, MinimumAmount.StringFixed(CurrencyPlaces))}}
	case !amount.Equal(amount.Truncate(CurrencyPlaces)):
		return []FieldError{{Kind: InvalidAmount, Field: field, Row: row,
			Message: fmt.Sprintf("line %d %s has more than %d decimal places", row+1, field, CurrencyPlaces)}}
	}
	return nil
}

// CheckBalance enforces debits == credits for accepted line items and returns
// the entry's canonical total (the debit column). Amounts are exact decimals with
// at most CurrencyPlaces places, so any nonzero difference is a real imbalance.
func CheckBalance(lines []domain.LineItem) (decimal.Decimal, error) {
	totalDebits, totalCredits := SumColumns(lines)
	var errs ValidationErrors

	difference := totalDebits.Sub(totalCredits)
	if !difference.IsZero() {
		d := difference
		errs = append(errs, FieldError{Kind: Unbalanced, Field: "lineItems", Row: EntryRow, Difference: &d,
			Message: fmt.Sprintf("debits %s and credits %s differ by %s",
				totalDebits.StringFixed(CurrencyPlaces), totalCredits.StringFixed(CurrencyPlaces), d.StringFixed(CurrencyPlaces))})
	}
	if totalDebits.IsZero() {
		errs = append(errs, FieldError{Kind: ZeroTotal, Field: "lineItems", Row: EntryRow,
			Message: "entry total cannot be zero"})
	}

	if len(errs) > 0 {
		return decimal.Zero, errs
	}
	return totalDebits, nil
}

// ValidateEntry runs the line-item validator and then, only if it passed, the balance checker.
func ValidateEntry(input EntryInput, accounts map[string]domain.Account) ([]domain.LineItem, decimal.Decimal, error) {
	lines, err := ValidateLineItems(input, accounts)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total, err := CheckBalance(lines)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return lines, total, nil
}

// AccountIDs returns the distinct non-blank account ids referenced by an input, in first-seen order.
func AccountIDs(input EntryInput) []string {
	seen := make(map[string]struct{}, len(input.Lines))
	ids := make([]string, 0, len(input.Lines))
	for _, row := range input.Lines {
		id := strings.TrimSpace(row.AccountID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
