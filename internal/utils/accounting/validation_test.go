package accounting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/journal_engine/internal/apperrors"
	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		"cash":    {AccountID: "cash", AccountNumber: "101", Name: "Cash", Category: domain.Assets, NormalSide: domain.NormalDebit, IsActive: true},
		"revenue": {AccountID: "revenue", AccountNumber: "401", Name: "Service Revenue", Category: domain.Revenue, NormalSide: domain.NormalCredit, IsActive: true},
		"rent":    {AccountID: "rent", AccountNumber: "501", Name: "Rent Expense", Category: domain.Expenses, NormalSide: domain.NormalDebit, IsActive: true},
		"old":     {AccountID: "old", AccountNumber: "199", Name: "Old Petty Cash", Category: domain.Assets, NormalSide: domain.NormalDebit, IsActive: false},
	}
}

func validInput() accounting.EntryInput {
	return accounting.EntryInput{
		EntryDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "March consulting",
		Lines: []accounting.LineInput{
			{AccountID: "cash", Debit: dec("500.00")},
			{AccountID: "revenue", Credit: dec("500.00")},
		},
	}
}

func kinds(t *testing.T, err error) []accounting.ValidationErrorKind {
	t.Helper()
	var verrs accounting.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	out := make([]accounting.ValidationErrorKind, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, e.Kind)
	}
	return out
}

func TestValidateLineItems_Valid(t *testing.T) {
	lines, err := accounting.ValidateLineItems(validInput(), testAccounts())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "101", lines[0].AccountNumber)
	assert.Equal(t, "Cash", lines[0].AccountName)
	assert.Equal(t, "Service Revenue", lines[1].AccountName)
}

func TestValidateLineItems_SortsDebitsFirstStable(t *testing.T) {
	input := validInput()
	input.Lines = []accounting.LineInput{
		{AccountID: "revenue", Credit: dec("300")},
		{AccountID: "cash", Debit: dec("100"), Description: "first debit"},
		{AccountID: "revenue", Credit: dec("200"), Description: "second credit"},
		{AccountID: "rent", Debit: dec("400"), Description: "second debit"},
	}

	lines, err := accounting.ValidateLineItems(input, testAccounts())
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, "first debit", lines[0].Description)
	assert.Equal(t, "second debit", lines[1].Description)
	assert.True(t, lines[2].Credit.Equal(dec("300")))
	assert.Equal(t, "second credit", lines[3].Description)
}

func TestValidateLineItems_DropsBlankRows(t *testing.T) {
	input := validInput()
	input.Lines = append(input.Lines, accounting.LineInput{}, accounting.LineInput{AccountID: "   "})

	lines, err := accounting.ValidateLineItems(input, testAccounts())
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestValidateLineItems_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *accounting.EntryInput)
		want   []accounting.ValidationErrorKind
	}{
		{
			name:   "missing date",
			mutate: func(in *accounting.EntryInput) { in.EntryDate = time.Time{} },
			want:   []accounting.ValidationErrorKind{accounting.MissingDate},
		},
		{
			name:   "whitespace description",
			mutate: func(in *accounting.EntryInput) { in.Description = "  \t" },
			want:   []accounting.ValidationErrorKind{accounting.MissingDescription},
		},
		{
			name: "account without amount",
			mutate: func(in *accounting.EntryInput) {
				in.Lines = append(in.Lines, accounting.LineInput{AccountID: "rent"})
			},
			want: []accounting.ValidationErrorKind{accounting.MissingAmount},
		},
		{
			name: "amount without account",
			mutate: func(in *accounting.EntryInput) {
				in.Lines = append(in.Lines, accounting.LineInput{Debit: dec("10")})
			},
			want: []accounting.ValidationErrorKind{accounting.MissingAccount},
		},
		{
			name: "both columns",
			mutate: func(in *accounting.EntryInput) {
				in.Lines[0].Credit = dec("5")
			},
			want: []accounting.ValidationErrorKind{accounting.BothDebitAndCredit},
		},
		{
			name: "negative amount",
			mutate: func(in *accounting.EntryInput) {
				in.Lines[1].Credit = dec("-500")
			},
			want: []accounting.ValidationErrorKind{accounting.InvalidAmount},
		},
		{
			name: "below one cent",
			mutate: func(in *accounting.EntryInput) {
				in.Lines[0].Debit = dec("0.004")
			},
			want: []accounting.ValidationErrorKind{accounting.InvalidAmount},
		},
		{
			name: "sub-cent precision",
			mutate: func(in *accounting.EntryInput) {
				in.Lines[0].Debit = dec("10.005")
			},
			want: []accounting.ValidationErrorKind{accounting.InvalidAmount},
		},
		{
			name: "single usable line",
			mutate: func(in *accounting.EntryInput) {
				in.Lines = in.Lines[:1]
			},
			want: []accounting.ValidationErrorKind{accounting.InsufficientLines},
		},
		{
			name: "inactive account",
			mutate: func(in *accounting.EntryInput) {
				in.Lines[0].AccountID = "old"
			},
			want: []accounting.ValidationErrorKind{accounting.InactiveAccount},
		},
		{
			name: "unknown account",
			mutate: func(in *accounting.EntryInput) {
				in.Lines[0].AccountID = "nope"
			},
			want: []accounting.ValidationErrorKind{accounting.UnknownAccount},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			lines, err := accounting.ValidateLineItems(input, testAccounts())
			require.Error(t, err)
			assert.Nil(t, lines)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.ElementsMatch(t, tt.want, kinds(t, err))
		})
	}
}

func TestValidateLineItems_ReportsAllErrorsTogether(t *testing.T) {
	input := accounting.EntryInput{
		Lines: []accounting.LineInput{
			{AccountID: "old", Debit: dec("10"), Credit: dec("10")},
		},
	}

	_, err := accounting.ValidateLineItems(input, testAccounts())
	require.Error(t, err)
	assert.ElementsMatch(t, []accounting.ValidationErrorKind{
		accounting.MissingDate,
		accounting.MissingDescription,
		accounting.BothDebitAndCredit,
		accounting.InactiveAccount,
		accounting.InsufficientLines,
	}, kinds(t, err))
}

func TestValidateLineItems_InactiveCarriesAccountName(t *testing.T) {
	input := validInput()
	input.Lines[0].AccountID = "old"

	_, err := accounting.ValidateLineItems(input, testAccounts())
	var verrs accounting.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Old Petty Cash", verrs[0].AccountName)
	assert.Equal(t, 0, verrs[0].Row)
}

func TestValidateLineItems_Idempotent(t *testing.T) {
	input := validInput()
	first, err := accounting.ValidateLineItems(input, testAccounts())
	require.NoError(t, err)
	second, err := accounting.ValidateLineItems(input, testAccounts())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckBalance(t *testing.T) {
	line := func(debit, credit string) domain.LineItem {
		return domain.LineItem{AccountID: "x", Debit: dec(debit), Credit: dec(credit)}
	}

	t.Run("balanced", func(t *testing.T) {
		total, err := accounting.CheckBalance([]domain.LineItem{line("500", "0"), line("0", "500")})
		require.NoError(t, err)
		assert.True(t, total.Equal(dec("500")))
	})

	t.Run("one cent out is unbalanced", func(t *testing.T) {
		_, err := accounting.CheckBalance([]domain.LineItem{line("100.00", "0"), line("0", "99.99")})
		var verrs accounting.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, accounting.Unbalanced, verrs[0].Kind)
		require.NotNil(t, verrs[0].Difference)
		assert.True(t, verrs[0].Difference.Equal(dec("0.01")))
	})

	t.Run("trailing zeros balance", func(t *testing.T) {
		total, err := accounting.CheckBalance([]domain.LineItem{line("100.10", "0"), line("0", "60.1"), line("0", "40")})
		require.NoError(t, err)
		assert.True(t, total.Equal(dec("100.1")))
	})

	t.Run("unbalanced carries signed difference", func(t *testing.T) {
		_, err := accounting.CheckBalance([]domain.LineItem{line("500", "0"), line("0", "450")})
		var verrs accounting.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, accounting.Unbalanced, verrs[0].Kind)
		require.NotNil(t, verrs[0].Difference)
		assert.True(t, verrs[0].Difference.Equal(dec("50")))
	})

	t.Run("credit heavy difference is negative", func(t *testing.T) {
		_, err := accounting.CheckBalance([]domain.LineItem{line("10", "0"), line("0", "12.50")})
		var verrs accounting.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs[0].Difference.Equal(dec("-2.5")))
	})

	t.Run("zero total", func(t *testing.T) {
		_, err := accounting.CheckBalance([]domain.LineItem{line("0", "0"), line("0", "0")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, []accounting.ValidationErrorKind{accounting.ZeroTotal}, kinds(t, err))
	})
}

func TestValidateEntry_BalanceOnlyAfterLines(t *testing.T) {
	input := validInput()
	input.Description = ""
	input.Lines[1].Credit = dec("450")

	_, _, err := accounting.ValidateEntry(input, testAccounts())
	assert.Equal(t, []accounting.ValidationErrorKind{accounting.MissingDescription}, kinds(t, err))

	input.Description = "fixed"
	_, _, err = accounting.ValidateEntry(input, testAccounts())
	assert.Equal(t, []accounting.ValidationErrorKind{accounting.Unbalanced}, kinds(t, err))

	input.Lines[1].Credit = dec("500")
	lines, total, err := accounting.ValidateEntry(input, testAccounts())
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.True(t, total.Equal(dec("500")))
}

func TestAccountIDs(t *testing.T) {
	input := validInput()
	input.Lines = append(input.Lines,
		accounting.LineInput{AccountID: "cash", Debit: dec("1")},
		accounting.LineInput{},
	)
	assert.Equal(t, []string{"cash", "revenue"}, accounting.AccountIDs(input))
}
