package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(typ domain.TransactionType, amount int64, date string) domain.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.Transaction{Type: typ, Amount: decimal.NewFromInt(amount), Date: d}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	march, err := domain.ParseMonth("2024-03")
	require.NoError(t, err)

	txns := []domain.Transaction{
		txn(domain.Income, 5000, "2024-03-01"),
		txn(domain.Expense, 2000, "2024-03-05"),
		txn(domain.Investor, 1000, "2024-03-10"),
		txn(domain.Income, 700, "2024-04-02"),
	}

	tests := []struct {
		name   string
		txns   []domain.Transaction
		month  *domain.Month
		expect domain.Summary
	}{
		{
			name:   "empty set",
			txns:   nil,
			expect: domain.Summary{Income: dec("0"), Expense: dec("0"), Investor: dec("0"), Balance: dec("0")},
		},
		{
			name:   "all rows",
			txns:   txns,
			expect: domain.Summary{Income: dec("5700"), Expense: dec("2000"), Investor: dec("1000"), Balance: dec("2700")},
		},
		{
			name:   "month scoped",
			txns:   txns,
			month:  march,
			expect: domain.Summary{Income: dec("5000"), Expense: dec("2000"), Investor: dec("1000"), Balance: dec("2000")},
		},
		{
			name:   "negative withdrawal reduces investor",
			txns:   []domain.Transaction{txn(domain.Investor, 3000, "2024-01-01"), txn(domain.Investor, -1000, "2024-02-01")},
			expect: domain.Summary{Income: dec("0"), Expense: dec("0"), Investor: dec("2000"), Balance: dec("-2000")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.Summarize(tt.txns, tt.month)
			assert.True(t, tt.expect.Income.Equal(got.Income), "income: %s", got.Income)
			assert.True(t, tt.expect.Expense.Equal(got.Expense), "expense: %s", got.Expense)
			assert.True(t, tt.expect.Investor.Equal(got.Investor), "investor: %s", got.Investor)
			assert.True(t, tt.expect.Balance.Equal(got.Balance), "balance: %s", got.Balance)
			assert.True(t, got.Balance.Equal(got.Income.Sub(got.Expense).Sub(got.Investor)))
		})
	}
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name          string
		summary       domain.Summary
		newExpense    decimal.Decimal
		wantSimulated string
		wantAlert     bool
	}{
		{
			name:          "affordable",
			summary:       domain.Summary{Income: dec("5000"), Expense: dec("2000"), Investor: dec("1000"), Balance: dec("2000")},
			newExpense:    dec("500"),
			wantSimulated: "1500",
			wantAlert:     false,
		},
		{
			name:          "goes negative",
			summary:       domain.Summary{Income: dec("5000"), Expense: dec("2000"), Investor: dec("1000"), Balance: dec("2000")},
			newExpense:    dec("2500"),
			wantSimulated: "-500",
			wantAlert:     true,
		},
		{
			name:          "expense exceeds income with positive balance",
			summary:       domain.Summary{Income: dec("100"), Expense: dec("90"), Investor: dec("-1000"), Balance: dec("1010")},
			newExpense:    dec("20"),
			wantSimulated: "990",
			wantAlert:     true,
		},
		{
			name:          "zero expense on empty summary",
			summary:       domain.Summary{Income: dec("0"), Expense: dec("0"), Investor: dec("0"), Balance: dec("0")},
			newExpense:    decimal.Zero,
			wantSimulated: "0",
			wantAlert:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.Simulate(tt.summary, tt.newExpense)
			assert.True(t, tt.summary.Balance.Equal(got.CurrentBalance))
			assert.True(t, dec(tt.wantSimulated).Equal(got.SimulatedBalance), "simulated: %s", got.SimulatedBalance)
			assert.Equal(t, tt.wantAlert, got.Alert)
		})
	}
}

func TestBreakdown(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Expense, 30, "2024-05-20"),
		txn(domain.Income, 100, "2024-01-15"),
		txn(domain.Income, 50, "2024-02-01"),
		txn(domain.Investor, 10, "2023-12-31"),
	}

	byQuarter, err := accounting.Breakdown(txns, domain.PeriodQuarter)
	require.NoError(t, err)
	require.Len(t, byQuarter, 3)
	assert.Equal(t, "2023-Q4", byQuarter[0].Period)
	assert.Equal(t, "2024-Q1", byQuarter[1].Period)
	assert.True(t, dec("150").Equal(byQuarter[1].Income))
	assert.Equal(t, "2024-Q2", byQuarter[2].Period)
	assert.True(t, dec("30").Equal(byQuarter[2].Expense))

	byYear, err := accounting.Breakdown(txns, domain.PeriodYear)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023", "2024"}, []string{byYear[0].Period, byYear[1].Period})

	byDay, err := accounting.Breakdown(txns, domain.PeriodDay)
	require.NoError(t, err)
	assert.Len(t, byDay, 4)
	assert.Equal(t, "2023-12-31", byDay[0].Period)

	_, err = accounting.Breakdown(txns, domain.Period("week"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMonthlyContribution(t *testing.T) {
	got, err := accounting.MonthlyContribution(dec("12000"), 12)
	require.NoError(t, err)
	assert.True(t, dec("1000").Equal(got))

	_, err = accounting.MonthlyContribution(dec("12000"), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = accounting.MonthlyContribution(dec("12000"), -3)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGoalProgress(t *testing.T) {
	target := dec("12000")

	assert.True(t, dec("25").Equal(accounting.GoalProgress(dec("3000"), target)))
	assert.True(t, dec("100").Equal(accounting.GoalProgress(dec("50000"), target)), "clamped at 100")
	assert.True(t, decimal.Zero.Equal(accounting.GoalProgress(dec("-500"), target)), "clamped at 0")
	assert.True(t, decimal.Zero.Equal(accounting.GoalProgress(dec("500"), decimal.Zero)), "zero target")

	prev := decimal.Zero
	for _, inv := range []string{"0", "100", "2500", "11999", "12000", "15000"} {
		p := accounting.GoalProgress(dec(inv), target)
		assert.True(t, p.GreaterThanOrEqual(prev), "progress should not decrease at investor=%s", inv)
		prev = p
	}
}

func TestConvertAmount(t *testing.T) {
	thb := dec("1")
	usd := dec("33.5")

	got, err := accounting.ConvertAmount(dec("100"), usd, thb)
	require.NoError(t, err)
	assert.True(t, dec("3350").Equal(got))

	got, err = accounting.ConvertAmount(dec("3350"), thb, usd)
	require.NoError(t, err)
	assert.True(t, dec("100").Equal(got))

	same, err := accounting.ConvertAmount(dec("42.1234"), usd, usd)
	require.NoError(t, err)
	assert.True(t, dec("42.1234").Equal(same))

	_, err = accounting.ConvertAmount(dec("1"), decimal.Zero, thb)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
}

func TestConvertAmount_FitsAmountColumnScale(t *testing.T) {
	got, err := accounting.ConvertAmount(dec("1"), dec("1"), dec("33.5"))
	require.NoError(t, err)
	assert.True(t, dec("0.0299").Equal(got), got.String())
	assert.GreaterOrEqual(t, got.Exponent(), int32(-4))
}
