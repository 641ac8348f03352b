package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountScale matches the NUMERIC(20, 4) amount columns in the schema.
const amountScale = 4

var hundred = decimal.NewFromInt(100)

// FilterByMonth returns the transactions dated within month. A nil month keeps every row.
func FilterByMonth(transactions []domain.Transaction, month *domain.Month) []domain.Transaction {
	if month == nil {
		return transactions
	}
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if month.Contains(txn.Date) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// Summarize totals amounts per transaction type, optionally scoped to a month.
// Rows of an unknown type are ignored.
func Summarize(transactions []domain.Transaction, month *domain.Month) domain.Summary {
	s := domain.Summary{
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		Investor: decimal.Zero,
	}
	for _, txn := range FilterByMonth(transactions, month) {
		switch txn.Type {
		case domain.Income:
			s.Income = s.Income.Add(txn.Amount)
		case domain.Expense:
			s.Expense = s.Expense.Add(txn.Amount)
		case domain.Investor:
			s.Investor = s.Investor.Add(txn.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense).Sub(s.Investor)
	return s
}

// InvestorTotal is the cumulative investor amount over all transactions.
func InvestorTotal(transactions []domain.Transaction) decimal.Decimal {
	return Summarize(transactions, nil).Investor
}

// Simulate applies a hypothetical expense to an unscoped summary.
// The alert fires when the balance would go negative or total expense would exceed income.
func Simulate(summary domain.Summary, newExpense decimal.Decimal) domain.Simulation {
	simulated := summary.Balance.Sub(newExpense)
	overspent := summary.Expense.Add(newExpense).GreaterThan(summary.Income)
	return domain.Simulation{
		CurrentBalance:   summary.Balance,
		SimulatedBalance: simulated,
		Alert:            simulated.IsNegative() || overspent,
	}
}

// PeriodKey renders the bucket key of t for period.
func PeriodKey(t time.Time, period domain.Period) (string, error) {
	switch period {
	case domain.PeriodDay:
		return t.Format("2006-01-02"), nil
	case domain.PeriodMonth:
		return t.Format("2006-01"), nil
	case domain.PeriodQuarter:
		return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1), nil
	case domain.PeriodYear:
		return t.Format("2006"), nil
	default:
		return "", fmt.Errorf("unknown period %q: %w", period, apperrors.ErrValidation)
	}
}

// Breakdown groups transactions into period buckets, oldest first.
func Breakdown(transactions []domain.Transaction, period domain.Period) ([]domain.PeriodTotals, error) {
	buckets := make(map[string]*domain.PeriodTotals)
	for _, txn := range transactions {
		key, err := PeriodKey(txn.Date, period)
		if err != nil {
			return nil, err
		}
		b, ok := buckets[key]
		if !ok {
			b = &domain.PeriodTotals{Period: key, Income: decimal.Zero, Expense: decimal.Zero, Investor: decimal.Zero}
			buckets[key] = b
		}
		switch txn.Type {
		case domain.Income:
			b.Income = b.Income.Add(txn.Amount)
		case domain.Expense:
			b.Expense = b.Expense.Add(txn.Amount)
		case domain.Investor:
			b.Investor = b.Investor.Add(txn.Amount)
		}
	}

	// Keys are zero-padded so lexical order is chronological.
	result := make([]domain.PeriodTotals, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Period < result[j].Period })
	return result, nil
}

// MonthlyContribution is the amount to set aside each month to reach target.
func MonthlyContribution(target decimal.Decimal, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, fmt.Errorf("months must be positive, got %d: %w", months, apperrors.ErrValidation)
	}
	return target.Div(decimal.NewFromInt(int64(months))), nil
}

// GoalProgress is investorTotal as a percentage of target, clamped to [0, 100].
// A non-positive target yields 0.
func GoalProgress(investorTotal, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	pct := investorTotal.Div(target).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}

// ConvertAmount converts amount between two currencies given their THB rates.
func ConvertAmount(amount, fromRate, toRate decimal.Decimal) (decimal.Decimal, error) {
	if !fromRate.IsPositive() || !toRate.IsPositive() {
		return decimal.Zero, apperrors.ErrUnsupportedCurrency
	}
	return amount.Mul(fromRate).Div(toRate).Round(amountScale), nil
}
