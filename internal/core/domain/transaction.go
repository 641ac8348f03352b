package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction for aggregation.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Investor TransactionType = "investor"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, Investor:
		return true
	}
	return false
}

// WithdrawalCategory is the category given to transactions generated by completing a savings goal.
const WithdrawalCategory = "withdrawal"

// Transaction is a single money movement recorded by a user.
// Amount may be negative (savings goal withdrawals).
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`

	// Pre-conversion values, set on the first currency conversion only.
	OriginalAmount   *decimal.Decimal `json:"originalAmount,omitempty"`
	OriginalCurrency *string          `json:"originalCurrency,omitempty"`
	AuditFields
}

// IsOwnedBy reports whether the transaction belongs to userID.
func (t Transaction) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}

// IsConverted returns true if the transaction has been converted from another currency.
func (t Transaction) IsConverted() bool {
	return t.OriginalAmount != nil && t.OriginalCurrency != nil
}

// ApplyConversion replaces amount and currency, keeping the first pre-conversion value.
func (t *Transaction) ApplyConversion(newAmount decimal.Decimal, newCurrency string) {
	if !t.IsConverted() {
		amt := t.Amount
		cur := t.CurrencyCode
		t.OriginalAmount = &amt
		t.OriginalCurrency = &cur
	}
	t.Amount = newAmount
	t.CurrencyCode = newCurrency
}

// TransactionList is a user's transactions together with their aggregate.
type TransactionList struct {
	Transactions []Transaction
	Summary      Summary
}
