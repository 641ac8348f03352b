package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the structure for recording a transaction.
// UserID is optional and, when sent, must match the authenticated user.
type CreateTransactionRequest struct {
	UserID      string                 `json:"user_id"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense investor"`
	Category    string                 `json:"category" binding:"required,max=100"`
	Amount      *decimal.Decimal       `json:"amount" binding:"required" swaggertype:"string"`
	Currency    string                 `json:"currency" binding:"required,currencycode"`
	Description string                 `json:"description" binding:"max=500"`
	Date        *Date                  `json:"date" binding:"required" swaggertype:"string" format:"date"`
}

// UpdateTransactionRequest overwrites the mutable fields of a transaction.
type UpdateTransactionRequest struct {
	Category    string           `json:"category" binding:"required,max=100"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string"`
	Currency    string           `json:"currency" binding:"required,currencycode"`
	Description string           `json:"description" binding:"max=500"`
	Date        *Date            `json:"date" binding:"required" swaggertype:"string" format:"date"`
}

// ListTransactionsParams are the query parameters of the list endpoint.
type ListTransactionsParams struct {
	UserID string `form:"userId"`
	Month  string `form:"month"`
}

// BreakdownParams are the query parameters of the breakdown endpoint.
type BreakdownParams struct {
	UserID string `form:"userId"`
	Period string `form:"period,default=month" binding:"oneof=day month quarter year"`
}

// ConvertCurrencyRequest converts a stored transaction into another currency.
type ConvertCurrencyRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	NewCurrency   string `json:"newCurrency" binding:"required,currencycode"`
}

// SimulateRequest asks how a hypothetical expense would affect the balance.
type SimulateRequest struct {
	UserID     string         `json:"user_id"`
	NewExpense FlexibleAmount `json:"newExpense" swaggertype:"number"`
}

// TransactionResponse defines the structure for API responses containing transaction details.
type TransactionResponse struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	Type             domain.TransactionType `json:"type"`
	Category         string                 `json:"category"`
	Amount           decimal.Decimal        `json:"amount" swaggertype:"string"`
	Currency         string                 `json:"currency"`
	Description      string                 `json:"description"`
	Date             Date                   `json:"date" swaggertype:"string" format:"date"`
	OriginalAmount   *decimal.Decimal       `json:"original_amount,omitempty" swaggertype:"string"`
	OriginalCurrency *string                `json:"original_currency,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// SummaryResponse is the per-type aggregate of a transaction list.
type SummaryResponse struct {
	Income   decimal.Decimal `json:"income" swaggertype:"string"`
	Expense  decimal.Decimal `json:"expense" swaggertype:"string"`
	Investor decimal.Decimal `json:"investor" swaggertype:"string"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"string"`
}

// ListTransactionsResponse wraps transactions and their summary.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
}

// SimulateResponse is the outcome of a simulated expense.
type SimulateResponse struct {
	CurrentBalance   decimal.Decimal `json:"currentBalance" swaggertype:"string"`
	SimulatedBalance decimal.Decimal `json:"simulatedBalance" swaggertype:"string"`
	Alert            bool            `json:"alert"`
}

// PeriodTotalsResponse is one bucket of a breakdown.
type PeriodTotalsResponse struct {
	Period   string          `json:"period"`
	Income   decimal.Decimal `json:"income" swaggertype:"string"`
	Expense  decimal.Decimal `json:"expense" swaggertype:"string"`
	Investor decimal.Decimal `json:"investor" swaggertype:"string"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.TransactionID,
		UserID:           t.UserID,
		Type:             t.Type,
		Category:         t.Category,
		Amount:           t.Amount,
		Currency:         t.CurrencyCode,
		Description:      t.Description,
		Date:             Date{Time: t.Date},
		OriginalAmount:   t.OriginalAmount,
		OriginalCurrency: t.OriginalCurrency,
		CreatedAt:        t.CreatedAt,
	}
}

// ToSummaryResponse converts a domain.Summary to its response DTO.
func ToSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		Income:   s.Income,
		Expense:  s.Expense,
		Investor: s.Investor,
		Balance:  s.Balance,
	}
}

// ToListTransactionsResponse converts a domain.TransactionList to its response DTO.
func ToListTransactionsResponse(list *domain.TransactionList) ListTransactionsResponse {
	txns := make([]TransactionResponse, len(list.Transactions))
	for i := range list.Transactions {
		txns[i] = ToTransactionResponse(&list.Transactions[i])
	}
	return ListTransactionsResponse{
		Transactions: txns,
		Summary:      ToSummaryResponse(list.Summary),
	}
}

// ToSimulateResponse converts a domain.Simulation to its response DTO.
func ToSimulateResponse(s *domain.Simulation) SimulateResponse {
	return SimulateResponse{
		CurrentBalance:   s.CurrentBalance,
		SimulatedBalance: s.SimulatedBalance,
		Alert:            s.Alert,
	}
}

// ToPeriodTotalsResponse converts breakdown buckets to response DTOs.
func ToPeriodTotalsResponse(totals []domain.PeriodTotals) []PeriodTotalsResponse {
	out := make([]PeriodTotalsResponse, len(totals))
	for i, t := range totals {
		out[i] = PeriodTotalsResponse{
			Period:   t.Period,
			Income:   t.Income,
			Expense:  t.Expense,
			Investor: t.Investor,
		}
	}
	return out
}
