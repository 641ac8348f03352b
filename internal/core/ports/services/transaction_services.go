package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionReaderSvc defines read and aggregation operations over a user's transactions
type TransactionReaderSvc interface {
	// ListTransactions returns the user's transactions and their summary, optionally scoped to a month.
	ListTransactions(ctx context.Context, userID string, month *domain.Month) (*domain.TransactionList, error)

	// GetBreakdown groups the user's transactions into period buckets.
	GetBreakdown(ctx context.Context, userID string, period domain.Period) ([]domain.PeriodTotals, error)

	// SimulateExpense applies a hypothetical expense to the user's unscoped balance.
	SimulateExpense(ctx context.Context, userID string, newExpense decimal.Decimal) (*domain.Simulation, error)
}

// TransactionWriterSvc defines mutations of transactions owned by the requesting user
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// CurrencyConversionSvc converts stored transactions through the THB pivot
type CurrencyConversionSvc interface {
	ConvertTransaction(ctx context.Context, userID string, req dto.ConvertCurrencyRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	CurrencyConversionSvc
}
