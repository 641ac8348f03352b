package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// errEmptyRateTable means the seed migration has not been applied.
var errEmptyRateTable = errors.New("exchange rate table is empty")

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepositoryFacade
	rateRepo portsrepo.ExchangeRateReader
	metrics  *metrics.Metrics
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionMetrics records conversions on m
func WithTransactionMetrics(m *metrics.Metrics) TransactionServiceOption {
	return func(s *transactionService) {
		s.metrics = m
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, rateRepo portsrepo.ExchangeRateReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:  txnRepo,
		rateRepo: rateRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, userID string, month *domain.Month) (*domain.TransactionList, error) {
	txns, err := s.txnRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}

	scoped := accounting.FilterByMonth(txns, month)
	if scoped == nil {
		scoped = []domain.Transaction{}
	}
	return &domain.TransactionList{
		Transactions: scoped,
		Summary:      accounting.Summarize(txns, month),
	}, nil
}

func (s *transactionService) GetBreakdown(ctx context.Context, userID string, period domain.Period) ([]domain.PeriodTotals, error) {
	if !period.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("period must be one of day, month, quarter, year; got %q", period))
	}

	txns, err := s.txnRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for breakdown", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions for breakdown: %w", err)
	}
	return accounting.Breakdown(txns, period)
}

func (s *transactionService) SimulateExpense(ctx context.Context, userID string, newExpense decimal.Decimal) (*domain.Simulation, error) {
	txns, err := s.txnRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for simulation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions for simulation: %w", err)
	}

	sim := accounting.Simulate(accounting.Summarize(txns, nil), newExpense)
	s.LogDebug(ctx, "Expense simulated",
		slog.String("new_expense", newExpense.String()),
		slog.Bool("alert", sim.Alert))
	return &sim, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid transaction type %q", req.Type))
	}
	if req.Amount == nil || req.Date == nil {
		return nil, apperrors.NewValidationError("amount and date are required")
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          req.Type,
		Category:      strings.TrimSpace(req.Category),
		Amount:        *req.Amount,
		CurrencyCode:  strings.ToUpper(req.Currency),
		Description:   req.Description,
		Date:          req.Date.Time,
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// loadOwnedTransaction fetches a transaction and checks that userID owns it.
func (s *transactionService) loadOwnedTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	if err := s.AuthorizeOwner(ctx, txn.UserID, userID, "transaction"); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount == nil || req.Date == nil {
		return nil, apperrors.NewValidationError("amount and date are required")
	}

	txn, err := s.loadOwnedTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	txn.Category = strings.TrimSpace(req.Category)
	txn.Amount = *req.Amount
	txn.CurrencyCode = strings.ToUpper(req.Currency)
	txn.Description = req.Description
	txn.Date = req.Date.Time
	txn.Touch(userID, time.Now())

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.logFailure(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if _, err := s.loadOwnedTransaction(ctx, userID, transactionID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.logFailure(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// ConvertTransaction rewrites a transaction's amount into newCurrency via the THB pivot:
// new = amount * rate(old) / rate(new). The row is locked for the duration. A missing or
// foreign transaction is reported before either currency is checked.
func (s *transactionService) ConvertTransaction(ctx context.Context, userID string, req dto.ConvertCurrencyRequest) (*domain.Transaction, error) {
	target := strings.ToUpper(strings.TrimSpace(req.NewCurrency))

	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load exchange rates")
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	if len(rates) == 0 {
		s.LogError(ctx, errEmptyRateTable, "Cannot convert without exchange rates")
		return nil, errEmptyRateTable
	}
	table := domain.NewRateTable(rates)

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin conversion transaction")
		return nil, fmt.Errorf("failed to begin conversion: %w", err)
	}
	defer s.rollback(ctx, s.txnRepo, tx)

	txn, err := s.txnRepo.FindTransactionForUpdate(ctx, tx, req.TransactionID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to lock transaction for conversion", slog.String("transaction_id", req.TransactionID))
		return nil, fmt.Errorf("failed to load transaction %s: %w", req.TransactionID, err)
	}
	if err := s.AuthorizeOwner(ctx, txn.UserID, userID, "transaction"); err != nil {
		return nil, err
	}

	from := txn.CurrencyCode
	fromRate, ok := table.Rate(from)
	if !ok {
		s.LogWarn(ctx, "Transaction stored in unsupported currency", slog.String("currency", from))
		return nil, fmt.Errorf("currency %s: %w", from, apperrors.ErrUnsupportedCurrency)
	}
	toRate, ok := table.Rate(target)
	if !ok {
		s.LogWarn(ctx, "Conversion to unsupported currency requested", slog.String("currency", target))
		return nil, fmt.Errorf("currency %s: %w", target, apperrors.ErrUnsupportedCurrency)
	}

	newAmount, err := accounting.ConvertAmount(txn.Amount, fromRate, toRate)
	if err != nil {
		return nil, err
	}
	txn.ApplyConversion(newAmount, target)
	txn.Touch(userID, time.Now())

	if err := s.txnRepo.UpdateConvertedAmountInTx(ctx, tx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to persist converted amount", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to persist conversion: %w", err)
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit conversion", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to commit conversion: %w", err)
	}

	s.metrics.IncConversion(from, target)
	s.LogInfo(ctx, "Transaction converted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("from", from),
		slog.String("to", target),
		slog.String("amount", newAmount.String()))
	return txn, nil
}
