package services

import (
	"context"
	"fmt"
	"log/slog"
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

type savingsGoalService struct {
	BaseService
	goalRepo portsrepo.SavingsGoalRepositoryFacade
	txnRepo  portsrepo.TransactionRepositoryFacade
	metrics  *metrics.Metrics
	now      func() time.Time
}

// SavingsGoalServiceOption is a functional option for configuring the savings goal service
type SavingsGoalServiceOption func(*savingsGoalService)

// WithSavingsGoalMetrics counts completed goals on m
func WithSavingsGoalMetrics(m *metrics.Metrics) SavingsGoalServiceOption {
	return func(s *savingsGoalService) {
		s.metrics = m
	}
}

// WithSavingsGoalClock overrides the clock used to date withdrawals
func WithSavingsGoalClock(now func() time.Time) SavingsGoalServiceOption {
	return func(s *savingsGoalService) {
		s.now = now
	}
}

// NewSavingsGoalService creates a new savings goal service
func NewSavingsGoalService(goalRepo portsrepo.SavingsGoalRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, options ...SavingsGoalServiceOption) portssvc.SavingsGoalSvcFacade {
	svc := &savingsGoalService{
		goalRepo: goalRepo,
		txnRepo:  txnRepo,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SavingsGoalSvcFacade = (*savingsGoalService)(nil)

func validateGoalInput(amount *decimal.Decimal, months int) error {
	if amount == nil || !amount.IsPositive() {
		return apperrors.NewValidationError("amount must be positive")
	}
	if months <= 0 {
		return apperrors.NewValidationError("months must be positive")
	}
	return nil
}

func (s *savingsGoalService) CreateSavingsGoal(ctx context.Context, userID string, req dto.CreateSavingsGoalRequest) (*domain.SavingsGoal, error) {
	if err := validateGoalInput(req.Amount, req.Months); err != nil {
		return nil, err
	}

	goal := domain.SavingsGoal{
		GoalID:       uuid.NewString(),
		UserID:       userID,
		TargetAmount: *req.Amount,
		Months:       req.Months,
		Description:  req.Description,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}

	if err := s.goalRepo.SaveSavingsGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save savings goal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create savings goal in service: %w", err)
	}

	s.LogInfo(ctx, "Savings goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

// ListSavingsGoals computes every goal's progress against the user's cumulative investor total.
// All goals share that numerator.
func (s *savingsGoalService) ListSavingsGoals(ctx context.Context, userID string) ([]domain.SavingsGoalStatus, error) {
	goals, err := s.goalRepo.FindSavingsGoalsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings goals", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list savings goals in service: %w", err)
	}
	if len(goals) == 0 {
		return []domain.SavingsGoalStatus{}, nil
	}

	txns, err := s.txnRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for goal progress", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions for goal progress: %w", err)
	}
	investor := accounting.InvestorTotal(txns)

	statuses := make([]domain.SavingsGoalStatus, len(goals))
	for i, g := range goals {
		monthly, err := accounting.MonthlyContribution(g.TargetAmount, g.Months)
		if err != nil {
			// Rows written before validation existed may carry months <= 0.
			s.LogWarn(ctx, "Savings goal has invalid months", slog.String("goal_id", g.GoalID), slog.Int("months", g.Months))
			monthly = decimal.Zero
		}
		statuses[i] = domain.SavingsGoalStatus{
			SavingsGoal:         g,
			MonthlyContribution: monthly,
			Progress:            accounting.GoalProgress(investor, g.TargetAmount),
		}
	}
	return statuses, nil
}

func (s *savingsGoalService) loadOwnedGoal(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	goal, err := s.goalRepo.FindSavingsGoalByID(ctx, goalID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load savings goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to load savings goal %s: %w", goalID, err)
	}
	if err := s.AuthorizeOwner(ctx, goal.UserID, userID, "savings goal"); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *savingsGoalService) UpdateSavingsGoal(ctx context.Context, userID string, goalID string, req dto.UpdateSavingsGoalRequest) (*domain.SavingsGoal, error) {
	if err := validateGoalInput(req.Amount, req.Months); err != nil {
		return nil, err
	}

	goal, err := s.loadOwnedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.TargetAmount = *req.Amount
	goal.Months = req.Months
	goal.Description = req.Description
	goal.Touch(userID, s.now())

	if err := s.goalRepo.UpdateSavingsGoal(ctx, *goal); err != nil {
		s.logFailure(ctx, err, "Failed to update savings goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update savings goal in service: %w", err)
	}

	s.LogInfo(ctx, "Savings goal updated", slog.String("goal_id", goalID))
	return goal, nil
}

func (s *savingsGoalService) DeleteSavingsGoal(ctx context.Context, userID string, goalID string) error {
	if _, err := s.loadOwnedGoal(ctx, userID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.DeleteSavingsGoal(ctx, goalID); err != nil {
		s.logFailure(ctx, err, "Failed to delete savings goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete savings goal in service: %w", err)
	}

	s.LogInfo(ctx, "Savings goal deleted", slog.String("goal_id", goalID))
	return nil
}

// CompleteSavingsGoal inserts a THB investor withdrawal of -goal.amount and deletes the goal
// in one database transaction. The goal row is locked so concurrent completions serialize;
// the second caller sees ErrNotFound.
func (s *savingsGoalService) CompleteSavingsGoal(ctx context.Context, userID string, goalID string) (*domain.Transaction, error) {
	tx, err := s.goalRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin goal completion")
		return nil, fmt.Errorf("failed to begin goal completion: %w", err)
	}
	defer s.rollback(ctx, s.goalRepo, tx)

	goal, err := s.goalRepo.FindSavingsGoalForUpdate(ctx, tx, goalID, userID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to lock savings goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to load savings goal %s: %w", goalID, err)
	}

	now := s.now()
	withdrawal := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.Investor,
		Category:      domain.WithdrawalCategory,
		Amount:        goal.TargetAmount.Neg(),
		CurrencyCode:  domain.PivotCurrency,
		Description:   goal.WithdrawalDescription(),
		Date:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	if err := s.txnRepo.SaveTransactionInTx(ctx, tx, withdrawal); err != nil {
		s.LogError(ctx, err, "Failed to record goal withdrawal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}
	if err := s.goalRepo.DeleteSavingsGoalInTx(ctx, tx, goalID); err != nil {
		s.logFailure(ctx, err, "Failed to delete completed goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to delete completed goal: %w", err)
	}
	if err := s.goalRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit goal completion", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to commit goal completion: %w", err)
	}

	s.metrics.IncGoalsCompleted()
	s.LogInfo(ctx, "Savings goal completed",
		slog.String("goal_id", goalID),
		slog.String("withdrawal_id", withdrawal.TransactionID),
		slog.String("amount", withdrawal.Amount.String()))
	return &withdrawal, nil
}
