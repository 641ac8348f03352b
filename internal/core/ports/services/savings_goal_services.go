package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// SavingsGoalReaderSvc defines read operations for savings goals
type SavingsGoalReaderSvc interface {
	// ListSavingsGoals returns the user's goals with monthly contribution and progress.
	ListSavingsGoals(ctx context.Context, userID string) ([]domain.SavingsGoalStatus, error)
}

// SavingsGoalWriterSvc defines mutations of savings goals owned by the requesting user
type SavingsGoalWriterSvc interface {
	CreateSavingsGoal(ctx context.Context, userID string, req dto.CreateSavingsGoalRequest) (*domain.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, userID string, goalID string, req dto.UpdateSavingsGoalRequest) (*domain.SavingsGoal, error)
	DeleteSavingsGoal(ctx context.Context, userID string, goalID string) error
}

// SavingsGoalLifecycleSvc defines the completion of a goal
type SavingsGoalLifecycleSvc interface {
	// CompleteSavingsGoal records a withdrawal of the goal amount and removes the goal atomically.
	CompleteSavingsGoal(ctx context.Context, userID string, goalID string) (*domain.Transaction, error)
}

// SavingsGoalSvcFacade combines all savings goal service interfaces
type SavingsGoalSvcFacade interface {
	SavingsGoalReaderSvc
	SavingsGoalWriterSvc
	SavingsGoalLifecycleSvc
}
