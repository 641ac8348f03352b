package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SavingsGoalReader defines read operations for savings goals
type SavingsGoalReader interface {
	// FindSavingsGoalByID retrieves a goal by its ID regardless of owner.
	FindSavingsGoalByID(ctx context.Context, goalID string) (*domain.SavingsGoal, error)

	// FindSavingsGoalsByUser retrieves all goals of a user.
	FindSavingsGoalsByUser(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// SavingsGoalWriter defines write operations for savings goals
type SavingsGoalWriter interface {
	SaveSavingsGoal(ctx context.Context, goal domain.SavingsGoal) error
	UpdateSavingsGoal(ctx context.Context, goal domain.SavingsGoal) error
	DeleteSavingsGoal(ctx context.Context, goalID string) error
}

// SavingsGoalTxOps defines operations used while completing a goal
type SavingsGoalTxOps interface {
	// FindSavingsGoalForUpdate row-locks the goal identified by goalID and owned by userID.
	FindSavingsGoalForUpdate(ctx context.Context, tx pgx.Tx, goalID, userID string) (*domain.SavingsGoal, error)

	// DeleteSavingsGoalInTx removes the goal within tx.
	DeleteSavingsGoalInTx(ctx context.Context, tx pgx.Tx, goalID string) error
}

// SavingsGoalRepositoryFacade combines all savings goal repository interfaces
type SavingsGoalRepositoryFacade interface {
	SavingsGoalReader
	SavingsGoalWriter
	SavingsGoalTxOps
	TransactionManager
}
