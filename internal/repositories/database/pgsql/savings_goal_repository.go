package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const savingsGoalColumns = `goal_id, user_id, amount, months, description,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxSavingsGoalRepository struct {
	BaseRepository
}

func newPgxSavingsGoalRepository(pool *pgxpool.Pool) portsrepo.SavingsGoalRepositoryFacade {
	return &PgxSavingsGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SavingsGoalRepositoryFacade = (*PgxSavingsGoalRepository)(nil)

func scanSavingsGoal(row pgx.Row) (models.SavingsGoal, error) {
	var m models.SavingsGoal
	err := row.Scan(
		&m.GoalID, &m.UserID, &m.Amount, &m.Months, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSavingsGoalRepository) FindSavingsGoalByID(ctx context.Context, goalID string) (*domain.SavingsGoal, error) {
	query := `SELECT ` + savingsGoalColumns + ` FROM savings_goals WHERE goal_id = $1;`
	m, err := scanSavingsGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find savings goal %s: %w", goalID, err)
	}
	d := mapping.ToDomainSavingsGoal(m)
	return &d, nil
}

func (r *PgxSavingsGoalRepository) FindSavingsGoalsByUser(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	query := `SELECT ` + savingsGoalColumns + ` FROM savings_goals WHERE user_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	var ms []models.SavingsGoal
	for rows.Next() {
		m, err := scanSavingsGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings goal row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings goal rows: %w", err)
	}
	return mapping.ToDomainSavingsGoalSlice(ms), nil
}

func (r *PgxSavingsGoalRepository) SaveSavingsGoal(ctx context.Context, goal domain.SavingsGoal) error {
	m := mapping.ToModelSavingsGoal(goal)
	query := `INSERT INTO savings_goals (` + savingsGoalColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID, m.UserID, m.Amount, m.Months, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert savings goal: %w", err)
	}
	return nil
}

func (r *PgxSavingsGoalRepository) UpdateSavingsGoal(ctx context.Context, goal domain.SavingsGoal) error {
	m := mapping.ToModelSavingsGoal(goal)
	query := `
		UPDATE savings_goals
		SET amount = $1, months = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE goal_id = $6;`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Amount, m.Months, m.Description, m.LastUpdatedAt, m.LastUpdatedBy, m.GoalID)
	if err != nil {
		return fmt.Errorf("failed to update savings goal %s: %w", m.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSavingsGoalRepository) DeleteSavingsGoal(ctx context.Context, goalID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM savings_goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete savings goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSavingsGoalForUpdate treats a goal owned by someone else as missing.
func (r *PgxSavingsGoalRepository) FindSavingsGoalForUpdate(ctx context.Context, tx pgx.Tx, goalID, userID string) (*domain.SavingsGoal, error) {
	query := `SELECT ` + savingsGoalColumns + ` FROM savings_goals WHERE goal_id = $1 AND user_id = $2 FOR UPDATE;`
	m, err := scanSavingsGoal(tx.QueryRow(ctx, query, goalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock savings goal %s: %w", goalID, err)
	}
	d := mapping.ToDomainSavingsGoal(m)
	return &d, nil
}

func (r *PgxSavingsGoalRepository) DeleteSavingsGoalInTx(ctx context.Context, tx pgx.Tx, goalID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM savings_goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete savings goal %s in tx: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
