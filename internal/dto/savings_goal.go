package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSavingsGoalRequest defines the structure for creating a savings goal.
type CreateSavingsGoalRequest struct {
	UserID      string           `json:"user_id"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string"`
	Months      int              `json:"months" binding:"required"`
	Description string           `json:"description" binding:"max=500"`
}

// UpdateSavingsGoalRequest overwrites amount, months and description.
type UpdateSavingsGoalRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string"`
	Months      int              `json:"months" binding:"required"`
	Description string           `json:"description" binding:"max=500"`
}

// CompleteSavingsGoalRequest is the optional body of the complete endpoint.
type CompleteSavingsGoalRequest struct {
	UserID string `json:"user_id"`
}

// SavingsGoalResponse includes the derived monthly contribution and progress percentage.
type SavingsGoalResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	Amount              decimal.Decimal `json:"amount" swaggertype:"string"`
	Months              int             `json:"months"`
	Description         string          `json:"description"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" swaggertype:"string"`
	Progress            decimal.Decimal `json:"progress" swaggertype:"string"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ToSavingsGoalResponse converts a domain.SavingsGoalStatus to its response DTO.
func ToSavingsGoalResponse(g domain.SavingsGoalStatus) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:                  g.GoalID,
		UserID:              g.UserID,
		Amount:              g.TargetAmount,
		Months:              g.Months,
		Description:         g.Description,
		MonthlyContribution: g.MonthlyContribution.Round(2),
		Progress:            g.Progress.Round(2),
		CreatedAt:           g.CreatedAt,
	}
}

// ToSavingsGoalListResponse converts a slice of goal statuses.
func ToSavingsGoalListResponse(goals []domain.SavingsGoalStatus) []SavingsGoalResponse {
	out := make([]SavingsGoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToSavingsGoalResponse(g)
	}
	return out
}
