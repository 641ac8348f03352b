package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a target amount a user wants to save over a number of months.
type SavingsGoal struct {
	GoalID       string          `json:"goalID"`
	UserID       string          `json:"userID"`
	TargetAmount decimal.Decimal `json:"amount"`
	Months       int             `json:"months"`
	Description  string          `json:"description"`
	AuditFields
}

// IsOwnedBy reports whether the goal belongs to userID.
func (g SavingsGoal) IsOwnedBy(userID string) bool {
	return g.UserID == userID
}

// WithdrawalDescription is the description of the transaction created when the goal is completed.
func (g SavingsGoal) WithdrawalDescription() string {
	return fmt.Sprintf("Withdrawal from savings goal: %s", g.Description)
}

// SavingsGoalStatus is a goal with its derived figures.
type SavingsGoalStatus struct {
	SavingsGoal
	MonthlyContribution decimal.Decimal
	// Progress is a percentage in [0, 100].
	Progress decimal.Decimal
}
