package models

import "github.com/shopspring/decimal"

// SavingsGoal is a row of the savings_goals table.
type SavingsGoal struct {
	GoalID      string          `db:"goal_id"`
	UserID      string          `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Months      int             `db:"months"`
	Description string          `db:"description"`
	AuditFields
}
