package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID    string              `db:"transaction_id"`
	UserID           string              `db:"user_id"`
	Type             string              `db:"type"`
	Category         string              `db:"category"`
	Amount           decimal.Decimal     `db:"amount"`
	CurrencyCode     string              `db:"currency_code"`
	Description      string              `db:"description"`
	TransactionDate  time.Time           `db:"transaction_date"`
	OriginalAmount   decimal.NullDecimal `db:"original_amount"`
	OriginalCurrency sql.NullString      `db:"original_currency"`
	AuditFields
}
