package mapping

import (
	"database/sql"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		Type:            string(d.Type),
		Category:        d.Category,
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		Description:     d.Description,
		TransactionDate: d.Date,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.OriginalAmount != nil {
		m.OriginalAmount = decimal.NullDecimal{Decimal: *d.OriginalAmount, Valid: true}
	}
	if d.OriginalCurrency != nil {
		m.OriginalCurrency = sql.NullString{String: *d.OriginalCurrency, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Category:      m.Category,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		Description:   m.Description,
		Date:          m.TransactionDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.OriginalAmount.Valid {
		amt := m.OriginalAmount.Decimal
		d.OriginalAmount = &amt
	}
	if m.OriginalCurrency.Valid {
		cur := m.OriginalCurrency.String
		d.OriginalCurrency = &cur
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
