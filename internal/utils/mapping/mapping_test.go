package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_OriginalValues(t *testing.T) {
	plain := domain.Transaction{
		TransactionID: "t1",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(100),
		CurrencyCode:  "USD",
		Date:          time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	m := mapping.ToModelTransaction(plain)
	assert.False(t, m.OriginalAmount.Valid)
	assert.False(t, m.OriginalCurrency.Valid)
	assert.Equal(t, "expense", m.Type)

	back := mapping.ToDomainTransaction(m)
	assert.False(t, back.IsConverted())
	assert.Equal(t, plain.Date, back.Date)

	converted := plain
	converted.ApplyConversion(decimal.NewFromInt(3350), "THB")
	back = mapping.ToDomainTransaction(mapping.ToModelTransaction(converted))
	require.True(t, back.IsConverted())
	assert.True(t, back.OriginalAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "USD", *back.OriginalCurrency)
}

func TestUserMapping_EmailAndRole(t *testing.T) {
	m := mapping.ToModelUser(domain.User{UserID: "u1", Username: "alice"})
	assert.False(t, m.Email.Valid)
	assert.Equal(t, "user", m.Role)

	d := mapping.ToDomainUser(m)
	assert.Equal(t, "", d.Email)
	assert.Equal(t, domain.RoleUser, d.Role)
}
