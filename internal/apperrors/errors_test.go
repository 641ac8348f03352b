package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("service layer: %w", apperrors.NewNotFoundError("savings goal"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "savings goal not found")

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestUnsupportedCurrencyIsValidation(t *testing.T) {
	err := fmt.Errorf("convert: %w", apperrors.ErrUnsupportedCurrency)

	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAppError_NilCause(t *testing.T) {
	err := apperrors.NewAppError(http.StatusInternalServerError, "boom", nil)
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, err.Unwrap())
}
