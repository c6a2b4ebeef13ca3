package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsErrValidation(t *testing.T) {
	err := apperrors.NewValidationError("value", "must be greater than or equal to 10")
	wrapped := fmt.Errorf("deposit: %w", err)

	assert.True(t, errors.Is(wrapped, apperrors.ErrValidation))
	assert.False(t, errors.Is(wrapped, apperrors.ErrNotFound))

	var vErr *apperrors.ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, "must be greater than or equal to 10", vErr.Fields["value"])
}

func TestValidationError_MessageIsSortedByField(t *testing.T) {
	err := apperrors.NewValidationError("value", "is required").Add("destinationAccountId", "is required")
	assert.Equal(t, "validation error: destinationAccountId is required; value is required", err.Error())

	empty := &apperrors.ValidationError{}
	assert.Equal(t, "validation error", empty.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to commit transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to commit transaction: connection reset", err.Error())
	assert.Equal(t, "no cause", apperrors.NewAppError(500, "no cause", nil).Error())
}
