package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient credits", ErrInsufficientCredits, CodeInsufficientCredits},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"invalid account ID", ErrInvalidAccountID, CodeInvalidAccountID},
		{"duplicate payment", ErrDuplicatePayment, CodeDuplicatePayment},
		{"invalid kind", ErrInvalidKind, CodeInvalidKind},
		{"account not found", ErrAccountNotFound, CodeAccountNotFound},
		{"concurrent conflict", ErrConcurrentConflict, CodeConcurrentConflict},
		{"store unavailable", ErrStoreUnavailable, CodeStoreUnavailable},
		{"unknown error", errors.New("something else"), CodeInternalServer},
		{"wrapped insufficient credits", fmt.Errorf("debit failed: %w", ErrInsufficientCredits), CodeInsufficientCredits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError(42, 30, 20)

	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.True(t, IsInsufficientCreditsError(err))
	assert.Contains(t, err.Error(), "account 42")
	assert.Contains(t, err.Error(), "required 30")
	assert.Contains(t, err.Error(), "available 20")

	var detailed *InsufficientCreditsError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, uint64(42), detailed.AccountID)

	fields := detailed.LogFields()
	assert.Equal(t, "insufficient_credits", fields["error_type"])
	assert.Equal(t, CodeInsufficientCredits, fields["error_code"])
}

func TestLedgerError(t *testing.T) {
	underlying := ErrStoreUnavailable
	err := NewLedgerError(7, -10, "ai generation", underlying)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "account 7")

	var ledgerErr *LedgerError
	assert.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, underlying, ledgerErr.Unwrap())
	assert.Equal(t, "ledger_error", ledgerErr.LogFields()["error_type"])
}

func TestDuplicatePaymentError(t *testing.T) {
	err := NewDuplicatePaymentError("pay_abc123", 9)

	assert.ErrorIs(t, err, ErrDuplicatePayment)
	assert.True(t, IsDuplicatePaymentError(err))
	assert.Contains(t, err.Error(), "pay_abc123")

	var dup *DuplicatePaymentError
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, "pay_abc123", dup.Reference)
	assert.Equal(t, CodeDuplicatePayment, dup.LogFields()["error_code"])
}

func TestErrorClassificationHelpers(t *testing.T) {
	assert.True(t, IsAccountNotFoundError(fmt.Errorf("load: %w", ErrAccountNotFound)))
	assert.True(t, IsNotFoundError(ErrRecordNotFound))
	assert.True(t, IsConcurrentConflictError(ErrConcurrentConflict))
	assert.True(t, IsStoreUnavailableError(fmt.Errorf("query: %w", ErrStoreUnavailable)))
	assert.False(t, IsNotFoundError(ErrInsufficientCredits))
	assert.False(t, IsConcurrentConflictError(nil))
}
