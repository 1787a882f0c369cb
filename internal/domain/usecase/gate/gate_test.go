package gate

import (
	"context"
	"testing"
	"time"

	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
	coremocks "github.com/vidaplus/credit-ledger/mocks/port/core"
	usecasemocks "github.com/vidaplus/credit-ledger/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Sufficient balance authorizes and debits the cost", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().EffectiveBalance(mock.Anything, uint64(1), now).
			Return(&usecase.BalanceResult{AccountID: 1, Balance: 100}, nil).Once()
		mockLedger.EXPECT().Debit(mock.Anything, uint64(1), int64(30), "ai generation (30 credits)").
			Return(int64(70), nil).Once()

		gate := NewGate(mockLedger, quietLogger(t), "ai generation")

		auth, err := gate.Authorize(ctx, 1, 30, now)

		require.NoError(t, err)
		assert.True(t, auth.Authorized)
		assert.Equal(t, uint64(1), auth.AccountID)
		assert.Equal(t, int64(30), auth.Cost)
		assert.Equal(t, int64(70), auth.NewBalance)
		assert.False(t, auth.Recharged)
	})

	t.Run("Insufficient balance denies without debiting", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().EffectiveBalance(mock.Anything, uint64(1), now).
			Return(&usecase.BalanceResult{AccountID: 1, Balance: 20}, nil).Once()

		gate := NewGate(mockLedger, quietLogger(t), "ai generation")

		auth, err := gate.Authorize(ctx, 1, 30, now)

		assert.Nil(t, auth)
		assert.True(t, errs.IsInsufficientCreditsError(err))

		var insufficientErr *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, int64(30), insufficientErr.Requested)
		assert.Equal(t, int64(20), insufficientErr.Available)
	})

	t.Run("A due recharge counts toward the check", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().EffectiveBalance(mock.Anything, uint64(1), now).
			Return(&usecase.BalanceResult{AccountID: 1, Balance: 100, Recharged: true}, nil).Once()
		mockLedger.EXPECT().Debit(mock.Anything, uint64(1), int64(30), mock.Anything).
			Return(int64(70), nil).Once()

		gate := NewGate(mockLedger, quietLogger(t), "ai generation")

		auth, err := gate.Authorize(ctx, 1, 30, now)

		require.NoError(t, err)
		assert.True(t, auth.Recharged)
	})

	t.Run("Balance exactly equal to cost is authorized", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().EffectiveBalance(mock.Anything, uint64(1), now).
			Return(&usecase.BalanceResult{AccountID: 1, Balance: 30}, nil).Once()
		mockLedger.EXPECT().Debit(mock.Anything, uint64(1), int64(30), mock.Anything).
			Return(int64(0), nil).Once()

		gate := NewGate(mockLedger, quietLogger(t), "ai generation")

		auth, err := gate.Authorize(ctx, 1, 30, now)

		require.NoError(t, err)
		assert.Equal(t, int64(0), auth.NewBalance)
	})

	t.Run("A concurrent overdraw caught by the debit denies", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().EffectiveBalance(mock.Anything, uint64(1), now).
			Return(&usecase.BalanceResult{AccountID: 1, Balance: 30}, nil).Once()
		mockLedger.EXPECT().Debit(mock.Anything, uint64(1), int64(30), mock.Anything).
			Return(int64(0), errs.NewInsufficientCreditsError(1, 30, 10)).Once()

		gate := NewGate(mockLedger, quietLogger(t), "ai generation")

		auth, err := gate.Authorize(ctx, 1, 30, now)

		assert.Nil(t, auth)
		assert.True(t, errs.IsInsufficientCreditsError(err))
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		gate := NewGate(mockLedger, quietLogger(t), "ai generation")

		_, err := gate.Authorize(ctx, 0, 30, now)
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)

		_, err = gate.Authorize(ctx, 1, 0, now)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Unknown account propagates", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().EffectiveBalance(mock.Anything, uint64(9), now).
			Return(nil, errs.ErrAccountNotFound).Once()

		gate := NewGate(mockLedger, quietLogger(t), "ai generation")

		_, err := gate.Authorize(ctx, 9, 30, now)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Empty capability falls back to a generic label", func(t *testing.T) {
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().EffectiveBalance(mock.Anything, uint64(1), now).
			Return(&usecase.BalanceResult{AccountID: 1, Balance: 100}, nil).Once()
		mockLedger.EXPECT().Debit(mock.Anything, uint64(1), int64(10), "metered capability (10 credits)").
			Return(int64(90), nil).Once()

		gate := NewGate(mockLedger, quietLogger(t), "")

		_, err := gate.Authorize(ctx, 1, 10, now)

		require.NoError(t, err)
	})
}
