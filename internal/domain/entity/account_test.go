package entity

import (
	"testing"
	"time"

	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coremocks "github.com/vidaplus/credit-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedDay := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Today().Return(fixedDay).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount(1, 45, 100, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.ID)
		assert.Equal(t, int64(100), account.Balance())
		assert.Equal(t, 45, account.AgeYears)
		assert.Equal(t, fixedDay, account.LastRechargeAt)
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		account, err := NewAccount(0, 45, 100, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidAccountID, err)
		assert.Nil(t, account)
	})

	t.Run("Negative age should return error", func(t *testing.T) {
		account, err := NewAccount(1, -1, 100, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidAge, err)
		assert.Nil(t, account)
	})

	t.Run("Negative starting grant should return error", func(t *testing.T) {
		account, err := NewAccount(1, 45, -10, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, account)
	})

	t.Run("Zero starting grant is allowed", func(t *testing.T) {
		account, err := NewAccount(1, 45, 0, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), account.Balance())
	})
}

func TestAccountApplyDebit(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedDay := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	newAccount := func(t *testing.T, balance int64) (*Account, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTime.EXPECT().Today().Return(fixedDay).Maybe()
		account, err := NewAccount(1, 45, balance, mockTime)
		require.NoError(t, err)
		return account, mockTime
	}

	t.Run("Successful debit", func(t *testing.T) {
		account, mockTime := newAccount(t, 100)

		err := account.ApplyDebit(30, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(70), account.Balance())
	})

	t.Run("Debit down to zero", func(t *testing.T) {
		account, mockTime := newAccount(t, 30)

		err := account.ApplyDebit(30, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), account.Balance())
	})

	t.Run("Insufficient credits leaves balance untouched", func(t *testing.T) {
		account, mockTime := newAccount(t, 20)

		err := account.ApplyDebit(30, mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsInsufficientCreditsError(err))
		assert.Equal(t, int64(20), account.Balance())

		var insufficientErr *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, uint64(1), insufficientErr.AccountID)
		assert.Equal(t, int64(30), insufficientErr.Requested)
		assert.Equal(t, int64(20), insufficientErr.Available)
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		account, mockTime := newAccount(t, 100)

		assert.Equal(t, errs.ErrInvalidAmount, account.ApplyDebit(0, mockTime))
		assert.Equal(t, errs.ErrInvalidAmount, account.ApplyDebit(-5, mockTime))
		assert.Equal(t, int64(100), account.Balance())
	})
}

func TestAccountApplyCredit(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedDay := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Today().Return(fixedDay).Maybe()

	t.Run("Successful credit", func(t *testing.T) {
		account, err := NewAccount(1, 45, 40, mockTime)
		require.NoError(t, err)

		err = account.ApplyCredit(60, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(100), account.Balance())
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		account, err := NewAccount(1, 45, 40, mockTime)
		require.NoError(t, err)

		assert.Equal(t, errs.ErrInvalidAmount, account.ApplyCredit(0, mockTime))
		assert.Equal(t, errs.ErrInvalidAmount, account.ApplyCredit(-10, mockTime))
		assert.Equal(t, int64(40), account.Balance())
	})
}

func TestAccountApplyRecharge(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	createdDay := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rechargeDay := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	newAccount := func(t *testing.T, balance int64) (*Account, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(createdAt).Maybe()
		mockTime.EXPECT().Today().Return(createdDay).Maybe()
		account, err := NewAccount(1, 45, balance, mockTime)
		require.NoError(t, err)
		return account, mockTime
	}

	t.Run("Recharge from a lower balance records a positive delta", func(t *testing.T) {
		account, mockTime := newAccount(t, 25)

		delta := account.ApplyRecharge(100, rechargeDay, mockTime)

		assert.Equal(t, int64(75), delta)
		assert.Equal(t, int64(100), account.Balance())
		assert.Equal(t, rechargeDay, account.LastRechargeAt)
	})

	t.Run("Recharge from a higher balance records a negative delta", func(t *testing.T) {
		account, mockTime := newAccount(t, 130)

		delta := account.ApplyRecharge(100, rechargeDay, mockTime)

		assert.Equal(t, int64(-30), delta)
		assert.Equal(t, int64(100), account.Balance())
	})

	t.Run("Recharge at the target is a zero delta", func(t *testing.T) {
		account, mockTime := newAccount(t, 100)

		delta := account.ApplyRecharge(100, rechargeDay, mockTime)

		assert.Equal(t, int64(0), delta)
		assert.Equal(t, int64(100), account.Balance())
	})
}

func TestAccountCanDebit(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedDay := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Today().Return(fixedDay).Maybe()

	account, err := NewAccount(1, 45, 50, mockTime)
	require.NoError(t, err)

	assert.True(t, account.CanDebit(50))
	assert.True(t, account.CanDebit(1))
	assert.False(t, account.CanDebit(51))
}
