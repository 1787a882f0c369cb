package entity

import (
	"testing"
	"time"

	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coremocks "github.com/vidaplus/credit-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKindValidation(t *testing.T) {
	assert.True(t, IsValidKind("usage"))
	assert.True(t, IsValidKind("recharge"))
	assert.True(t, IsValidKind("topup"))
	assert.False(t, IsValidKind("refund"))
	assert.False(t, IsValidKind(""))

	assert.True(t, IsValidCreditKind(KindRecharge))
	assert.True(t, IsValidCreditKind(KindTopUp))
	assert.False(t, IsValidCreditKind(KindUsage))
}

func TestNewUsageRecord(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Stores the negated amount", func(t *testing.T) {
		record, err := NewUsageRecord(1, 30, "ai generation (30 credits)", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), record.AccountID)
		assert.Equal(t, int64(-30), record.Amount)
		assert.Equal(t, KindUsage, record.Kind)
		assert.Empty(t, record.Reference)
		assert.Equal(t, fixedTime, record.CreatedAt)
		assert.True(t, record.IsDebit())
		assert.False(t, record.IsCredit())
	})

	t.Run("Zero account ID is rejected", func(t *testing.T) {
		record, err := NewUsageRecord(0, 30, "x", mockTime)

		assert.Equal(t, errs.ErrInvalidAccountID, err)
		assert.Nil(t, record)
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		record, err := NewUsageRecord(1, 0, "x", mockTime)

		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, record)
	})
}

func TestNewRechargeRecord(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Positive delta", func(t *testing.T) {
		record, err := NewRechargeRecord(1, 75, "periodic credit renewal", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(75), record.Amount)
		assert.Equal(t, KindRecharge, record.Kind)
		assert.True(t, record.IsCredit())
	})

	t.Run("Negative delta is allowed", func(t *testing.T) {
		record, err := NewRechargeRecord(1, -30, "periodic credit renewal", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-30), record.Amount)
		assert.True(t, record.IsDebit())
	})

	t.Run("Zero account ID is rejected", func(t *testing.T) {
		record, err := NewRechargeRecord(0, 75, "x", mockTime)

		assert.Equal(t, errs.ErrInvalidAccountID, err)
		assert.Nil(t, record)
	})
}

func TestNewTopUpRecord(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid top-up", func(t *testing.T) {
		record, err := NewTopUpRecord(1, 50, "confirmed payment pay_123", "pay_123", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(50), record.Amount)
		assert.Equal(t, KindTopUp, record.Kind)
		assert.Equal(t, "pay_123", record.Reference)
	})

	t.Run("Empty reference is rejected", func(t *testing.T) {
		record, err := NewTopUpRecord(1, 50, "x", "", mockTime)

		assert.Equal(t, errs.ErrEmptyReference, err)
		assert.Nil(t, record)
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		record, err := NewTopUpRecord(1, -50, "x", "pay_123", mockTime)

		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, record)
	})
}

func TestRecordString(t *testing.T) {
	record := &TransactionRecord{AccountID: 7, Kind: KindUsage, Amount: -3}
	assert.Equal(t, "record{account=7 kind=usage amount=-3}", record.String())
}
