package topup

import (
	"context"
	"testing"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coremocks "github.com/vidaplus/credit-ledger/mocks/port/core"
	persistencemocks "github.com/vidaplus/credit-ledger/mocks/port/persistence"
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

func TestApplyConfirmedPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("First confirmation credits the account", func(t *testing.T) {
		mockRecords := persistencemocks.NewMockRecordRepository(t)
		mockRecords.EXPECT().ReferenceExists(mock.Anything, "pay_123").Return(false, nil).Once()

		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().Credit(mock.Anything, uint64(1), int64(50), "confirmed payment pay_123", entity.KindTopUp, "pay_123").
			Return(int64(150), nil).Once()

		applier := NewApplier(mockLedger, mockRecords, quietLogger(t))

		result, err := applier.ApplyConfirmedPayment(ctx, 1, 50, "pay_123")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), result.AccountID)
		assert.Equal(t, int64(150), result.NewBalance)
		assert.Equal(t, "pay_123", result.Reference)
	})

	t.Run("Known reference is rejected without crediting", func(t *testing.T) {
		mockRecords := persistencemocks.NewMockRecordRepository(t)
		mockRecords.EXPECT().ReferenceExists(mock.Anything, "pay_123").Return(true, nil).Once()

		mockLedger := usecasemocks.NewMockLedgerEngine(t)

		applier := NewApplier(mockLedger, mockRecords, quietLogger(t))

		result, err := applier.ApplyConfirmedPayment(ctx, 1, 50, "pay_123")

		assert.Nil(t, result)
		assert.True(t, errs.IsDuplicatePaymentError(err))
	})

	t.Run("Race caught inside the credit surfaces as duplicate", func(t *testing.T) {
		mockRecords := persistencemocks.NewMockRecordRepository(t)
		mockRecords.EXPECT().ReferenceExists(mock.Anything, "pay_123").Return(false, nil).Once()

		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		mockLedger.EXPECT().Credit(mock.Anything, uint64(1), int64(50), mock.Anything, entity.KindTopUp, "pay_123").
			Return(int64(0), errs.ErrDuplicatePayment).Once()

		applier := NewApplier(mockLedger, mockRecords, quietLogger(t))

		result, err := applier.ApplyConfirmedPayment(ctx, 1, 50, "pay_123")

		assert.Nil(t, result)
		assert.True(t, errs.IsDuplicatePaymentError(err))
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		mockRecords := persistencemocks.NewMockRecordRepository(t)
		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		applier := NewApplier(mockLedger, mockRecords, quietLogger(t))

		_, err := applier.ApplyConfirmedPayment(ctx, 0, 50, "pay_123")
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)

		_, err = applier.ApplyConfirmedPayment(ctx, 1, 0, "pay_123")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = applier.ApplyConfirmedPayment(ctx, 1, 50, "")
		assert.ErrorIs(t, err, errs.ErrEmptyReference)
	})

	t.Run("Reference check failure propagates", func(t *testing.T) {
		mockRecords := persistencemocks.NewMockRecordRepository(t)
		mockRecords.EXPECT().ReferenceExists(mock.Anything, "pay_123").Return(false, errs.ErrStoreUnavailable).Once()

		mockLedger := usecasemocks.NewMockLedgerEngine(t)
		applier := NewApplier(mockLedger, mockRecords, quietLogger(t))

		_, err := applier.ApplyConfirmedPayment(ctx, 1, 50, "pay_123")

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
