package account

import (
	"context"
	"testing"
	"time"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coremocks "github.com/vidaplus/credit-ledger/mocks/port/core"
	persistencemocks "github.com/vidaplus/credit-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMocks(t *testing.T) (*persistencemocks.MockAccountRepository, *persistencemocks.MockRecordRepository, *coremocks.MockTimeProvider, *coremocks.MockLogger) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedDay := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mockAccounts := persistencemocks.NewMockAccountRepository(t)
	mockRecords := persistencemocks.NewMockRecordRepository(t)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Today().Return(fixedDay).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return mockAccounts, mockRecords, mockTime, mockLogger
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration carries the starting grant", func(t *testing.T) {
		mockAccounts, mockRecords, mockTime, mockLogger := newTestMocks(t)
		mockAccounts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(account *entity.Account) bool {
			return account.ID == 1 && account.Balance() == 100 && account.AgeYears == 45
		})).Return(nil).Once()

		service := NewService(mockAccounts, mockRecords, mockTime, mockLogger, 100)

		account, err := service.Register(ctx, 1, 45)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.ID)
		assert.Equal(t, int64(100), account.Balance())
	})

	t.Run("Duplicate account propagates", func(t *testing.T) {
		mockAccounts, mockRecords, mockTime, mockLogger := newTestMocks(t)
		mockAccounts.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateAccount).Once()

		service := NewService(mockAccounts, mockRecords, mockTime, mockLogger, 100)

		account, err := service.Register(ctx, 1, 45)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
	})

	t.Run("Invalid arguments never reach the store", func(t *testing.T) {
		mockAccounts, mockRecords, mockTime, mockLogger := newTestMocks(t)
		service := NewService(mockAccounts, mockRecords, mockTime, mockLogger, 100)

		_, err := service.Register(ctx, 0, 45)
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)

		_, err = service.Register(ctx, 1, -3)
		assert.ErrorIs(t, err, errs.ErrInvalidAge)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing account", func(t *testing.T) {
		mockAccounts, mockRecords, mockTime, mockLogger := newTestMocks(t)
		stored, err := entity.NewAccount(1, 45, 100, mockTime)
		require.NoError(t, err)
		mockAccounts.EXPECT().GetByID(mock.Anything, uint64(1)).Return(stored, nil).Once()

		service := NewService(mockAccounts, mockRecords, mockTime, mockLogger, 100)

		account, err := service.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, stored, account)
	})

	t.Run("Zero ID", func(t *testing.T) {
		mockAccounts, mockRecords, mockTime, mockLogger := newTestMocks(t)
		service := NewService(mockAccounts, mockRecords, mockTime, mockLogger, 100)

		_, err := service.Get(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
	})
}

func TestStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns records in append order", func(t *testing.T) {
		mockAccounts, mockRecords, mockTime, mockLogger := newTestMocks(t)
		stored, err := entity.NewAccount(1, 45, 100, mockTime)
		require.NoError(t, err)
		mockAccounts.EXPECT().GetByID(mock.Anything, uint64(1)).Return(stored, nil).Once()

		records := []entity.TransactionRecord{
			{ID: 1, AccountID: 1, Amount: -30, Kind: entity.KindUsage},
			{ID: 2, AccountID: 1, Amount: 50, Kind: entity.KindTopUp, Reference: "pay_1"},
		}
		mockRecords.EXPECT().ListByAccount(mock.Anything, uint64(1)).Return(records, nil).Once()

		service := NewService(mockAccounts, mockRecords, mockTime, mockLogger, 100)

		got, err := service.Statement(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("Unknown account fails before listing", func(t *testing.T) {
		mockAccounts, mockRecords, mockTime, mockLogger := newTestMocks(t)
		mockAccounts.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrAccountNotFound).Once()

		service := NewService(mockAccounts, mockRecords, mockTime, mockLogger, 100)

		_, err := service.Statement(ctx, 9)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
