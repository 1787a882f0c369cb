package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to a domain entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) *entity.Account {
	account := &entity.Account{
		ID:             accountModel.ID,
		AgeYears:       accountModel.AgeYears,
		LastRechargeAt: accountModel.LastRechargeAt,
		CreatedAt:      accountModel.CreatedAt,
	}
	account.SetBalance(accountModel.Balance, r.timeProvider)
	account.UpdatedAt = accountModel.UpdatedAt
	return account
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateAccount
	}
	if r.errorClassifier.IsConflictError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConcurrentConflict, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}

	return r.modelToEntity(&accountModel), nil
}

// LockByID retrieves an account under an exclusive FOR UPDATE row lock.
// Must run inside a unit-of-work transaction; the lock lives until commit
// or rollback.
func (r *AccountRepository) LockByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&accountModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking account", result.Error, id)
	}

	r.logger.Debug("Account row locked", map[string]any{
		"account_id": id,
		"balance":    accountModel.Balance,
	})
	return r.modelToEntity(&accountModel), nil
}

// Create persists a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		ID:             account.ID,
		Balance:        account.Balance(),
		AgeYears:       account.AgeYears,
		LastRechargeAt: account.LastRechargeAt,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	r.logger.Info("Account created", map[string]any{
		"account_id": account.ID,
		"balance":    account.Balance(),
	})
	return nil
}

// Update writes the account's balance and recharge timestamp
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"balance":          account.Balance(),
			"last_recharge_at": account.LastRechargeAt,
			"updated_at":       account.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, account.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during update", map[string]any{
			"account_id": account.ID,
		})
		return errs.ErrAccountNotFound
	}

	return nil
}
