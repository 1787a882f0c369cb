package account

import (
	"context"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/domain/port/persistence"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
)

// Service provisions accounts with their starting grant and exposes plain
// reads. Balance mutation stays with the ledger engine.
type Service struct {
	accounts      persistence.AccountRepository
	records       persistence.RecordRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	startingGrant int64
}

// NewService creates an account service
func NewService(
	accounts persistence.AccountRepository,
	records persistence.RecordRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingGrant int64,
) usecase.AccountService {
	return &Service{
		accounts:      accounts,
		records:       records,
		timeProvider:  timeProvider,
		logger:        logger,
		startingGrant: startingGrant,
	}
}

// Register creates an account with the configured starting grant. The grant
// is the baseline of the ledger-sum invariant, not an audit record.
func (s *Service) Register(ctx context.Context, id uint64, ageYears int) (*entity.Account, error) {
	account, err := entity.NewAccount(id, ageYears, s.startingGrant, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		s.logger.Error("Failed to create account", map[string]any{
			"account_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Account registered", map[string]any{
		"account_id":     id,
		"age_years":      ageYears,
		"starting_grant": s.startingGrant,
	})
	return account, nil
}

// Get retrieves an account without applying recharge
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Account, error) {
	if id == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	return s.accounts.GetByID(ctx, id)
}

// Statement returns the account's audit trail in append order
func (s *Service) Statement(ctx context.Context, id uint64) ([]entity.TransactionRecord, error) {
	if id == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.records.ListByAccount(ctx, id)
}
