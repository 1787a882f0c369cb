package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/domain/port/persistence"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
)

// Config holds the ledger engine's tunables
type Config struct {
	// RechargeAmount is the fixed balance a due account is replenished to
	RechargeAmount int64
	// MaxConflictRetries bounds how often a debit or credit is retried when
	// lock contention aborts the store transaction
	MaxConflictRetries int
	// ConflictRetryDelay is the base backoff between conflict retries
	ConflictRetryDelay time.Duration
}

// DefaultConfig returns the engine defaults used when configuration is absent
func DefaultConfig() Config {
	return Config{
		RechargeAmount:     100,
		MaxConflictRetries: 3,
		ConflictRetryDelay: 50 * time.Millisecond,
	}
}

// Engine is the sole mutator of account balances. Every write couples the
// balance change with its audit record inside one unit-of-work transaction,
// serialized per account by an exclusive row lock.
type Engine struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewEngine creates a ledger engine with injected store and clock
func NewEngine(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Engine {
	if cfg.RechargeAmount <= 0 {
		cfg.RechargeAmount = DefaultConfig().RechargeAmount
	}
	if cfg.MaxConflictRetries <= 0 {
		cfg.MaxConflictRetries = DefaultConfig().MaxConflictRetries
	}
	if cfg.ConflictRetryDelay <= 0 {
		cfg.ConflictRetryDelay = DefaultConfig().ConflictRetryDelay
	}

	return &Engine{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// EffectiveBalance evaluates the recharge policy and lazily applies a due
// replenishment. The quick path is a plain read; only a due account pays for
// a transaction, and the policy is re-evaluated under the row lock so two
// same-day evaluations replenish at most once.
func (e *Engine) EffectiveBalance(ctx context.Context, accountID uint64, now time.Time) (*usecase.BalanceResult, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	account, err := e.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	decision := entity.EvaluateRecharge(account.AgeYears, account.LastRechargeAt, now, e.cfg.RechargeAmount)
	if !decision.Due {
		return &usecase.BalanceResult{
			AccountID: accountID,
			Balance:   account.Balance(),
		}, nil
	}

	var result *usecase.BalanceResult
	err = e.withConflictRetry(ctx, accountID, func() error {
		r, applyErr := e.applyDueRecharge(ctx, accountID, now)
		if applyErr != nil {
			return applyErr
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyDueRecharge re-checks the policy under lock and applies it when still
// due. A concurrent request may have replenished the account between the
// unlocked read and the lock; in that case this is a no-op read.
func (e *Engine) applyDueRecharge(ctx context.Context, accountID uint64, now time.Time) (*usecase.BalanceResult, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	account, err := e.uow.GetAccountRepository(txCtx).LockByID(txCtx, accountID)
	if err != nil {
		e.rollback(txCtx, accountID)
		return nil, err
	}

	decision := entity.EvaluateRecharge(account.AgeYears, account.LastRechargeAt, now, e.cfg.RechargeAmount)
	if !decision.Due {
		e.rollback(txCtx, accountID)
		return &usecase.BalanceResult{
			AccountID: accountID,
			Balance:   account.Balance(),
		}, nil
	}

	delta := account.ApplyRecharge(decision.NewBalance, decision.LastRechargeAt, e.timeProvider)

	if err := e.uow.GetAccountRepository(txCtx).Update(txCtx, account); err != nil {
		e.rollback(txCtx, accountID)
		return nil, err
	}

	record, err := entity.NewRechargeRecord(accountID, delta, "periodic credit renewal", e.timeProvider)
	if err != nil {
		e.rollback(txCtx, accountID)
		return nil, err
	}
	if err := e.uow.GetRecordRepository(txCtx).Append(txCtx, record); err != nil {
		e.rollback(txCtx, accountID)
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	e.logger.Info("Recharge applied", map[string]any{
		"account_id":  accountID,
		"new_balance": account.Balance(),
		"delta":       delta,
		"window_days": entity.RechargeWindowDays(account.AgeYears),
	})

	return &usecase.BalanceResult{
		AccountID: accountID,
		Balance:   account.Balance(),
		Recharged: true,
	}, nil
}

// Debit atomically subtracts credits and appends the usage record. The
// balance is re-read under the row lock inside the same transaction as the
// write, so a stale unlocked read can never authorize an overdraft.
func (e *Engine) Debit(ctx context.Context, accountID uint64, amount int64, description string) (int64, error) {
	if accountID == 0 {
		return 0, errs.ErrInvalidAccountID
	}
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	var newBalance int64
	err := e.withConflictRetry(ctx, accountID, func() error {
		balance, txErr := e.applyDebit(ctx, accountID, amount, description)
		if txErr != nil {
			return txErr
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.logger.Info("Debit applied", map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"new_balance": newBalance,
		"description": description,
	})
	return newBalance, nil
}

func (e *Engine) applyDebit(ctx context.Context, accountID uint64, amount int64, description string) (int64, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}

	account, err := e.uow.GetAccountRepository(txCtx).LockByID(txCtx, accountID)
	if err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}

	if err := account.ApplyDebit(amount, e.timeProvider); err != nil {
		e.rollback(txCtx, accountID)
		if errs.IsInsufficientCreditsError(err) {
			e.logger.Warn("Debit rejected, insufficient credits", map[string]any{
				"account_id": accountID,
				"requested":  amount,
				"available":  account.Balance(),
			})
		}
		return 0, err
	}

	if err := e.uow.GetAccountRepository(txCtx).Update(txCtx, account); err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}

	record, err := entity.NewUsageRecord(accountID, amount, description, e.timeProvider)
	if err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}
	if err := e.uow.GetRecordRepository(txCtx).Append(txCtx, record); err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return 0, err
	}
	return account.Balance(), nil
}

// Credit atomically adds credits and appends a matching positive record.
// There is no upper bound on the balance.
func (e *Engine) Credit(ctx context.Context, accountID uint64, amount int64, description string, kind entity.RecordKind, reference string) (int64, error) {
	if accountID == 0 {
		return 0, errs.ErrInvalidAccountID
	}
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}
	if !entity.IsValidCreditKind(kind) {
		return 0, errs.ErrInvalidKind
	}

	var newBalance int64
	err := e.withConflictRetry(ctx, accountID, func() error {
		balance, txErr := e.applyCredit(ctx, accountID, amount, description, kind, reference)
		if txErr != nil {
			return txErr
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.logger.Info("Credit applied", map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"kind":        string(kind),
		"new_balance": newBalance,
	})
	return newBalance, nil
}

func (e *Engine) applyCredit(ctx context.Context, accountID uint64, amount int64, description string, kind entity.RecordKind, reference string) (int64, error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}

	account, err := e.uow.GetAccountRepository(txCtx).LockByID(txCtx, accountID)
	if err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}

	if err := account.ApplyCredit(amount, e.timeProvider); err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}

	if err := e.uow.GetAccountRepository(txCtx).Update(txCtx, account); err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}

	record, err := e.newCreditRecord(accountID, amount, description, kind, reference)
	if err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}
	if err := e.uow.GetRecordRepository(txCtx).Append(txCtx, record); err != nil {
		e.rollback(txCtx, accountID)
		return 0, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return 0, err
	}
	return account.Balance(), nil
}

func (e *Engine) newCreditRecord(accountID uint64, amount int64, description string, kind entity.RecordKind, reference string) (*entity.TransactionRecord, error) {
	if kind == entity.KindTopUp {
		return entity.NewTopUpRecord(accountID, amount, description, reference, e.timeProvider)
	}
	return entity.NewRechargeRecord(accountID, amount, description, e.timeProvider)
}

// withConflictRetry re-runs the operation when the store reports lock or
// serialization contention. Anything else propagates immediately; exhausted
// retries surface as ErrConcurrentConflict so the caller knows the whole
// operation is safe to retry.
func (e *Engine) withConflictRetry(ctx context.Context, accountID uint64, operation func() error) error {
	var err error
	for attempt := 0; attempt < e.cfg.MaxConflictRetries; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !errs.IsConcurrentConflictError(err) {
			return err
		}

		e.logger.Warn("Ledger conflict, retrying", map[string]any{
			"account_id":  accountID,
			"attempt":     attempt + 1,
			"max_retries": e.cfg.MaxConflictRetries,
			"error":       err.Error(),
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.timeProvider.Sleep(e.cfg.ConflictRetryDelay * time.Duration(attempt+1))
	}

	e.logger.Error("Ledger conflict retries exhausted", map[string]any{
		"account_id": accountID,
		"attempts":   e.cfg.MaxConflictRetries,
		"error":      err.Error(),
	})
	if errors.Is(err, errs.ErrConcurrentConflict) {
		return err
	}
	return errs.ErrConcurrentConflict
}

// rollback releases the transaction on an error path; a rollback failure is
// logged but never masks the original error.
func (e *Engine) rollback(txCtx context.Context, accountID uint64) {
	if err := e.uow.Rollback(txCtx); err != nil {
		e.logger.Error("Rollback failed", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
	}
}
