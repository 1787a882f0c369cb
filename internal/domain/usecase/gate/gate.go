package gate

import (
	"context"
	"fmt"
	"time"

	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
)

// Gate is the consumption gate in front of every metered capability. It
// applies any due recharge before the balance check, then debits as a
// reservation: the charge lands before the external call is attempted and is
// not reversed if that call later fails.
type Gate struct {
	ledger     usecase.LedgerEngine
	logger     coreport.Logger
	capability string
}

// NewGate creates a consumption gate. The capability name identifies the
// consuming action in usage record descriptions.
func NewGate(ledger usecase.LedgerEngine, logger coreport.Logger, capability string) *Gate {
	if capability == "" {
		capability = "metered capability"
	}
	return &Gate{
		ledger:     ledger,
		logger:     logger,
		capability: capability,
	}
}

// Authorize checks the effective balance against the cost and debits on
// success. A denial performs no debit and must stop the caller from invoking
// the downstream capability.
func (g *Gate) Authorize(ctx context.Context, accountID uint64, cost int64, now time.Time) (*usecase.Authorization, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if cost <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	// Effective balance first, so a just-due recharge counts toward the check
	balance, err := g.ledger.EffectiveBalance(ctx, accountID, now)
	if err != nil {
		return nil, err
	}

	if balance.Balance < cost {
		g.logger.Info("Consumption denied", map[string]any{
			"account_id": accountID,
			"cost":       cost,
			"balance":    balance.Balance,
			"capability": g.capability,
		})
		return nil, errs.NewInsufficientCreditsError(accountID, cost, balance.Balance)
	}

	// The debit re-checks the balance under lock, so a concurrent consumer
	// racing past the check above still cannot overdraw the account.
	newBalance, err := g.ledger.Debit(ctx, accountID, cost, fmt.Sprintf("%s (%d credits)", g.capability, cost))
	if err != nil {
		return nil, err
	}

	g.logger.Info("Consumption authorized", map[string]any{
		"account_id":  accountID,
		"cost":        cost,
		"new_balance": newBalance,
		"recharged":   balance.Recharged,
	})

	return &usecase.Authorization{
		Authorized: true,
		AccountID:  accountID,
		Cost:       cost,
		NewBalance: newBalance,
		Recharged:  balance.Recharged,
	}, nil
}
