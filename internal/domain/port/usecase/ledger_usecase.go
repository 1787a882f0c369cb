package usecase

import (
	"context"
	"time"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
)

// BalanceResult is the outcome of an effective-balance read. Recharged tells
// the presentation layer to surface a renewal notice.
type BalanceResult struct {
	AccountID uint64
	Balance   int64
	Recharged bool
}

// LedgerEngine orchestrates balance reads, recharge application and the
// atomic debit/credit-plus-audit-record writes. It is the only component
// that mutates accounts.
type LedgerEngine interface {
	// EffectiveBalance evaluates the recharge policy for the account at the
	// given instant; when due it atomically applies the replenishment and
	// appends a recharge record, otherwise it is a plain read.
	EffectiveBalance(ctx context.Context, accountID uint64, now time.Time) (*BalanceResult, error)

	// Debit atomically subtracts amount credits and appends a usage record.
	// Fails with ErrInsufficientCredits when the balance doesn't cover the
	// amount; no partial debit ever happens.
	Debit(ctx context.Context, accountID uint64, amount int64, description string) (int64, error)

	// Credit atomically adds amount credits and appends a positive record of
	// the given kind (recharge or topup). The reference, when non-empty, is
	// stored on the record and must be unique across the ledger.
	Credit(ctx context.Context, accountID uint64, amount int64, description string, kind entity.RecordKind, reference string) (int64, error)
}
