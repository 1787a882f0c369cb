package usecase

import (
	"context"
	"time"
)

// Authorization is the consumption gate's go-ahead. The caller must not
// invoke the metered capability unless Authorized is true.
type Authorization struct {
	Authorized bool
	AccountID  uint64
	Cost       int64
	NewBalance int64
	Recharged  bool
}

// ConsumptionGate is the public entry point used by any metered capability.
// The debit happens before the external action is attempted, as a
// reservation-equivalent.
type ConsumptionGate interface {
	// Authorize applies any due recharge, checks the balance against the
	// cost and debits on success. Insufficient credits deny the caller
	// before any external side effect occurs.
	Authorize(ctx context.Context, accountID uint64, cost int64, now time.Time) (*Authorization, error)
}
