package entity

import (
	"time"

	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
)

// Account represents a credit-bearing user record. The balance is private so
// every mutation goes through a method that preserves the non-negative
// invariant; repositories restore it with SetBalance.
type Account struct {
	ID             uint64    // Unique identifier, assigned at registration
	balance        int64     // Credit count, never negative (private)
	AgeYears       int       // Used only to select the recharge window bracket
	LastRechargeAt time.Time // Day of the last successful replenishment (UTC, day granularity)
	CreatedAt      time.Time // When the account was created
	UpdatedAt      time.Time // When the account was last updated
}

// NewAccount creates a new account with the starting credit grant.
// LastRechargeAt is initialized to the creation day so the first recharge
// window starts counting from registration.
func NewAccount(id uint64, ageYears int, startingGrant int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if id == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if ageYears < 0 {
		return nil, errs.ErrInvalidAge
	}
	if startingGrant < 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Account{
		ID:             id,
		balance:        startingGrant,
		AgeYears:       ageYears,
		LastRechargeAt: timeProvider.Today(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Balance returns the current credit balance
func (a *Account) Balance() int64 {
	return a.balance
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (a *Account) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	a.balance = balance
	a.UpdatedAt = timeProvider.Now()
}

// CanDebit checks if the account holds enough credits for a debit
func (a *Account) CanDebit(amount int64) bool {
	return a.balance >= amount
}

// ApplyDebit subtracts amount credits if the balance covers it.
// Returns a detailed insufficient-credits error otherwise; the balance is
// rejected, never clamped.
func (a *Account) ApplyDebit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if a.balance < amount {
		return errs.NewInsufficientCreditsError(a.ID, amount, a.balance)
	}

	a.balance -= amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyCredit adds amount credits to the balance. There is no upper bound on
// the balance beyond the representation's own limits.
func (a *Account) ApplyCredit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}

	a.balance += amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyRecharge sets the balance to the replenishment target and advances
// LastRechargeAt to the given day, returning the balance delta to be recorded
// in the audit trail.
func (a *Account) ApplyRecharge(target int64, day time.Time, timeProvider coreport.TimeProvider) int64 {
	delta := target - a.balance
	a.balance = target
	a.LastRechargeAt = day
	a.UpdatedAt = timeProvider.Now()
	return delta
}
