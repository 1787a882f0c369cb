package entity

import (
	"fmt"
	"time"

	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
)

// RecordKind represents the business reason for a ledger entry
type RecordKind string

// Record kinds
const (
	KindUsage    RecordKind = "usage"
	KindRecharge RecordKind = "recharge"
	KindTopUp    RecordKind = "topup"
)

// IsValidKind validates if the record kind is one of the allowed values
func IsValidKind(kind string) bool {
	return kind == string(KindUsage) ||
		kind == string(KindRecharge) ||
		kind == string(KindTopUp)
}

// IsValidCreditKind validates if the kind is allowed for a credit operation.
// Usage records are only ever created by debits.
func IsValidCreditKind(kind RecordKind) bool {
	return kind == KindRecharge || kind == KindTopUp
}

// TransactionRecord is a single append-only entry in an account's audit
// trail. Records are never mutated or deleted; the sum of all amounts for an
// account plus the starting grant always equals the account's balance.
type TransactionRecord struct {
	ID          uint64     // Monotonically assigned by the store
	AccountID   uint64     // Owning account
	Amount      int64      // Signed: negative for usage, positive for recharge/top-up
	Description string     // Free-text label of the causing action
	Kind        RecordKind // usage, recharge or topup
	Reference   string     // Payment reference, set only for top-ups (unique)
	CreatedAt   time.Time  // Creation instant, immutable
}

// NewUsageRecord creates the audit entry for a debit of amount credits.
// The stored amount is negative.
func NewUsageRecord(accountID uint64, amount int64, description string, timeProvider coreport.TimeProvider) (*TransactionRecord, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &TransactionRecord{
		AccountID:   accountID,
		Amount:      -amount,
		Description: description,
		Kind:        KindUsage,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// NewRechargeRecord creates the audit entry for a periodic replenishment.
// The delta is recorded as-is: it is the exact balance change, which keeps
// the ledger-sum invariant intact even when the balance already exceeded the
// replenishment target.
func NewRechargeRecord(accountID uint64, delta int64, description string, timeProvider coreport.TimeProvider) (*TransactionRecord, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	return &TransactionRecord{
		AccountID:   accountID,
		Amount:      delta,
		Description: description,
		Kind:        KindRecharge,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// NewTopUpRecord creates the audit entry for an externally confirmed payment.
// The reference is the payment collaborator's stable identifier and is what
// makes duplicate confirmations detectable.
func NewTopUpRecord(accountID uint64, amount int64, description, reference string, timeProvider coreport.TimeProvider) (*TransactionRecord, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if reference == "" {
		return nil, errs.ErrEmptyReference
	}

	return &TransactionRecord{
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Kind:        KindTopUp,
		Reference:   reference,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this record increased the account's balance
func (r *TransactionRecord) IsCredit() bool {
	return r.Amount > 0
}

// IsDebit returns true if this record decreased the account's balance
func (r *TransactionRecord) IsDebit() bool {
	return r.Amount < 0
}

// String implements fmt.Stringer for log-friendly output
func (r *TransactionRecord) String() string {
	return fmt.Sprintf("record{account=%d kind=%s amount=%d}", r.AccountID, r.Kind, r.Amount)
}
