package usecase

import "context"

// TopUpResult is returned after an externally confirmed payment was applied
type TopUpResult struct {
	AccountID  uint64
	NewBalance int64
	Reference  string
}

// TopUpApplier turns confirmed payment events into balance credits. It must
// be idempotent against duplicate confirmation notifications for the same
// payment reference: a repeated reference is rejected, never double-credited.
type TopUpApplier interface {
	ApplyConfirmedPayment(ctx context.Context, accountID uint64, creditsToAdd int64, reference string) (*TopUpResult, error)
}
