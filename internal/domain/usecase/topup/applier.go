package topup

import (
	"context"
	"fmt"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/domain/port/persistence"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
)

// Applier turns externally confirmed payments into balance credits. The
// payment collaborator supplies a stable reference per payment; applying the
// same reference twice is rejected instead of double-crediting.
type Applier struct {
	ledger  usecase.LedgerEngine
	records persistence.RecordRepository
	logger  coreport.Logger
}

// NewApplier creates a top-up applier
func NewApplier(
	ledger usecase.LedgerEngine,
	records persistence.RecordRepository,
	logger coreport.Logger,
) *Applier {
	return &Applier{
		ledger:  ledger,
		records: records,
		logger:  logger,
	}
}

// ApplyConfirmedPayment credits the account once per payment reference.
// The unlocked existence check lets duplicate notifications return quickly;
// the unique reference index inside the credit transaction catches the race
// where two notifications for the same reference pass the check together.
func (a *Applier) ApplyConfirmedPayment(ctx context.Context, accountID uint64, creditsToAdd int64, reference string) (*usecase.TopUpResult, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if creditsToAdd <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if reference == "" {
		return nil, errs.ErrEmptyReference
	}

	exists, err := a.records.ReferenceExists(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to check payment reference: %w", err)
	}
	if exists {
		a.logger.Warn("Duplicate payment confirmation ignored", map[string]any{
			"account_id": accountID,
			"reference":  reference,
		})
		return nil, errs.NewDuplicatePaymentError(reference, accountID)
	}

	newBalance, err := a.ledger.Credit(
		ctx,
		accountID,
		creditsToAdd,
		fmt.Sprintf("confirmed payment %s", reference),
		entity.KindTopUp,
		reference,
	)
	if err != nil {
		if errs.IsDuplicatePaymentError(err) {
			return nil, errs.NewDuplicatePaymentError(reference, accountID)
		}
		return nil, err
	}

	a.logger.Info("Top-up applied", map[string]any{
		"account_id":  accountID,
		"credits":     creditsToAdd,
		"reference":   reference,
		"new_balance": newBalance,
	})

	return &usecase.TopUpResult{
		AccountID:  accountID,
		NewBalance: newBalance,
		Reference:  reference,
	}, nil
}
