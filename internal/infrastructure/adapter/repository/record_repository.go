package repository

import (
	"context"
	"fmt"

	"github.com/vidaplus/credit-ledger/internal/domain/entity"
	errs "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// RecordRepository implements persistence.RecordRepository using GORM
type RecordRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRecordRepository creates a new RecordRepository instance
func NewRecordRepository(db *gorm.DB, logger coreport.Logger) *RecordRepository {
	return &RecordRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a record entity to a database model
func (r *RecordRepository) entityToModel(record *entity.TransactionRecord) model.TransactionRecord {
	var reference *string
	if record.Reference != "" {
		ref := record.Reference
		reference = &ref
	}
	return model.TransactionRecord{
		AccountID:   record.AccountID,
		Amount:      record.Amount,
		Description: record.Description,
		Kind:        string(record.Kind),
		Reference:   reference,
		CreatedAt:   record.CreatedAt,
	}
}

// modelToEntity converts a record model to a domain entity
func (r *RecordRepository) modelToEntity(recordModel *model.TransactionRecord) entity.TransactionRecord {
	reference := ""
	if recordModel.Reference != nil {
		reference = *recordModel.Reference
	}
	return entity.TransactionRecord{
		ID:          recordModel.ID,
		AccountID:   recordModel.AccountID,
		Amount:      recordModel.Amount,
		Description: recordModel.Description,
		Kind:        entity.RecordKind(recordModel.Kind),
		Reference:   reference,
		CreatedAt:   recordModel.CreatedAt,
	}
}

// Append stores a new audit record. The unique index on reference rejects a
// repeated payment reference at the store level, inside the same transaction
// as the balance write.
func (r *RecordRepository) Append(ctx context.Context, record *entity.TransactionRecord) error {
	recordModel := r.entityToModel(record)

	result := r.db.WithContext(ctx).Create(&recordModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate payment reference rejected", map[string]any{
				"account_id": record.AccountID,
				"reference":  record.Reference,
			})
			return errs.ErrDuplicatePayment
		}
		if r.errorClassifier.IsConflictError(result.Error) {
			return fmt.Errorf("%w: %s", errs.ErrConcurrentConflict, result.Error.Error())
		}

		r.logger.Error("Failed to append transaction record", map[string]any{
			"account_id": record.AccountID,
			"kind":       string(record.Kind),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	record.ID = recordModel.ID
	return nil
}

// ListByAccount returns all records for an account in append order
func (r *RecordRepository) ListByAccount(ctx context.Context, accountID uint64) ([]entity.TransactionRecord, error) {
	var recordModels []model.TransactionRecord
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	records := make([]entity.TransactionRecord, 0, len(recordModels))
	for i := range recordModels {
		records = append(records, r.modelToEntity(&recordModels[i]))
	}
	return records, nil
}

// SumByAccount returns the signed sum of all record amounts for an account
func (r *RecordRepository) SumByAccount(ctx context.Context, accountID uint64) (int64, error) {
	var sum *int64
	result := r.db.WithContext(ctx).Model(&model.TransactionRecord{}).
		Where("account_id = ?", accountID).
		Select("SUM(amount)").
		Scan(&sum)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

// ReferenceExists checks if a payment reference was already applied
func (r *RecordRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TransactionRecord{}).
		Where("reference = ?", reference).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}
	return count > 0, nil
}
