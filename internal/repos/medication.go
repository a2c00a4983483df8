package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type MedicationRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error)
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error)
	GetByID(ctx context.Context, medicationID uuid.UUID) (*types.Medication, error)
	GetByIDs(ctx context.Context, medicationIDs []uuid.UUID) ([]*types.Medication, error)
	Create(ctx context.Context, medication *types.Medication) (*types.Medication, error)
	Update(ctx context.Context, medicationID, userID uuid.UUID, updates map[string]any) (*types.Medication, error)
	Delete(ctx context.Context, medicationID, userID uuid.UUID) error
}

type medicationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMedicationRepo(db *gorm.DB, baseLog *logger.Logger) MedicationRepo {
	repoLog := baseLog.With("repo", "MedicationRepo")
	return &medicationRepo{db: db, log: repoLog}
}

func (mr *medicationRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error) {
	var results []*types.Medication
	if err := mr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *medicationRepo) GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error) {
	var results []*types.Medication
	if err := mr.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *medicationRepo) GetByID(ctx context.Context, medicationID uuid.UUID) (*types.Medication, error) {
	var result types.Medication
	if err := mr.db.WithContext(ctx).
		Where("id = ?", medicationID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (mr *medicationRepo) GetByIDs(ctx context.Context, medicationIDs []uuid.UUID) ([]*types.Medication, error) {
	var results []*types.Medication
	if len(medicationIDs) == 0 {
		return results, nil
	}
	if err := mr.db.WithContext(ctx).
		Where("id IN ?", medicationIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *medicationRepo) Create(ctx context.Context, medication *types.Medication) (*types.Medication, error) {
	if err := mr.db.WithContext(ctx).Create(medication).Error; err != nil {
		return nil, err
	}
	return medication, nil
}

func (mr *medicationRepo) Update(ctx context.Context, medicationID, userID uuid.UUID, updates map[string]any) (*types.Medication, error) {
	updates["updated_at"] = time.Now()
	res := mr.db.WithContext(ctx).
		Model(&types.Medication{}).
		Where("id = ? AND user_id = ?", medicationID, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return mr.GetByID(ctx, medicationID)
}

// Delete is idempotent: removing an id that is already gone is not an error.
func (mr *medicationRepo) Delete(ctx context.Context, medicationID, userID uuid.UUID) error {
	return mr.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", medicationID, userID).
		Delete(&types.Medication{}).Error
}
