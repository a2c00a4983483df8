package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type SymptomRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Symptom, error)
	GetByID(ctx context.Context, symptomID uuid.UUID) (*types.Symptom, error)
	Create(ctx context.Context, symptom *types.Symptom) (*types.Symptom, error)
	Update(ctx context.Context, symptomID, userID uuid.UUID, updates map[string]any) (*types.Symptom, error)
	Delete(ctx context.Context, symptomID, userID uuid.UUID) error
}

type symptomRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSymptomRepo(db *gorm.DB, baseLog *logger.Logger) SymptomRepo {
	repoLog := baseLog.With("repo", "SymptomRepo")
	return &symptomRepo{db: db, log: repoLog}
}

func (sr *symptomRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Symptom, error) {
	var results []*types.Symptom
	if err := sr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *symptomRepo) GetByID(ctx context.Context, symptomID uuid.UUID) (*types.Symptom, error) {
	var result types.Symptom
	if err := sr.db.WithContext(ctx).
		Where("id = ?", symptomID).
		First(&result).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (sr *symptomRepo) Create(ctx context.Context, symptom *types.Symptom) (*types.Symptom, error) {
	if err := sr.db.WithContext(ctx).Create(symptom).Error; err != nil {
		return nil, err
	}
	return symptom, nil
}

func (sr *symptomRepo) Update(ctx context.Context, symptomID, userID uuid.UUID, updates map[string]any) (*types.Symptom, error) {
	res := sr.db.WithContext(ctx).
		Model(&types.Symptom{}).
		Where("id = ? AND user_id = ?", symptomID, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return sr.GetByID(ctx, symptomID)
}

func (sr *symptomRepo) Delete(ctx context.Context, symptomID, userID uuid.UUID) error {
	return sr.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", symptomID, userID).
		Delete(&types.Symptom{}).Error
}
