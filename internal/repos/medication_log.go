package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type MedicationLogRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID, medicationID *uuid.UUID) ([]*types.MedicationLog, error)
	GetSince(ctx context.Context, userID, medicationID uuid.UUID, since time.Time) ([]*types.MedicationLog, error)
	Create(ctx context.Context, log *types.MedicationLog) (*types.MedicationLog, error)
}

type medicationLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMedicationLogRepo(db *gorm.DB, baseLog *logger.Logger) MedicationLogRepo {
	repoLog := baseLog.With("repo", "MedicationLogRepo")
	return &medicationLogRepo{db: db, log: repoLog}
}

func (lr *medicationLogRepo) GetByUserID(ctx context.Context, userID uuid.UUID, medicationID *uuid.UUID) ([]*types.MedicationLog, error) {
	var results []*types.MedicationLog
	q := lr.db.WithContext(ctx).Where("user_id = ?", userID)
	if medicationID != nil {
		q = q.Where("medication_id = ?", *medicationID)
	}
	if err := q.Order("taken_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *medicationLogRepo) GetSince(ctx context.Context, userID, medicationID uuid.UUID, since time.Time) ([]*types.MedicationLog, error) {
	var results []*types.MedicationLog
	if err := lr.db.WithContext(ctx).
		Where("user_id = ? AND medication_id = ? AND taken_at >= ?", userID, medicationID, since).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *medicationLogRepo) Create(ctx context.Context, log *types.MedicationLog) (*types.MedicationLog, error) {
	if err := lr.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}
