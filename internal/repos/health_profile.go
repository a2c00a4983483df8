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

type HealthProfileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error)
	Create(ctx context.Context, profile *types.HealthProfile) (*types.HealthProfile, error)
	UpdateByUserID(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.HealthProfile, error)
}

type healthProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthProfileRepo(db *gorm.DB, baseLog *logger.Logger) HealthProfileRepo {
	repoLog := baseLog.With("repo", "HealthProfileRepo")
	return &healthProfileRepo{db: db, log: repoLog}
}

func (hr *healthProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error) {
	var result types.HealthProfile
	if err := hr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (hr *healthProfileRepo) Create(ctx context.Context, profile *types.HealthProfile) (*types.HealthProfile, error) {
	if err := hr.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (hr *healthProfileRepo) UpdateByUserID(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.HealthProfile, error) {
	updates["updated_at"] = time.Now()
	res := hr.db.WithContext(ctx).
		Model(&types.HealthProfile{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return hr.GetByUserID(ctx, userID)
}
