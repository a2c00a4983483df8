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

type NotificationSettingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*types.NotificationSettings, error)
	Create(ctx context.Context, settings *types.NotificationSettings) (*types.NotificationSettings, error)
	UpdateByUserID(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.NotificationSettings, error)
}

type notificationSettingsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationSettingsRepo(db *gorm.DB, baseLog *logger.Logger) NotificationSettingsRepo {
	repoLog := baseLog.With("repo", "NotificationSettingsRepo")
	return &notificationSettingsRepo{db: db, log: repoLog}
}

func (sr *notificationSettingsRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*types.NotificationSettings, error) {
	var result types.NotificationSettings
	if err := sr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (sr *notificationSettingsRepo) Create(ctx context.Context, settings *types.NotificationSettings) (*types.NotificationSettings, error) {
	if err := sr.db.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (sr *notificationSettingsRepo) UpdateByUserID(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.NotificationSettings, error) {
	updates["updated_at"] = time.Now()
	res := sr.db.WithContext(ctx).
		Model(&types.NotificationSettings{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return sr.GetByUserID(ctx, userID)
}
