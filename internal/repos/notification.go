package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type NotificationRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error)
	GetUnread(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error)
	Create(ctx context.Context, notification *types.Notification) (*types.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID, readAt time.Time) error
	MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) error
	Delete(ctx context.Context, notificationID, userID uuid.UUID) error
	GetScheduledUnread(ctx context.Context, now time.Time) ([]*types.Notification, error)
}

type notificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	repoLog := baseLog.With("repo", "NotificationRepo")
	return &notificationRepo{db: db, log: repoLog}
}

func (nr *notificationRepo) GetByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var results []*types.Notification
	if err := nr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *notificationRepo) GetUnread(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error) {
	var results []*types.Notification
	if err := nr.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *notificationRepo) Create(ctx context.Context, notification *types.Notification) (*types.Notification, error) {
	if err := nr.db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkRead sets is_read and read_at together; read_at is never set on its own.
func (nr *notificationRepo) MarkRead(ctx context.Context, notificationID, userID uuid.UUID, readAt time.Time) error {
	res := nr.db.WithContext(ctx).
		Model(&types.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]any{"is_read": true, "read_at": readAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (nr *notificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) error {
	return nr.db.WithContext(ctx).
		Model(&types.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": readAt}).Error
}

func (nr *notificationRepo) Delete(ctx context.Context, notificationID, userID uuid.UUID) error {
	return nr.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&types.Notification{}).Error
}

// GetScheduledUnread returns unread rows whose scheduled_for has passed.
// Feeds the dispatch seam; nothing is sent from here.
func (nr *notificationRepo) GetScheduledUnread(ctx context.Context, now time.Time) ([]*types.Notification, error) {
	var results []*types.Notification
	if err := nr.db.WithContext(ctx).
		Where("scheduled_for <= ? AND is_read = ?", now, false).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
