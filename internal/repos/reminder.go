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

type ReminderRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Reminder, error)
	GetDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*types.Reminder, error)
	Create(ctx context.Context, reminder *types.Reminder) (*types.Reminder, error)
	MarkCompleted(ctx context.Context, reminderID, userID uuid.UUID) error
}

type reminderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReminderRepo(db *gorm.DB, baseLog *logger.Logger) ReminderRepo {
	repoLog := baseLog.With("repo", "ReminderRepo")
	return &reminderRepo{db: db, log: repoLog}
}

func (rr *reminderRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Reminder, error) {
	var results []*types.Reminder
	if err := rr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_for").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetDueBetween returns incomplete reminders scheduled inside [start, end].
func (rr *reminderRepo) GetDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*types.Reminder, error) {
	var results []*types.Reminder
	if err := rr.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_for >= ? AND scheduled_for <= ? AND is_completed = ?", userID, start, end, false).
		Order("scheduled_for").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *reminderRepo) Create(ctx context.Context, reminder *types.Reminder) (*types.Reminder, error) {
	if err := rr.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (rr *reminderRepo) MarkCompleted(ctx context.Context, reminderID, userID uuid.UUID) error {
	res := rr.db.WithContext(ctx).
		Model(&types.Reminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Update("is_completed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
