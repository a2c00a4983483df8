package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type AIInsightRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.AIInsight, error)
	Create(ctx context.Context, insight *types.AIInsight) (*types.AIInsight, error)
	MarkRead(ctx context.Context, insightID, userID uuid.UUID) error
}

type aiInsightRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAIInsightRepo(db *gorm.DB, baseLog *logger.Logger) AIInsightRepo {
	repoLog := baseLog.With("repo", "AIInsightRepo")
	return &aiInsightRepo{db: db, log: repoLog}
}

func (ir *aiInsightRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.AIInsight, error) {
	var results []*types.AIInsight
	if err := ir.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *aiInsightRepo) Create(ctx context.Context, insight *types.AIInsight) (*types.AIInsight, error) {
	if err := ir.db.WithContext(ctx).Create(insight).Error; err != nil {
		return nil, err
	}
	return insight, nil
}

func (ir *aiInsightRepo) MarkRead(ctx context.Context, insightID, userID uuid.UUID) error {
	res := ir.db.WithContext(ctx).
		Model(&types.AIInsight{}).
		Where("id = ? AND user_id = ?", insightID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
