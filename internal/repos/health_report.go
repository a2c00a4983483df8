package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type HealthReportRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.HealthReport, error)
	Create(ctx context.Context, report *types.HealthReport) (*types.HealthReport, error)
}

type healthReportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthReportRepo(db *gorm.DB, baseLog *logger.Logger) HealthReportRepo {
	repoLog := baseLog.With("repo", "HealthReportRepo")
	return &healthReportRepo{db: db, log: repoLog}
}

func (hr *healthReportRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.HealthReport, error) {
	var results []*types.HealthReport
	if err := hr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *healthReportRepo) Create(ctx context.Context, report *types.HealthReport) (*types.HealthReport, error) {
	if err := hr.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}
