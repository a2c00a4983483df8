package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type HealthMetricRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID, metricType string) ([]*types.HealthMetric, error)
	Create(ctx context.Context, metric *types.HealthMetric) (*types.HealthMetric, error)
}

type healthMetricRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthMetricRepo(db *gorm.DB, baseLog *logger.Logger) HealthMetricRepo {
	repoLog := baseLog.With("repo", "HealthMetricRepo")
	return &healthMetricRepo{db: db, log: repoLog}
}

// GetByUserID filters by metric type when metricType is non-empty.
func (hr *healthMetricRepo) GetByUserID(ctx context.Context, userID uuid.UUID, metricType string) ([]*types.HealthMetric, error) {
	var results []*types.HealthMetric
	q := hr.db.WithContext(ctx).Where("user_id = ?", userID)
	if metricType != "" {
		q = q.Where("type = ?", metricType)
	}
	if err := q.Order("measured_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *healthMetricRepo) Create(ctx context.Context, metric *types.HealthMetric) (*types.HealthMetric, error) {
	if err := hr.db.WithContext(ctx).Create(metric).Error; err != nil {
		return nil, err
	}
	return metric, nil
}
