package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type HealthMetricService interface {
	ListMetrics(ctx context.Context, userID uuid.UUID, metricType string) ([]*types.HealthMetric, error)
	CreateMetric(ctx context.Context, userID uuid.UUID, metric *types.HealthMetric) (*types.HealthMetric, error)
}

type healthMetricService struct {
	log        *logger.Logger
	metricRepo repos.HealthMetricRepo
}

func NewHealthMetricService(log *logger.Logger, metricRepo repos.HealthMetricRepo) HealthMetricService {
	return &healthMetricService{
		log:        log.With("service", "HealthMetricService"),
		metricRepo: metricRepo,
	}
}

func (hs *healthMetricService) ListMetrics(ctx context.Context, userID uuid.UUID, metricType string) ([]*types.HealthMetric, error) {
	return hs.metricRepo.GetByUserID(ctx, userID, metricType)
}

func (hs *healthMetricService) CreateMetric(ctx context.Context, userID uuid.UUID, metric *types.HealthMetric) (*types.HealthMetric, error) {
	metric.UserID = userID
	if metric.MeasuredAt.IsZero() {
		metric.MeasuredAt = time.Now()
	}
	if vErr := validation.HealthMetric(metric); vErr != nil {
		return nil, vErr
	}
	return hs.metricRepo.Create(ctx, metric)
}
