package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type healthMetricRepo struct {
	s *Store
}

func NewHealthMetricRepo(s *Store) repos.HealthMetricRepo {
	return &healthMetricRepo{s: s}
}

func (hr *healthMetricRepo) GetByUserID(ctx context.Context, userID uuid.UUID, metricType string) ([]*types.HealthMetric, error) {
	hr.s.mu.RLock()
	defer hr.s.mu.RUnlock()
	var results []*types.HealthMetric
	for _, row := range hr.s.metrics {
		if row.UserID != userID {
			continue
		}
		if metricType != "" && row.Type != metricType {
			continue
		}
		out := *row
		results = append(results, &out)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].MeasuredAt.After(results[j].MeasuredAt)
	})
	return results, nil
}

func (hr *healthMetricRepo) Create(ctx context.Context, metric *types.HealthMetric) (*types.HealthMetric, error) {
	hr.s.mu.Lock()
	defer hr.s.mu.Unlock()
	metric.ID = ensureID(metric.ID)
	metric.CreatedAt = ensureTime(metric.CreatedAt)
	row := *metric
	hr.s.metrics[metric.ID] = &row
	return metric, nil
}
