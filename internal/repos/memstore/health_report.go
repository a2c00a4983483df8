package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type healthReportRepo struct {
	s *Store
}

func NewHealthReportRepo(s *Store) repos.HealthReportRepo {
	return &healthReportRepo{s: s}
}

func (hr *healthReportRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.HealthReport, error) {
	hr.s.mu.RLock()
	defer hr.s.mu.RUnlock()
	var results []*types.HealthReport
	for _, row := range hr.s.reports {
		if row.UserID == userID {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].GeneratedAt.After(results[j].GeneratedAt)
	})
	return results, nil
}

func (hr *healthReportRepo) Create(ctx context.Context, report *types.HealthReport) (*types.HealthReport, error) {
	hr.s.mu.Lock()
	defer hr.s.mu.Unlock()
	report.ID = ensureID(report.ID)
	report.GeneratedAt = ensureTime(report.GeneratedAt)
	row := *report
	hr.s.reports[report.ID] = &row
	return report, nil
}
