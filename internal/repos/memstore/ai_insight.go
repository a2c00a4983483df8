package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type aiInsightRepo struct {
	s *Store
}

func NewAIInsightRepo(s *Store) repos.AIInsightRepo {
	return &aiInsightRepo{s: s}
}

func (ir *aiInsightRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.AIInsight, error) {
	ir.s.mu.RLock()
	defer ir.s.mu.RUnlock()
	var results []*types.AIInsight
	for _, row := range ir.s.insights {
		if row.UserID == userID {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (ir *aiInsightRepo) Create(ctx context.Context, insight *types.AIInsight) (*types.AIInsight, error) {
	ir.s.mu.Lock()
	defer ir.s.mu.Unlock()
	insight.ID = ensureID(insight.ID)
	insight.CreatedAt = ensureTime(insight.CreatedAt)
	row := *insight
	ir.s.insights[insight.ID] = &row
	return insight, nil
}

func (ir *aiInsightRepo) MarkRead(ctx context.Context, insightID, userID uuid.UUID) error {
	ir.s.mu.Lock()
	defer ir.s.mu.Unlock()
	row, ok := ir.s.insights[insightID]
	if !ok || row.UserID != userID {
		return apperr.ErrNotFound
	}
	row.IsRead = true
	return nil
}
