package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type healthProfileRepo struct {
	s *Store
}

func NewHealthProfileRepo(s *Store) repos.HealthProfileRepo {
	return &healthProfileRepo{s: s}
}

func (hr *healthProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error) {
	hr.s.mu.RLock()
	defer hr.s.mu.RUnlock()
	for _, row := range hr.s.profiles {
		if row.UserID == userID {
			out := *row
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (hr *healthProfileRepo) Create(ctx context.Context, profile *types.HealthProfile) (*types.HealthProfile, error) {
	hr.s.mu.Lock()
	defer hr.s.mu.Unlock()
	profile.ID = ensureID(profile.ID)
	profile.CreatedAt = ensureTime(profile.CreatedAt)
	profile.UpdatedAt = ensureTime(profile.UpdatedAt)
	row := *profile
	hr.s.profiles[profile.ID] = &row
	return profile, nil
}

func (hr *healthProfileRepo) UpdateByUserID(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.HealthProfile, error) {
	hr.s.mu.Lock()
	defer hr.s.mu.Unlock()
	for _, row := range hr.s.profiles {
		if row.UserID == userID {
			applyUpdates(row, updates)
			row.UpdatedAt = time.Now()
			out := *row
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}
