package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type symptomRepo struct {
	s *Store
}

func NewSymptomRepo(s *Store) repos.SymptomRepo {
	return &symptomRepo{s: s}
}

func (sr *symptomRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Symptom, error) {
	sr.s.mu.RLock()
	defer sr.s.mu.RUnlock()
	var results []*types.Symptom
	for _, row := range sr.s.symptoms {
		if row.UserID == userID {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].OccurredAt.After(results[j].OccurredAt)
	})
	return results, nil
}

func (sr *symptomRepo) GetByID(ctx context.Context, symptomID uuid.UUID) (*types.Symptom, error) {
	sr.s.mu.RLock()
	defer sr.s.mu.RUnlock()
	row, ok := sr.s.symptoms[symptomID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (sr *symptomRepo) Create(ctx context.Context, symptom *types.Symptom) (*types.Symptom, error) {
	sr.s.mu.Lock()
	defer sr.s.mu.Unlock()
	symptom.ID = ensureID(symptom.ID)
	symptom.CreatedAt = ensureTime(symptom.CreatedAt)
	row := *symptom
	sr.s.symptoms[symptom.ID] = &row
	return symptom, nil
}

func (sr *symptomRepo) Update(ctx context.Context, symptomID, userID uuid.UUID, updates map[string]any) (*types.Symptom, error) {
	sr.s.mu.Lock()
	defer sr.s.mu.Unlock()
	row, ok := sr.s.symptoms[symptomID]
	if !ok || row.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	applyUpdates(row, updates)
	out := *row
	return &out, nil
}

func (sr *symptomRepo) Delete(ctx context.Context, symptomID, userID uuid.UUID) error {
	sr.s.mu.Lock()
	defer sr.s.mu.Unlock()
	row, ok := sr.s.symptoms[symptomID]
	if !ok || row.UserID != userID {
		return nil
	}
	delete(sr.s.symptoms, symptomID)
	return nil
}
