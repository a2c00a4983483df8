package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type medicationRepo struct {
	s *Store
}

func NewMedicationRepo(s *Store) repos.MedicationRepo {
	return &medicationRepo{s: s}
}

func (mr *medicationRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error) {
	mr.s.mu.RLock()
	defer mr.s.mu.RUnlock()
	var results []*types.Medication
	for _, row := range mr.s.medications {
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

func (mr *medicationRepo) GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error) {
	mr.s.mu.RLock()
	defer mr.s.mu.RUnlock()
	var results []*types.Medication
	for _, row := range mr.s.medications {
		if row.UserID == userID && row.IsActive {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (mr *medicationRepo) GetByID(ctx context.Context, medicationID uuid.UUID) (*types.Medication, error) {
	mr.s.mu.RLock()
	defer mr.s.mu.RUnlock()
	row, ok := mr.s.medications[medicationID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (mr *medicationRepo) GetByIDs(ctx context.Context, medicationIDs []uuid.UUID) ([]*types.Medication, error) {
	mr.s.mu.RLock()
	defer mr.s.mu.RUnlock()
	var results []*types.Medication
	for _, id := range medicationIDs {
		if row, ok := mr.s.medications[id]; ok {
			out := *row
			results = append(results, &out)
		}
	}
	return results, nil
}

func (mr *medicationRepo) Create(ctx context.Context, medication *types.Medication) (*types.Medication, error) {
	mr.s.mu.Lock()
	defer mr.s.mu.Unlock()
	medication.ID = ensureID(medication.ID)
	medication.CreatedAt = ensureTime(medication.CreatedAt)
	medication.UpdatedAt = ensureTime(medication.UpdatedAt)
	row := *medication
	mr.s.medications[medication.ID] = &row
	return medication, nil
}

func (mr *medicationRepo) Update(ctx context.Context, medicationID, userID uuid.UUID, updates map[string]any) (*types.Medication, error) {
	mr.s.mu.Lock()
	defer mr.s.mu.Unlock()
	row, ok := mr.s.medications[medicationID]
	if !ok || row.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	applyUpdates(row, updates)
	row.UpdatedAt = time.Now()
	out := *row
	return &out, nil
}

func (mr *medicationRepo) Delete(ctx context.Context, medicationID, userID uuid.UUID) error {
	mr.s.mu.Lock()
	defer mr.s.mu.Unlock()
	row, ok := mr.s.medications[medicationID]
	if !ok || row.UserID != userID {
		return nil
	}
	delete(mr.s.medications, medicationID)
	return nil
}
