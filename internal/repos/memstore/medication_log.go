package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type medicationLogRepo struct {
	s *Store
}

func NewMedicationLogRepo(s *Store) repos.MedicationLogRepo {
	return &medicationLogRepo{s: s}
}

func (lr *medicationLogRepo) GetByUserID(ctx context.Context, userID uuid.UUID, medicationID *uuid.UUID) ([]*types.MedicationLog, error) {
	lr.s.mu.RLock()
	defer lr.s.mu.RUnlock()
	var results []*types.MedicationLog
	for _, row := range lr.s.medicationLogs {
		if row.UserID != userID {
			continue
		}
		if medicationID != nil && row.MedicationID != *medicationID {
			continue
		}
		out := *row
		results = append(results, &out)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].TakenAt.After(results[j].TakenAt)
	})
	return results, nil
}

func (lr *medicationLogRepo) GetSince(ctx context.Context, userID, medicationID uuid.UUID, since time.Time) ([]*types.MedicationLog, error) {
	lr.s.mu.RLock()
	defer lr.s.mu.RUnlock()
	var results []*types.MedicationLog
	for _, row := range lr.s.medicationLogs {
		if row.UserID != userID || row.MedicationID != medicationID {
			continue
		}
		if row.TakenAt.Before(since) {
			continue
		}
		out := *row
		results = append(results, &out)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].TakenAt.After(results[j].TakenAt)
	})
	return results, nil
}

func (lr *medicationLogRepo) Create(ctx context.Context, log *types.MedicationLog) (*types.MedicationLog, error) {
	lr.s.mu.Lock()
	defer lr.s.mu.Unlock()
	log.ID = ensureID(log.ID)
	log.CreatedAt = ensureTime(log.CreatedAt)
	row := *log
	lr.s.medicationLogs[log.ID] = &row
	return log, nil
}
