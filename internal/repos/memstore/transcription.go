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

type transcriptionRepo struct {
	s *Store
}

func NewTranscriptionRepo(s *Store) repos.TranscriptionRepo {
	return &transcriptionRepo{s: s}
}

func (tr *transcriptionRepo) collect(keep func(*types.Transcription) bool) []*types.Transcription {
	var results []*types.Transcription
	for _, row := range tr.s.transcriptions {
		if keep(row) {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].RecordedAt.After(results[j].RecordedAt)
	})
	return results
}

func (tr *transcriptionRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Transcription, error) {
	tr.s.mu.RLock()
	defer tr.s.mu.RUnlock()
	return tr.collect(func(t *types.Transcription) bool {
		return t.UserID == userID
	}), nil
}

func (tr *transcriptionRepo) GetByID(ctx context.Context, transcriptionID uuid.UUID) (*types.Transcription, error) {
	tr.s.mu.RLock()
	defer tr.s.mu.RUnlock()
	row, ok := tr.s.transcriptions[transcriptionID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (tr *transcriptionRepo) GetByDate(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*types.Transcription, error) {
	tr.s.mu.RLock()
	defer tr.s.mu.RUnlock()
	return tr.collect(func(t *types.Transcription) bool {
		return t.UserID == userID &&
			!t.RecordedAt.Before(dayStart) &&
			t.RecordedAt.Before(dayEnd)
	}), nil
}

func (tr *transcriptionRepo) Create(ctx context.Context, transcription *types.Transcription) (*types.Transcription, error) {
	tr.s.mu.Lock()
	defer tr.s.mu.Unlock()
	transcription.ID = ensureID(transcription.ID)
	transcription.CreatedAt = ensureTime(transcription.CreatedAt)
	transcription.UpdatedAt = ensureTime(transcription.UpdatedAt)
	row := *transcription
	tr.s.transcriptions[transcription.ID] = &row
	return transcription, nil
}

func (tr *transcriptionRepo) Update(ctx context.Context, transcriptionID, userID uuid.UUID, updates map[string]any) (*types.Transcription, error) {
	tr.s.mu.Lock()
	defer tr.s.mu.Unlock()
	row, ok := tr.s.transcriptions[transcriptionID]
	if !ok || row.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	applyUpdates(row, updates)
	row.UpdatedAt = time.Now()
	out := *row
	return &out, nil
}

func (tr *transcriptionRepo) Delete(ctx context.Context, transcriptionID, userID uuid.UUID) error {
	tr.s.mu.Lock()
	defer tr.s.mu.Unlock()
	row, ok := tr.s.transcriptions[transcriptionID]
	if !ok || row.UserID != userID {
		return nil
	}
	delete(tr.s.transcriptions, transcriptionID)
	return nil
}
