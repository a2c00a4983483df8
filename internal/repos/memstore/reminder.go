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

type reminderRepo struct {
	s *Store
}

func NewReminderRepo(s *Store) repos.ReminderRepo {
	return &reminderRepo{s: s}
}

func (rr *reminderRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Reminder, error) {
	rr.s.mu.RLock()
	defer rr.s.mu.RUnlock()
	var results []*types.Reminder
	for _, row := range rr.s.reminders {
		if row.UserID == userID {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ScheduledFor.Before(results[j].ScheduledFor)
	})
	return results, nil
}

func (rr *reminderRepo) GetDueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*types.Reminder, error) {
	rr.s.mu.RLock()
	defer rr.s.mu.RUnlock()
	var results []*types.Reminder
	for _, row := range rr.s.reminders {
		if row.UserID != userID || row.IsCompleted {
			continue
		}
		if row.ScheduledFor.Before(start) || row.ScheduledFor.After(end) {
			continue
		}
		out := *row
		results = append(results, &out)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ScheduledFor.Before(results[j].ScheduledFor)
	})
	return results, nil
}

func (rr *reminderRepo) Create(ctx context.Context, reminder *types.Reminder) (*types.Reminder, error) {
	rr.s.mu.Lock()
	defer rr.s.mu.Unlock()
	reminder.ID = ensureID(reminder.ID)
	reminder.CreatedAt = ensureTime(reminder.CreatedAt)
	row := *reminder
	rr.s.reminders[reminder.ID] = &row
	return reminder, nil
}

func (rr *reminderRepo) MarkCompleted(ctx context.Context, reminderID, userID uuid.UUID) error {
	rr.s.mu.Lock()
	defer rr.s.mu.Unlock()
	row, ok := rr.s.reminders[reminderID]
	if !ok || row.UserID != userID {
		return apperr.ErrNotFound
	}
	row.IsCompleted = true
	return nil
}
