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

type notificationRepo struct {
	s *Store
}

func NewNotificationRepo(s *Store) repos.NotificationRepo {
	return &notificationRepo{s: s}
}

func (nr *notificationRepo) GetByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	nr.s.mu.RLock()
	defer nr.s.mu.RUnlock()
	var results []*types.Notification
	for _, row := range nr.s.notifications {
		if row.UserID == userID {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (nr *notificationRepo) GetUnread(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error) {
	nr.s.mu.RLock()
	defer nr.s.mu.RUnlock()
	var results []*types.Notification
	for _, row := range nr.s.notifications {
		if row.UserID == userID && !row.IsRead {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (nr *notificationRepo) Create(ctx context.Context, notification *types.Notification) (*types.Notification, error) {
	nr.s.mu.Lock()
	defer nr.s.mu.Unlock()
	notification.ID = ensureID(notification.ID)
	notification.CreatedAt = ensureTime(notification.CreatedAt)
	row := *notification
	nr.s.notifications[notification.ID] = &row
	return notification, nil
}

func (nr *notificationRepo) MarkRead(ctx context.Context, notificationID, userID uuid.UUID, readAt time.Time) error {
	nr.s.mu.Lock()
	defer nr.s.mu.Unlock()
	row, ok := nr.s.notifications[notificationID]
	if !ok || row.UserID != userID {
		return apperr.ErrNotFound
	}
	row.IsRead = true
	at := readAt
	row.ReadAt = &at
	return nil
}

func (nr *notificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) error {
	nr.s.mu.Lock()
	defer nr.s.mu.Unlock()
	for _, row := range nr.s.notifications {
		if row.UserID == userID && !row.IsRead {
			row.IsRead = true
			at := readAt
			row.ReadAt = &at
		}
	}
	return nil
}

func (nr *notificationRepo) Delete(ctx context.Context, notificationID, userID uuid.UUID) error {
	nr.s.mu.Lock()
	defer nr.s.mu.Unlock()
	row, ok := nr.s.notifications[notificationID]
	if !ok || row.UserID != userID {
		return nil
	}
	delete(nr.s.notifications, notificationID)
	return nil
}

func (nr *notificationRepo) GetScheduledUnread(ctx context.Context, now time.Time) ([]*types.Notification, error) {
	nr.s.mu.RLock()
	defer nr.s.mu.RUnlock()
	var results []*types.Notification
	for _, row := range nr.s.notifications {
		if row.IsRead || row.ScheduledFor == nil {
			continue
		}
		if row.ScheduledFor.After(now) {
			continue
		}
		out := *row
		results = append(results, &out)
	}
	return results, nil
}
