package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type notificationSettingsRepo struct {
	s *Store
}

func NewNotificationSettingsRepo(s *Store) repos.NotificationSettingsRepo {
	return &notificationSettingsRepo{s: s}
}

func (sr *notificationSettingsRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*types.NotificationSettings, error) {
	sr.s.mu.RLock()
	defer sr.s.mu.RUnlock()
	for _, row := range sr.s.notificationSettings {
		if row.UserID == userID {
			out := *row
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (sr *notificationSettingsRepo) Create(ctx context.Context, settings *types.NotificationSettings) (*types.NotificationSettings, error) {
	sr.s.mu.Lock()
	defer sr.s.mu.Unlock()
	settings.ID = ensureID(settings.ID)
	settings.CreatedAt = ensureTime(settings.CreatedAt)
	settings.UpdatedAt = ensureTime(settings.UpdatedAt)
	row := *settings
	sr.s.notificationSettings[settings.ID] = &row
	return settings, nil
}

func (sr *notificationSettingsRepo) UpdateByUserID(ctx context.Context, userID uuid.UUID, updates map[string]any) (*types.NotificationSettings, error) {
	sr.s.mu.Lock()
	defer sr.s.mu.Unlock()
	for _, row := range sr.s.notificationSettings {
		if row.UserID == userID {
			applyUpdates(row, updates)
			row.UpdatedAt = time.Now()
			out := *row
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}
