package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

// Dispatcher is the delivery hook for scheduled notifications. Nothing in
// this package sends push or email; a real channel implements this.
type Dispatcher interface {
	Dispatch(ctx context.Context, notification *types.Notification) error
}

type logDispatcher struct {
	log *logger.Logger
}

// NewLogDispatcher returns the default Dispatcher, which only records that
// a notification came due.
func NewLogDispatcher(log *logger.Logger) Dispatcher {
	return &logDispatcher{log: log.With("service", "LogDispatcher")}
}

func (ld *logDispatcher) Dispatch(ctx context.Context, notification *types.Notification) error {
	ld.log.Info("Notification due",
		"notification_id", notification.ID,
		"user_id", notification.UserID,
		"type", notification.Type,
		"title", notification.Title,
	)
	return nil
}

// NotificationSettingsInput carries a settings update. Nil leaves a field
// as is.
type NotificationSettingsInput struct {
	MedicationReminders  *bool   `json:"medication_reminders"`
	AppointmentReminders *bool   `json:"appointment_reminders"`
	HealthAlerts         *bool   `json:"health_alerts"`
	AIInsights           *bool   `json:"ai_insights"`
	WeeklyReports        *bool   `json:"weekly_reports"`
	EmergencyAlerts      *bool   `json:"emergency_alerts"`
	ReminderTime         *string `json:"reminder_time"`
	ReminderFrequency    *string `json:"reminder_frequency"`
	EmailNotifications   *bool   `json:"email_notifications"`
	PushNotifications    *bool   `json:"push_notifications"`
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error)
	UnreadNotifications(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error)
	// CreateNotification applies the settings gate for the notification's
	// type. The bool reports whether a row was actually created.
	CreateNotification(ctx context.Context, userID uuid.UUID, notification *types.Notification) (*types.Notification, bool, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, notificationID, userID uuid.UUID) error
	GetSettings(ctx context.Context, userID uuid.UUID) (*types.NotificationSettings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, input *NotificationSettingsInput) (*types.NotificationSettings, error)
	// ProcessScheduledNotifications hands due unread scheduled rows to the
	// Dispatcher and returns how many were dispatched.
	ProcessScheduledNotifications(ctx context.Context) (int, error)
}

type notificationService struct {
	log              *logger.Logger
	notificationRepo repos.NotificationRepo
	settingsRepo     repos.NotificationSettingsRepo
	dispatcher       Dispatcher
}

func NewNotificationService(
	log *logger.Logger,
	notificationRepo repos.NotificationRepo,
	settingsRepo repos.NotificationSettingsRepo,
	dispatcher Dispatcher,
) NotificationService {
	return &notificationService{
		log:              log.With("service", "NotificationService"),
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		dispatcher:       dispatcher,
	}
}

func (ns *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	return ns.notificationRepo.GetByUserID(ctx, userID, limit)
}

func (ns *notificationService) UnreadNotifications(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error) {
	return ns.notificationRepo.GetUnread(ctx, userID)
}

func (ns *notificationService) CreateNotification(ctx context.Context, userID uuid.UUID, notification *types.Notification) (*types.Notification, bool, error) {
	notification.UserID = userID
	if vErr := validation.Notification(notification); vErr != nil {
		return nil, false, vErr
	}
	allowed, err := ns.allowed(ctx, userID, notification.Type)
	if err != nil {
		return nil, false, err
	}
	if !allowed {
		ns.log.Debug("Notification suppressed by settings",
			"user_id", userID,
			"type", notification.Type,
		)
		return nil, false, nil
	}
	created, err := ns.notificationRepo.Create(ctx, notification)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (ns *notificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return ns.notificationRepo.MarkRead(ctx, notificationID, userID, time.Now())
}

func (ns *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return ns.notificationRepo.MarkAllRead(ctx, userID, time.Now())
}

func (ns *notificationService) DeleteNotification(ctx context.Context, notificationID, userID uuid.UUID) error {
	return ns.notificationRepo.Delete(ctx, notificationID, userID)
}

// GetSettings lazily creates the default row on first read.
func (ns *notificationService) GetSettings(ctx context.Context, userID uuid.UUID) (*types.NotificationSettings, error) {
	settings, err := ns.settingsRepo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	return ns.settingsRepo.Create(ctx, types.DefaultNotificationSettings(userID))
}

func (ns *notificationService) UpdateSettings(ctx context.Context, userID uuid.UUID, input *NotificationSettingsInput) (*types.NotificationSettings, error) {
	// make sure the row exists before the partial update
	if _, err := ns.GetSettings(ctx, userID); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if input.MedicationReminders != nil {
		updates["medication_reminders"] = *input.MedicationReminders
	}
	if input.AppointmentReminders != nil {
		updates["appointment_reminders"] = *input.AppointmentReminders
	}
	if input.HealthAlerts != nil {
		updates["health_alerts"] = *input.HealthAlerts
	}
	if input.AIInsights != nil {
		updates["ai_insights"] = *input.AIInsights
	}
	if input.WeeklyReports != nil {
		updates["weekly_reports"] = *input.WeeklyReports
	}
	if input.EmergencyAlerts != nil {
		updates["emergency_alerts"] = *input.EmergencyAlerts
	}
	if input.ReminderTime != nil {
		updates["reminder_time"] = *input.ReminderTime
	}
	if input.ReminderFrequency != nil {
		updates["reminder_frequency"] = *input.ReminderFrequency
	}
	if input.EmailNotifications != nil {
		updates["email_notifications"] = *input.EmailNotifications
	}
	if input.PushNotifications != nil {
		updates["push_notifications"] = *input.PushNotifications
	}
	if len(updates) == 0 {
		return ns.settingsRepo.GetByUserID(ctx, userID)
	}
	return ns.settingsRepo.UpdateByUserID(ctx, userID, updates)
}

func (ns *notificationService) ProcessScheduledNotifications(ctx context.Context) (int, error) {
	due, err := ns.notificationRepo.GetScheduledUnread(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	dispatched := 0
	for _, n := range due {
		if dErr := ns.dispatcher.Dispatch(ctx, n); dErr != nil {
			ns.log.Warn("Dispatch failed", "notification_id", n.ID, "error", dErr)
			continue
		}
		dispatched++
	}
	return dispatched, nil
}

// allowed resolves the settings gate for a notification type. Emergency
// alerts bypass settings unconditionally.
func (ns *notificationService) allowed(ctx context.Context, userID uuid.UUID, notificationType string) (bool, error) {
	if notificationType == types.NotificationEmergencyAlert {
		return true, nil
	}
	settings, err := ns.GetSettings(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load notification settings: %w", err)
	}
	switch notificationType {
	case types.NotificationMedicationReminder:
		return settings.MedicationReminders, nil
	case types.NotificationAppointmentReminder:
		return settings.AppointmentReminders, nil
	case types.NotificationHealthAlert:
		return settings.HealthAlerts, nil
	case types.NotificationAIInsight:
		return settings.AIInsights, nil
	case types.NotificationWeeklyReport:
		return settings.WeeklyReports, nil
	default:
		return false, validation.FieldErrors{"type": "unknown notification type"}
	}
}
