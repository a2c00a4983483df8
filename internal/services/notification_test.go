package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos/memstore"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type recordingDispatcher struct {
	mu         sync.Mutex
	dispatched []*types.Notification
}

func (rd *recordingDispatcher) Dispatch(ctx context.Context, n *types.Notification) error {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	rd.dispatched = append(rd.dispatched, n)
	return nil
}

func newNotificationFixture(t *testing.T) (NotificationService, *recordingDispatcher) {
	t.Helper()
	store := memstore.New()
	dispatcher := &recordingDispatcher{}
	svc := NewNotificationService(
		logger.NewNop(),
		memstore.NewNotificationRepo(store),
		memstore.NewNotificationSettingsRepo(store),
		dispatcher,
	)
	return svc, dispatcher
}

func TestSettingsLazyDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationFixture(t)
	userID := uuid.New()

	settings, err := svc.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if !settings.MedicationReminders || !settings.EmergencyAlerts {
		t.Fatalf("expected reminder toggles on by default, got %+v", settings)
	}
	if settings.WeeklyReports {
		t.Fatal("weekly reports should default off")
	}
	if settings.ReminderTime != "09:00" || settings.ReminderFrequency != "daily" {
		t.Fatalf("unexpected reminder defaults: %+v", settings)
	}

	// second read returns the same row, not a fresh default
	again, err := svc.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("get settings again: %v", err)
	}
	if again.ID != settings.ID {
		t.Fatal("expected settings row to persist between reads")
	}
}

func TestNotificationGateSuppression(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationFixture(t)
	userID := uuid.New()

	off := false
	if _, err := svc.UpdateSettings(ctx, userID, &NotificationSettingsInput{
		MedicationReminders: &off,
	}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	created, stored, err := svc.CreateNotification(ctx, userID, &types.Notification{
		Type:    types.NotificationMedicationReminder,
		Title:   "Take your dose",
		Message: "Lisinopril 10mg",
	})
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}
	if stored || created != nil {
		t.Fatal("expected suppression when the toggle is off")
	}

	// other types still pass
	_, stored, err = svc.CreateNotification(ctx, userID, &types.Notification{
		Type:    types.NotificationHealthAlert,
		Title:   "Elevated reading",
		Message: "Blood pressure above range",
	})
	if err != nil {
		t.Fatalf("create health alert: %v", err)
	}
	if !stored {
		t.Fatal("health alerts should not be suppressed by the medication toggle")
	}
}

func TestEmergencyAlertBypassesSettings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationFixture(t)
	userID := uuid.New()

	off := false
	if _, err := svc.UpdateSettings(ctx, userID, &NotificationSettingsInput{
		EmergencyAlerts: &off,
	}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	_, stored, err := svc.CreateNotification(ctx, userID, &types.Notification{
		Type:    types.NotificationEmergencyAlert,
		Title:   "Emergency",
		Message: "Call your provider now",
	})
	if err != nil {
		t.Fatalf("create emergency alert: %v", err)
	}
	if !stored {
		t.Fatal("emergency alerts must always be delivered")
	}
}

func TestCreateNotificationRejectsUnknownType(t *testing.T) {
	svc, _ := newNotificationFixture(t)
	_, _, err := svc.CreateNotification(context.Background(), uuid.New(), &types.Notification{
		Type:    "smoke_signal",
		Title:   "t",
		Message: "m",
	})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors for unknown type, got %v", err)
	}
}

func TestMarkReadAndUnread(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotificationFixture(t)
	userID := uuid.New()

	created, _, err := svc.CreateNotification(ctx, userID, &types.Notification{
		Type:    types.NotificationHealthAlert,
		Title:   "Alert",
		Message: "m",
	})
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}

	unread, err := svc.UnreadNotifications(ctx, userID)
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected 1 unread, got %d", len(unread))
	}

	if err := svc.MarkRead(ctx, created.ID, userID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	unread, err = svc.UnreadNotifications(ctx, userID)
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("expected 0 unread after mark read, got %d", len(unread))
	}

	all, err := svc.ListNotifications(ctx, userID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || !all[0].IsRead || all[0].ReadAt == nil {
		t.Fatalf("expected read row with read_at set, got %+v", all[0])
	}
}

func TestProcessScheduledNotifications(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newNotificationFixture(t)
	userID := uuid.New()

	due := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	if _, _, err := svc.CreateNotification(ctx, userID, &types.Notification{
		Type: types.NotificationMedicationReminder, Title: "Due", Message: "m",
		ScheduledFor: &due,
	}); err != nil {
		t.Fatalf("create due notification: %v", err)
	}
	if _, _, err := svc.CreateNotification(ctx, userID, &types.Notification{
		Type: types.NotificationMedicationReminder, Title: "Later", Message: "m",
		ScheduledFor: &future,
	}); err != nil {
		t.Fatalf("create future notification: %v", err)
	}

	sent, err := svc.ProcessScheduledNotifications(ctx)
	if err != nil {
		t.Fatalf("process scheduled: %v", err)
	}
	if sent != 1 {
		t.Fatalf("expected 1 dispatched notification, got %d", sent)
	}
	if len(dispatcher.dispatched) != 1 || dispatcher.dispatched[0].Title != "Due" {
		t.Fatalf("expected the due notification to be dispatched, got %d", len(dispatcher.dispatched))
	}
}
