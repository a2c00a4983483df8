package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/repos/memstore"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type dashboardFixture struct {
	svc             DashboardService
	userRepo        repos.UserRepo
	medicationRepo  repos.MedicationRepo
	logRepo         repos.MedicationLogRepo
	symptomRepo     repos.SymptomRepo
	appointmentRepo repos.AppointmentRepo
	reminderRepo    repos.ReminderRepo
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	store := memstore.New()
	f := &dashboardFixture{
		userRepo:        memstore.NewUserRepo(store),
		medicationRepo:  memstore.NewMedicationRepo(store),
		logRepo:         memstore.NewMedicationLogRepo(store),
		symptomRepo:     memstore.NewSymptomRepo(store),
		appointmentRepo: memstore.NewAppointmentRepo(store),
		reminderRepo:    memstore.NewReminderRepo(store),
	}
	f.svc = NewDashboardService(
		logger.NewNop(),
		f.userRepo,
		f.medicationRepo,
		f.logRepo,
		f.symptomRepo,
		f.appointmentRepo,
		f.reminderRepo,
	)
	return f
}

func (f *dashboardFixture) seedUser(t *testing.T, createdAt time.Time) uuid.UUID {
	t.Helper()
	user, err := f.userRepo.Create(context.Background(), &types.User{
		Email:     "dash@example.com",
		FirstName: "Dash",
		LastName:  "Board",
		Password:  "hashed",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)
	userID := f.seedUser(t, time.Now().Add(-10*24*time.Hour))

	for i, active := range []bool{true, true, false} {
		if _, err := f.medicationRepo.Create(ctx, &types.Medication{
			UserID: userID, Name: "Med", Dosage: "1mg", Frequency: "daily",
			StartDate: time.Now(), IsActive: active,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("create medication: %v", err)
		}
	}
	for _, offset := range []time.Duration{24 * time.Hour, -24 * time.Hour} {
		if _, err := f.appointmentRepo.Create(ctx, &types.Appointment{
			UserID: userID, Title: "Visit", Provider: "Dr. Chen",
			AppointmentDate: time.Now().Add(offset), Status: types.AppointmentScheduled,
		}); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	stats, err := f.svc.GetStats(ctx, userID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.DaysTracking != 10 {
		t.Fatalf("expected 10 days tracking, got %d", stats.DaysTracking)
	}
	if stats.MedicationsActive != 2 {
		t.Fatalf("expected 2 active medications, got %d", stats.MedicationsActive)
	}
	if stats.UpcomingAppointments != 1 {
		t.Fatalf("expected 1 upcoming appointment, got %d", stats.UpcomingAppointments)
	}
}

func TestTimelineMergeAndOrder(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)
	userID := f.seedUser(t, time.Now().Add(-30*24*time.Hour))
	now := time.Now()

	if _, err := f.symptomRepo.Create(ctx, &types.Symptom{
		UserID: userID, Name: "Headache", Severity: 6,
		OccurredAt: now.Add(-1 * time.Hour),
	}); err != nil {
		t.Fatalf("create symptom: %v", err)
	}
	med, err := f.medicationRepo.Create(ctx, &types.Medication{
		UserID: userID, Name: "Lisinopril", Dosage: "10mg", Frequency: "daily",
		StartDate: now.Add(-10 * 24 * time.Hour), IsActive: true,
	})
	if err != nil {
		t.Fatalf("create medication: %v", err)
	}
	if _, err := f.logRepo.Create(ctx, &types.MedicationLog{
		UserID: userID, MedicationID: med.ID, TakenAt: now.Add(-2 * time.Hour),
	}); err != nil {
		t.Fatalf("create log: %v", err)
	}
	if _, err := f.appointmentRepo.Create(ctx, &types.Appointment{
		UserID: userID, Title: "Checkup", Provider: "Dr. Chen", Location: "Clinic",
		AppointmentDate: now.Add(-3 * time.Hour), Status: types.AppointmentCompleted,
	}); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	events, err := f.svc.GetTimeline(ctx, userID, 0)
	if err != nil {
		t.Fatalf("get timeline: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date.After(events[i-1].Date) {
			t.Fatalf("expected descending dates, got %v before %v", events[i-1].Date, events[i].Date)
		}
	}
	if events[0].Type != TimelineSymptom {
		t.Fatalf("expected symptom first, got %s", events[0].Type)
	}
	if events[1].Type != TimelineMedication || events[1].Title != "Lisinopril" {
		t.Fatalf("expected medication log second, got %+v", events[1])
	}
	if events[2].Type != TimelineAppointment {
		t.Fatalf("expected appointment third, got %s", events[2].Type)
	}
}

func TestTimelineSkipsLogsOfDeletedMedications(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)
	userID := f.seedUser(t, time.Now().Add(-30*24*time.Hour))
	now := time.Now()

	med, err := f.medicationRepo.Create(ctx, &types.Medication{
		UserID: userID, Name: "Old med", Dosage: "5mg", Frequency: "daily",
		StartDate: now.Add(-20 * 24 * time.Hour), IsActive: true,
	})
	if err != nil {
		t.Fatalf("create medication: %v", err)
	}
	if _, err := f.logRepo.Create(ctx, &types.MedicationLog{
		UserID: userID, MedicationID: med.ID, TakenAt: now.Add(-time.Hour),
	}); err != nil {
		t.Fatalf("create log: %v", err)
	}
	if err := f.medicationRepo.Delete(ctx, med.ID, userID); err != nil {
		t.Fatalf("delete medication: %v", err)
	}

	events, err := f.svc.GetTimeline(ctx, userID, 0)
	if err != nil {
		t.Fatalf("get timeline: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected orphaned log to be skipped, got %d events", len(events))
	}
}

func TestTimelineLimit(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)
	userID := f.seedUser(t, time.Now().Add(-30*24*time.Hour))
	now := time.Now()

	for i := 0; i < 15; i++ {
		if _, err := f.symptomRepo.Create(ctx, &types.Symptom{
			UserID: userID, Name: "Fatigue", Severity: 3,
			OccurredAt: now.Add(-time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("create symptom: %v", err)
		}
	}

	events, err := f.svc.GetTimeline(ctx, userID, 0)
	if err != nil {
		t.Fatalf("get timeline: %v", err)
	}
	if len(events) != 10 {
		t.Fatalf("expected default limit of 10, got %d", len(events))
	}

	events, err = f.svc.GetTimeline(ctx, userID, 4)
	if err != nil {
		t.Fatalf("get timeline: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
}

func TestTodayReminders(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)
	userID := f.seedUser(t, time.Now().Add(-30*24*time.Hour))
	now := time.Now()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if _, err := f.reminderRepo.Create(ctx, &types.Reminder{
		UserID: userID, Type: "medication", Title: "Morning dose",
		ScheduledFor: dayStart.Add(9 * time.Hour),
	}); err != nil {
		t.Fatalf("create reminder: %v", err)
	}
	if _, err := f.reminderRepo.Create(ctx, &types.Reminder{
		UserID: userID, Type: "medication", Title: "Tomorrow",
		ScheduledFor: dayStart.Add(33 * time.Hour),
	}); err != nil {
		t.Fatalf("create reminder: %v", err)
	}

	reminders, err := f.svc.TodayReminders(ctx, userID)
	if err != nil {
		t.Fatalf("today reminders: %v", err)
	}
	if len(reminders) != 1 || reminders[0].Title != "Morning dose" {
		t.Fatalf("expected only today's reminder, got %d", len(reminders))
	}
}
