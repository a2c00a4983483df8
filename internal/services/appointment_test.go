package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos/memstore"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

func newAppointmentFixture(t *testing.T) AppointmentService {
	t.Helper()
	store := memstore.New()
	return NewAppointmentService(logger.NewNop(), memstore.NewAppointmentRepo(store))
}

func TestCreateAppointmentDefaultsStatus(t *testing.T) {
	svc := newAppointmentFixture(t)
	created, err := svc.CreateAppointment(context.Background(), uuid.New(), &types.Appointment{
		Title:           "Annual physical",
		Provider:        "Dr. Chen",
		AppointmentDate: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if created.Status != types.AppointmentScheduled {
		t.Fatalf("expected default scheduled status, got %q", created.Status)
	}
}

func TestCreateAppointmentRejectsBadStatus(t *testing.T) {
	svc := newAppointmentFixture(t)
	_, err := svc.CreateAppointment(context.Background(), uuid.New(), &types.Appointment{
		Title:           "Annual physical",
		Provider:        "Dr. Chen",
		AppointmentDate: time.Now(),
		Status:          "maybe",
	})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fe["status"]; !ok {
		t.Fatalf("expected status error, got %v", fe)
	}
}

func TestListAppointmentsByDate(t *testing.T) {
	ctx := context.Background()
	svc := newAppointmentFixture(t)
	userID := uuid.New()

	day := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	for _, date := range []time.Time{day, day.Add(3 * time.Hour), day.Add(26 * time.Hour)} {
		if _, err := svc.CreateAppointment(ctx, userID, &types.Appointment{
			Title:           "Visit",
			Provider:        "Dr. Chen",
			AppointmentDate: date,
		}); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	onDay, err := svc.ListAppointmentsByDate(ctx, userID, "2025-06-10")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(onDay) != 2 {
		t.Fatalf("expected 2 appointments on the day, got %d", len(onDay))
	}
	for i := 1; i < len(onDay); i++ {
		if onDay[i].AppointmentDate.Before(onDay[i-1].AppointmentDate) {
			t.Fatal("expected ascending appointment dates")
		}
	}

	if _, err := svc.ListAppointmentsByDate(ctx, userID, "June 10"); err == nil {
		t.Fatal("expected error for malformed date")
	}

	all, err := svc.ListAppointments(ctx, userID)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(all))
	}
}

func TestUpdateAppointmentEmptyInputScoping(t *testing.T) {
	ctx := context.Background()
	svc := newAppointmentFixture(t)
	owner := uuid.New()
	created, err := svc.CreateAppointment(ctx, owner, &types.Appointment{
		Title:           "Follow-up",
		Provider:        "Dr. Chen",
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	if _, err := svc.UpdateAppointment(ctx, created.ID, uuid.New(), &AppointmentUpdateInput{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign empty update, got %v", err)
	}

	current, err := svc.UpdateAppointment(ctx, created.ID, owner, &AppointmentUpdateInput{})
	if err != nil {
		t.Fatalf("empty update for owner: %v", err)
	}
	if current.Title != "Follow-up" {
		t.Fatalf("expected the unchanged row back, got %+v", current)
	}
}
