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
)

func newMedicationFixture(t *testing.T) (MedicationService, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	svc := NewMedicationService(
		logger.NewNop(),
		memstore.NewMedicationRepo(store),
		memstore.NewMedicationLogRepo(store),
	)
	return svc, store
}

func createMedication(t *testing.T, svc MedicationService, userID uuid.UUID, name string) *types.Medication {
	t.Helper()
	med, err := svc.CreateMedication(context.Background(), userID, &types.Medication{
		Name:      name,
		Dosage:    "10mg",
		Frequency: "daily",
		StartDate: time.Now().Add(-30 * 24 * time.Hour),
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create medication: %v", err)
	}
	return med
}

func TestLogIntakeRequiresOwnedMedication(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMedicationFixture(t)
	owner := uuid.New()
	other := uuid.New()
	med := createMedication(t, svc, owner, "Lisinopril")

	if _, err := svc.LogIntake(ctx, other, med.ID, &types.MedicationLog{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign medication, got %v", err)
	}
	if _, err := svc.LogIntake(ctx, owner, uuid.New(), &types.MedicationLog{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing medication, got %v", err)
	}

	log, err := svc.LogIntake(ctx, owner, med.ID, &types.MedicationLog{})
	if err != nil {
		t.Fatalf("log intake: %v", err)
	}
	if log.TakenAt.IsZero() {
		t.Fatal("expected taken_at to default to now")
	}
}

func TestAdherenceCalculation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMedicationFixture(t)
	owner := uuid.New()
	med := createMedication(t, svc, owner, "Metformin")

	now := time.Now()
	// five taken doses inside the trailing week
	for i := 0; i < 5; i++ {
		if _, err := svc.LogIntake(ctx, owner, med.ID, &types.MedicationLog{
			TakenAt: now.Add(-time.Duration(i*24) * time.Hour),
		}); err != nil {
			t.Fatalf("log intake: %v", err)
		}
	}
	// a missed dose does not count toward adherence
	if _, err := svc.LogIntake(ctx, owner, med.ID, &types.MedicationLog{
		TakenAt: now.Add(-36 * time.Hour),
		Missed:  true,
	}); err != nil {
		t.Fatalf("log missed intake: %v", err)
	}
	// an old dose falls outside the window
	if _, err := svc.LogIntake(ctx, owner, med.ID, &types.MedicationLog{
		TakenAt: now.Add(-10 * 24 * time.Hour),
	}); err != nil {
		t.Fatalf("log old intake: %v", err)
	}

	rate, err := svc.Adherence(ctx, owner, med.ID, 7)
	if err != nil {
		t.Fatalf("adherence: %v", err)
	}
	// 5 of 7 days, rounded
	if rate != 71 {
		t.Fatalf("expected adherence 71, got %d", rate)
	}

	// days <= 0 falls back to the weekly window
	fallback, err := svc.Adherence(ctx, owner, med.ID, 0)
	if err != nil {
		t.Fatalf("adherence with default days: %v", err)
	}
	if fallback != rate {
		t.Fatalf("expected default window to match 7 days, got %d vs %d", fallback, rate)
	}
}

func TestAdherenceFullWeekCapsAtHundred(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMedicationFixture(t)
	owner := uuid.New()
	med := createMedication(t, svc, owner, "Sertraline")

	now := time.Now()
	for i := 0; i < 7; i++ {
		if _, err := svc.LogIntake(ctx, owner, med.ID, &types.MedicationLog{
			TakenAt: now.Add(-time.Duration(i*24) * time.Hour),
		}); err != nil {
			t.Fatalf("log intake: %v", err)
		}
	}
	rate, err := svc.Adherence(ctx, owner, med.ID, 7)
	if err != nil {
		t.Fatalf("adherence: %v", err)
	}
	if rate != 100 {
		t.Fatalf("expected adherence 100, got %d", rate)
	}
}

func TestUpdateMedicationScoping(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMedicationFixture(t)
	owner := uuid.New()
	med := createMedication(t, svc, owner, "Atorvastatin")

	dosage := "40mg"
	updated, err := svc.UpdateMedication(ctx, med.ID, owner, &MedicationUpdateInput{Dosage: &dosage})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Dosage != "40mg" {
		t.Fatalf("expected updated dosage, got %q", updated.Dosage)
	}

	if _, err := svc.UpdateMedication(ctx, med.ID, uuid.New(), &MedicationUpdateInput{Dosage: &dosage}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

// An update with no recognized fields still resolves ownership before
// returning the row.
func TestUpdateMedicationEmptyInputScoping(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMedicationFixture(t)
	owner := uuid.New()
	med := createMedication(t, svc, owner, "Warfarin")

	if _, err := svc.UpdateMedication(ctx, med.ID, uuid.New(), &MedicationUpdateInput{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign empty update, got %v", err)
	}

	current, err := svc.UpdateMedication(ctx, med.ID, owner, &MedicationUpdateInput{})
	if err != nil {
		t.Fatalf("empty update for owner: %v", err)
	}
	if current.ID != med.ID || current.Name != "Warfarin" {
		t.Fatalf("expected the unchanged row back, got %+v", current)
	}
}
