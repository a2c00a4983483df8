package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/types"
)

func seedUser(t *testing.T, s *Store, email string) *types.User {
	t.Helper()
	created, err := NewUserRepo(s).Create(context.Background(), &types.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  "hashed",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUpdateScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := seedUser(t, s, "owner@example.com")
	other := seedUser(t, s, "other@example.com")

	medRepo := NewMedicationRepo(s)
	med, err := medRepo.Create(ctx, &types.Medication{
		UserID:    owner.ID,
		Name:      "Lisinopril",
		Dosage:    "10mg",
		Frequency: "daily",
		StartDate: time.Now(),
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create medication: %v", err)
	}

	_, err = medRepo.Update(ctx, med.ID, other.ID, map[string]any{"dosage": "20mg"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}

	updated, err := medRepo.Update(ctx, med.ID, owner.ID, map[string]any{"dosage": "20mg"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Dosage != "20mg" {
		t.Fatalf("expected dosage 20mg, got %q", updated.Dosage)
	}
}

func TestDeleteScopedAndIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := seedUser(t, s, "owner@example.com")
	other := seedUser(t, s, "other@example.com")

	symptomRepo := NewSymptomRepo(s)
	symptom, err := symptomRepo.Create(ctx, &types.Symptom{
		UserID:     owner.ID,
		Name:       "Headache",
		Severity:   4,
		OccurredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create symptom: %v", err)
	}

	// a foreign caller's delete is a no-op, not an error
	if err := symptomRepo.Delete(ctx, symptom.ID, other.ID); err != nil {
		t.Fatalf("foreign delete: %v", err)
	}
	if _, err := symptomRepo.GetByID(ctx, symptom.ID); err != nil {
		t.Fatalf("symptom should survive foreign delete: %v", err)
	}

	if err := symptomRepo.Delete(ctx, symptom.ID, owner.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := symptomRepo.GetByID(ctx, symptom.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// repeated delete stays silent
	if err := symptomRepo.Delete(ctx, symptom.ID, owner.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestUserCascadeDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	user := seedUser(t, s, "owner@example.com")

	medRepo := NewMedicationRepo(s)
	if _, err := medRepo.Create(ctx, &types.Medication{
		UserID: user.ID, Name: "A", Dosage: "1mg", Frequency: "daily",
		StartDate: time.Now(), IsActive: true,
	}); err != nil {
		t.Fatalf("create medication: %v", err)
	}
	symptomRepo := NewSymptomRepo(s)
	if _, err := symptomRepo.Create(ctx, &types.Symptom{
		UserID: user.ID, Name: "Nausea", Severity: 3, OccurredAt: time.Now(),
	}); err != nil {
		t.Fatalf("create symptom: %v", err)
	}

	if err := NewUserRepo(s).Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	meds, err := medRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("list medications: %v", err)
	}
	if len(meds) != 0 {
		t.Fatalf("expected cascade delete of medications, got %d", len(meds))
	}
	symptoms, err := symptomRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("list symptoms: %v", err)
	}
	if len(symptoms) != 0 {
		t.Fatalf("expected cascade delete of symptoms, got %d", len(symptoms))
	}
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	s := New()
	user := seedUser(t, s, "owner@example.com")

	symptomRepo := NewSymptomRepo(s)
	now := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := symptomRepo.Create(ctx, &types.Symptom{
			UserID:     user.ID,
			Name:       "Fatigue",
			Severity:   2,
			OccurredAt: now.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("create symptom: %v", err)
		}
	}

	symptoms, err := symptomRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("list symptoms: %v", err)
	}
	for i := 1; i < len(symptoms); i++ {
		if symptoms[i].OccurredAt.After(symptoms[i-1].OccurredAt) {
			t.Fatalf("expected occurred_at descending, got %v before %v",
				symptoms[i-1].OccurredAt, symptoms[i].OccurredAt)
		}
	}
}

func TestReminderDueWindow(t *testing.T) {
	ctx := context.Background()
	s := New()
	user := seedUser(t, s, "owner@example.com")
	reminderRepo := NewReminderRepo(s)

	now := time.Now()
	inWindow, err := reminderRepo.Create(ctx, &types.Reminder{
		UserID: user.ID, Type: "medication", Title: "Take dose",
		ScheduledFor: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create reminder: %v", err)
	}
	if _, err := reminderRepo.Create(ctx, &types.Reminder{
		UserID: user.ID, Type: "medication", Title: "Tomorrow",
		ScheduledFor: now.Add(48 * time.Hour),
	}); err != nil {
		t.Fatalf("create reminder: %v", err)
	}
	completed, err := reminderRepo.Create(ctx, &types.Reminder{
		UserID: user.ID, Type: "medication", Title: "Done already",
		ScheduledFor: now.Add(2 * time.Hour), IsCompleted: true,
	})
	if err != nil {
		t.Fatalf("create reminder: %v", err)
	}
	_ = completed

	due, err := reminderRepo.GetDueBetween(ctx, user.ID, now, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("due between: %v", err)
	}
	if len(due) != 1 || due[0].ID != inWindow.ID {
		t.Fatalf("expected exactly the in-window incomplete reminder, got %d", len(due))
	}
}

func TestCopyOnReturn(t *testing.T) {
	ctx := context.Background()
	s := New()
	user := seedUser(t, s, "owner@example.com")
	medRepo := NewMedicationRepo(s)

	med, err := medRepo.Create(ctx, &types.Medication{
		UserID: user.ID, Name: "Metformin", Dosage: "500mg", Frequency: "daily",
		StartDate: time.Now(), IsActive: true,
	})
	if err != nil {
		t.Fatalf("create medication: %v", err)
	}
	med.Name = "mutated"

	fresh, err := medRepo.GetByID(ctx, med.ID)
	if err != nil {
		t.Fatalf("get medication: %v", err)
	}
	if fresh.Name != "Metformin" {
		t.Fatalf("store row mutated through returned pointer: %q", fresh.Name)
	}
}

func TestUserEmailLookup(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedUser(t, s, "alice@example.com")
	userRepo := NewUserRepo(s)

	exists, err := userRepo.EmailExists(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}
	if _, err := userRepo.GetByEmail(ctx, "bob@example.com"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
	if _, err := NewUserRepo(s).Create(ctx, &types.User{ID: uuid.New(), Email: "carol@example.com", FirstName: "C", LastName: "D", Password: "x"}); err != nil {
		t.Fatalf("create with explicit id: %v", err)
	}
}
