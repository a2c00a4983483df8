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

func newSymptomFixture(t *testing.T) SymptomService {
	t.Helper()
	store := memstore.New()
	return NewSymptomService(logger.NewNop(), memstore.NewSymptomRepo(store))
}

func TestUpdateSymptomEmptyInputScoping(t *testing.T) {
	ctx := context.Background()
	svc := newSymptomFixture(t)
	owner := uuid.New()
	created, err := svc.CreateSymptom(ctx, owner, &types.Symptom{
		Name:       "Headache",
		Severity:   4,
		OccurredAt: time.Now().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("create symptom: %v", err)
	}

	if _, err := svc.UpdateSymptom(ctx, created.ID, uuid.New(), &SymptomUpdateInput{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign empty update, got %v", err)
	}

	current, err := svc.UpdateSymptom(ctx, created.ID, owner, &SymptomUpdateInput{})
	if err != nil {
		t.Fatalf("empty update for owner: %v", err)
	}
	if current.Name != "Headache" || current.Severity != 4 {
		t.Fatalf("expected the unchanged row back, got %+v", current)
	}
}

func TestUpdateSymptomSeverityBounds(t *testing.T) {
	ctx := context.Background()
	svc := newSymptomFixture(t)
	owner := uuid.New()
	created, err := svc.CreateSymptom(ctx, owner, &types.Symptom{
		Name:       "Nausea",
		Severity:   2,
		OccurredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create symptom: %v", err)
	}

	bad := 11
	if _, err := svc.UpdateSymptom(ctx, created.ID, owner, &SymptomUpdateInput{Severity: &bad}); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for severity 11, got %v", err)
	}

	ok := 9
	updated, err := svc.UpdateSymptom(ctx, created.ID, owner, &SymptomUpdateInput{Severity: &ok})
	if err != nil {
		t.Fatalf("update severity: %v", err)
	}
	if updated.Severity != 9 {
		t.Fatalf("expected severity 9, got %d", updated.Severity)
	}
}
