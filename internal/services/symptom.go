package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type SymptomUpdateInput struct {
	Name       *string    `json:"name"`
	Severity   *int       `json:"severity"`
	Location   *string    `json:"location"`
	Duration   *string    `json:"duration"`
	Triggers   *[]string  `json:"triggers"`
	Notes      *string    `json:"notes"`
	OccurredAt *time.Time `json:"occurred_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

type SymptomService interface {
	ListSymptoms(ctx context.Context, userID uuid.UUID) ([]*types.Symptom, error)
	CreateSymptom(ctx context.Context, userID uuid.UUID, symptom *types.Symptom) (*types.Symptom, error)
	UpdateSymptom(ctx context.Context, symptomID, userID uuid.UUID, input *SymptomUpdateInput) (*types.Symptom, error)
	DeleteSymptom(ctx context.Context, symptomID, userID uuid.UUID) error
}

type symptomService struct {
	log         *logger.Logger
	symptomRepo repos.SymptomRepo
}

func NewSymptomService(log *logger.Logger, symptomRepo repos.SymptomRepo) SymptomService {
	return &symptomService{
		log:         log.With("service", "SymptomService"),
		symptomRepo: symptomRepo,
	}
}

func (ss *symptomService) ListSymptoms(ctx context.Context, userID uuid.UUID) ([]*types.Symptom, error) {
	return ss.symptomRepo.GetByUserID(ctx, userID)
}

func (ss *symptomService) CreateSymptom(ctx context.Context, userID uuid.UUID, symptom *types.Symptom) (*types.Symptom, error) {
	symptom.UserID = userID
	if symptom.OccurredAt.IsZero() {
		symptom.OccurredAt = time.Now()
	}
	if vErr := validation.Symptom(symptom); vErr != nil {
		return nil, vErr
	}
	return ss.symptomRepo.Create(ctx, symptom)
}

func (ss *symptomService) UpdateSymptom(ctx context.Context, symptomID, userID uuid.UUID, input *SymptomUpdateInput) (*types.Symptom, error) {
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Severity != nil {
		if vErr := validation.Severity(*input.Severity); vErr != nil {
			return nil, vErr
		}
		updates["severity"] = *input.Severity
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Triggers != nil {
		updates["triggers"] = datatypes.NewJSONSlice(*input.Triggers)
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.OccurredAt != nil {
		updates["occurred_at"] = *input.OccurredAt
	}
	if input.ResolvedAt != nil {
		updates["resolved_at"] = input.ResolvedAt
	}
	if len(updates) == 0 {
		symptom, err := ss.symptomRepo.GetByID(ctx, symptomID)
		if err != nil {
			return nil, err
		}
		if symptom.UserID != userID {
			return nil, apperr.ErrNotFound
		}
		return symptom, nil
	}
	return ss.symptomRepo.Update(ctx, symptomID, userID, updates)
}

func (ss *symptomService) DeleteSymptom(ctx context.Context, symptomID, userID uuid.UUID) error {
	return ss.symptomRepo.Delete(ctx, symptomID, userID)
}
