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

// MedicationUpdateInput carries a partial update. Nil means "leave as is",
// so a set end_date can be moved but not cleared back to null.
type MedicationUpdateInput struct {
	Name         *string    `json:"name"`
	Dosage       *string    `json:"dosage"`
	Frequency    *string    `json:"frequency"`
	Instructions *string    `json:"instructions"`
	PrescribedBy *string    `json:"prescribed_by"`
	Purpose      *string    `json:"purpose"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     *bool      `json:"is_active"`
	SideEffects  *[]string  `json:"side_effects"`
}

type MedicationService interface {
	ListMedications(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error)
	CreateMedication(ctx context.Context, userID uuid.UUID, medication *types.Medication) (*types.Medication, error)
	UpdateMedication(ctx context.Context, medicationID, userID uuid.UUID, input *MedicationUpdateInput) (*types.Medication, error)
	DeleteMedication(ctx context.Context, medicationID, userID uuid.UUID) error
	ListLogs(ctx context.Context, userID uuid.UUID, medicationID *uuid.UUID) ([]*types.MedicationLog, error)
	LogIntake(ctx context.Context, userID, medicationID uuid.UUID, log *types.MedicationLog) (*types.MedicationLog, error)
	Adherence(ctx context.Context, userID, medicationID uuid.UUID, days int) (int, error)
}

type medicationService struct {
	log            *logger.Logger
	medicationRepo repos.MedicationRepo
	logRepo        repos.MedicationLogRepo
}

func NewMedicationService(log *logger.Logger, medicationRepo repos.MedicationRepo, logRepo repos.MedicationLogRepo) MedicationService {
	return &medicationService{
		log:            log.With("service", "MedicationService"),
		medicationRepo: medicationRepo,
		logRepo:        logRepo,
	}
}

func (ms *medicationService) ListMedications(ctx context.Context, userID uuid.UUID) ([]*types.Medication, error) {
	return ms.medicationRepo.GetByUserID(ctx, userID)
}

func (ms *medicationService) CreateMedication(ctx context.Context, userID uuid.UUID, medication *types.Medication) (*types.Medication, error) {
	medication.UserID = userID
	if vErr := validation.Medication(medication); vErr != nil {
		return nil, vErr
	}
	return ms.medicationRepo.Create(ctx, medication)
}

func (ms *medicationService) UpdateMedication(ctx context.Context, medicationID, userID uuid.UUID, input *MedicationUpdateInput) (*types.Medication, error) {
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Dosage != nil {
		updates["dosage"] = *input.Dosage
	}
	if input.Frequency != nil {
		updates["frequency"] = *input.Frequency
	}
	if input.Instructions != nil {
		updates["instructions"] = *input.Instructions
	}
	if input.PrescribedBy != nil {
		updates["prescribed_by"] = *input.PrescribedBy
	}
	if input.Purpose != nil {
		updates["purpose"] = *input.Purpose
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		updates["end_date"] = input.EndDate
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.SideEffects != nil {
		updates["side_effects"] = datatypes.NewJSONSlice(*input.SideEffects)
	}
	if len(updates) == 0 {
		med, err := ms.medicationRepo.GetByID(ctx, medicationID)
		if err != nil {
			return nil, err
		}
		if med.UserID != userID {
			return nil, apperr.ErrNotFound
		}
		return med, nil
	}
	return ms.medicationRepo.Update(ctx, medicationID, userID, updates)
}

func (ms *medicationService) DeleteMedication(ctx context.Context, medicationID, userID uuid.UUID) error {
	return ms.medicationRepo.Delete(ctx, medicationID, userID)
}

func (ms *medicationService) ListLogs(ctx context.Context, userID uuid.UUID, medicationID *uuid.UUID) ([]*types.MedicationLog, error) {
	return ms.logRepo.GetByUserID(ctx, userID, medicationID)
}

func (ms *medicationService) LogIntake(ctx context.Context, userID, medicationID uuid.UUID, log *types.MedicationLog) (*types.MedicationLog, error) {
	log.UserID = userID
	log.MedicationID = medicationID
	if log.TakenAt.IsZero() {
		log.TakenAt = time.Now()
	}
	if vErr := validation.MedicationLog(log); vErr != nil {
		return nil, vErr
	}
	// the medication must exist and belong to the caller
	med, err := ms.medicationRepo.GetByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if med.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	return ms.logRepo.Create(ctx, log)
}

// Adherence is deliberately naive: one expected dose per day, counted as the
// share of non-missed logs over the trailing window.
func (ms *medicationService) Adherence(ctx context.Context, userID, medicationID uuid.UUID, days int) (int, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	logs, err := ms.logRepo.GetSince(ctx, userID, medicationID, cutoff)
	if err != nil {
		return 0, err
	}
	taken := 0
	for _, l := range logs {
		if !l.Missed {
			taken++
		}
	}
	return int(float64(taken)/float64(days)*100 + 0.5), nil
}
