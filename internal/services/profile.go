package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

// HealthProfileService upserts: a user has at most one profile row and the
// write path creates it on first save.
type HealthProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, profile *types.HealthProfile) (*types.HealthProfile, error)
}

type healthProfileService struct {
	log         *logger.Logger
	profileRepo repos.HealthProfileRepo
}

func NewHealthProfileService(log *logger.Logger, profileRepo repos.HealthProfileRepo) HealthProfileService {
	return &healthProfileService{
		log:         log.With("service", "HealthProfileService"),
		profileRepo: profileRepo,
	}
}

func (hs *healthProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error) {
	return hs.profileRepo.GetByUserID(ctx, userID)
}

func (hs *healthProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, profile *types.HealthProfile) (*types.HealthProfile, error) {
	profile.UserID = userID
	if _, err := hs.profileRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return hs.profileRepo.Create(ctx, profile)
		}
		return nil, err
	}
	updates := map[string]any{
		"date_of_birth":         profile.DateOfBirth,
		"emergency_contact":     profile.EmergencyContact,
		"emergency_phone":       profile.EmergencyPhone,
		"allergies":             profile.Allergies,
		"chronic_conditions":    profile.ChronicConditions,
		"preferred_pharmacy":    profile.PreferredPharmacy,
		"insurance_provider":    profile.InsuranceProvider,
		"primary_care_provider": profile.PrimaryCareProvider,
	}
	return hs.profileRepo.UpdateByUserID(ctx, userID, updates)
}
