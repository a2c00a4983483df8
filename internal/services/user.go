package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

// UserSetupInput carries the setup-wizard fields. Nil means "leave as is".
type UserSetupInput struct {
	FirstName                *string `json:"first_name"`
	LastName                 *string `json:"last_name"`
	IsHealthcareProfessional *bool   `json:"is_healthcare_professional"`
	SetupStep                *int    `json:"setup_step"`
	CurrentView              *string `json:"current_view"`
}

type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateSetup(ctx context.Context, userID uuid.UUID, input *UserSetupInput) (*types.User, error)
	CompleteSetup(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetPatients(ctx context.Context) ([]*types.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (us *userService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return us.userRepo.GetByID(ctx, userID)
}

func (us *userService) UpdateSetup(ctx context.Context, userID uuid.UUID, input *UserSetupInput) (*types.User, error) {
	updates := map[string]any{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.IsHealthcareProfessional != nil {
		updates["is_healthcare_professional"] = *input.IsHealthcareProfessional
	}
	if input.SetupStep != nil {
		updates["setup_step"] = *input.SetupStep
	}
	if input.CurrentView != nil {
		if *input.CurrentView != types.ViewPatient && *input.CurrentView != types.ViewProfessional {
			return nil, validation.FieldErrors{"current_view": "must be patient or professional"}
		}
		updates["current_view"] = *input.CurrentView
	}
	if len(updates) == 0 {
		return us.userRepo.GetByID(ctx, userID)
	}
	return us.userRepo.UpdateSetup(ctx, userID, updates)
}

func (us *userService) CompleteSetup(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return us.userRepo.CompleteSetup(ctx, userID)
}

func (us *userService) GetPatients(ctx context.Context) ([]*types.User, error) {
	return us.userRepo.GetPatients(ctx)
}
