package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type AppointmentUpdateInput struct {
	Title           *string    `json:"title"`
	Provider        *string    `json:"provider"`
	Type            *string    `json:"type"`
	Location        *string    `json:"location"`
	AppointmentDate *time.Time `json:"appointment_date"`
	Duration        *int       `json:"duration"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status"`
	Outcome         *string    `json:"outcome"`
}

type AppointmentService interface {
	ListAppointments(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error)
	// ListAppointmentsByDate filters to the calendar day named by a
	// YYYY-MM-DD param. Used by the professional schedule view.
	ListAppointmentsByDate(ctx context.Context, userID uuid.UUID, day string) ([]*types.Appointment, error)
	UpcomingAppointments(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error)
	CreateAppointment(ctx context.Context, userID uuid.UUID, appointment *types.Appointment) (*types.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID, userID uuid.UUID, input *AppointmentUpdateInput) (*types.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID, userID uuid.UUID) error
}

type appointmentService struct {
	log             *logger.Logger
	appointmentRepo repos.AppointmentRepo
}

func NewAppointmentService(log *logger.Logger, appointmentRepo repos.AppointmentRepo) AppointmentService {
	return &appointmentService{
		log:             log.With("service", "AppointmentService"),
		appointmentRepo: appointmentRepo,
	}
}

func (as *appointmentService) ListAppointments(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error) {
	return as.appointmentRepo.GetByUserID(ctx, userID)
}

func (as *appointmentService) ListAppointmentsByDate(ctx context.Context, userID uuid.UUID, day string) ([]*types.Appointment, error) {
	dayStart, dayEnd, err := validation.ParseDay(day)
	if err != nil {
		return nil, err
	}
	return as.appointmentRepo.GetByDate(ctx, userID, dayStart, dayEnd)
}

func (as *appointmentService) UpcomingAppointments(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error) {
	return as.appointmentRepo.GetUpcoming(ctx, userID, time.Now())
}

func (as *appointmentService) CreateAppointment(ctx context.Context, userID uuid.UUID, appointment *types.Appointment) (*types.Appointment, error) {
	appointment.UserID = userID
	if appointment.Status == "" {
		appointment.Status = types.AppointmentScheduled
	}
	if vErr := validation.Appointment(appointment); vErr != nil {
		return nil, vErr
	}
	return as.appointmentRepo.Create(ctx, appointment)
}

func (as *appointmentService) UpdateAppointment(ctx context.Context, appointmentID, userID uuid.UUID, input *AppointmentUpdateInput) (*types.Appointment, error) {
	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Provider != nil {
		updates["provider"] = *input.Provider
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.AppointmentDate != nil {
		updates["appointment_date"] = *input.AppointmentDate
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.Status != nil {
		if vErr := validation.AppointmentStatus(*input.Status); vErr != nil {
			return nil, vErr
		}
		updates["status"] = *input.Status
	}
	if input.Outcome != nil {
		updates["outcome"] = *input.Outcome
	}
	if len(updates) == 0 {
		appointment, err := as.appointmentRepo.GetByID(ctx, appointmentID)
		if err != nil {
			return nil, err
		}
		if appointment.UserID != userID {
			return nil, apperr.ErrNotFound
		}
		return appointment, nil
	}
	return as.appointmentRepo.Update(ctx, appointmentID, userID, updates)
}

func (as *appointmentService) DeleteAppointment(ctx context.Context, appointmentID, userID uuid.UUID) error {
	return as.appointmentRepo.Delete(ctx, appointmentID, userID)
}
