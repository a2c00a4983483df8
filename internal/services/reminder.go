package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type ReminderService interface {
	ListReminders(ctx context.Context, userID uuid.UUID) ([]*types.Reminder, error)
	CreateReminder(ctx context.Context, userID uuid.UUID, reminder *types.Reminder) (*types.Reminder, error)
	CompleteReminder(ctx context.Context, reminderID, userID uuid.UUID) error
}

type reminderService struct {
	log          *logger.Logger
	reminderRepo repos.ReminderRepo
}

func NewReminderService(log *logger.Logger, reminderRepo repos.ReminderRepo) ReminderService {
	return &reminderService{
		log:          log.With("service", "ReminderService"),
		reminderRepo: reminderRepo,
	}
}

func (rs *reminderService) ListReminders(ctx context.Context, userID uuid.UUID) ([]*types.Reminder, error) {
	return rs.reminderRepo.GetByUserID(ctx, userID)
}

func (rs *reminderService) CreateReminder(ctx context.Context, userID uuid.UUID, reminder *types.Reminder) (*types.Reminder, error) {
	reminder.UserID = userID
	if vErr := validation.Reminder(reminder); vErr != nil {
		return nil, vErr
	}
	return rs.reminderRepo.Create(ctx, reminder)
}

func (rs *reminderService) CompleteReminder(ctx context.Context, reminderID, userID uuid.UUID) error {
	return rs.reminderRepo.MarkCompleted(ctx, reminderID, userID)
}
