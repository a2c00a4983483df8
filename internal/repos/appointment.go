package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type AppointmentRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error)
	GetUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]*types.Appointment, error)
	GetByDate(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*types.Appointment, error)
	GetByID(ctx context.Context, appointmentID uuid.UUID) (*types.Appointment, error)
	Create(ctx context.Context, appointment *types.Appointment) (*types.Appointment, error)
	Update(ctx context.Context, appointmentID, userID uuid.UUID, updates map[string]any) (*types.Appointment, error)
	Delete(ctx context.Context, appointmentID, userID uuid.UUID) error
}

type appointmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAppointmentRepo(db *gorm.DB, baseLog *logger.Logger) AppointmentRepo {
	repoLog := baseLog.With("repo", "AppointmentRepo")
	return &appointmentRepo{db: db, log: repoLog}
}

func (ar *appointmentRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error) {
	var results []*types.Appointment
	if err := ar.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("appointment_date").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *appointmentRepo) GetUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]*types.Appointment, error) {
	var results []*types.Appointment
	if err := ar.db.WithContext(ctx).
		Where("user_id = ? AND appointment_date >= ? AND status = ?", userID, now, types.AppointmentScheduled).
		Order("appointment_date").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByDate returns the user's appointments inside [dayStart, dayEnd).
func (ar *appointmentRepo) GetByDate(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*types.Appointment, error) {
	var results []*types.Appointment
	if err := ar.db.WithContext(ctx).
		Where("user_id = ? AND appointment_date >= ? AND appointment_date < ?", userID, dayStart, dayEnd).
		Order("appointment_date").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *appointmentRepo) GetByID(ctx context.Context, appointmentID uuid.UUID) (*types.Appointment, error) {
	var result types.Appointment
	if err := ar.db.WithContext(ctx).
		Where("id = ?", appointmentID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (ar *appointmentRepo) Create(ctx context.Context, appointment *types.Appointment) (*types.Appointment, error) {
	if err := ar.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

func (ar *appointmentRepo) Update(ctx context.Context, appointmentID, userID uuid.UUID, updates map[string]any) (*types.Appointment, error) {
	updates["updated_at"] = time.Now()
	res := ar.db.WithContext(ctx).
		Model(&types.Appointment{}).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return ar.GetByID(ctx, appointmentID)
}

func (ar *appointmentRepo) Delete(ctx context.Context, appointmentID, userID uuid.UUID) error {
	return ar.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Delete(&types.Appointment{}).Error
}
