package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type appointmentRepo struct {
	s *Store
}

func NewAppointmentRepo(s *Store) repos.AppointmentRepo {
	return &appointmentRepo{s: s}
}

func (ar *appointmentRepo) collect(keep func(*types.Appointment) bool) []*types.Appointment {
	var results []*types.Appointment
	for _, row := range ar.s.appointments {
		if keep(row) {
			out := *row
			results = append(results, &out)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].AppointmentDate.Before(results[j].AppointmentDate)
	})
	return results
}

func (ar *appointmentRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error) {
	ar.s.mu.RLock()
	defer ar.s.mu.RUnlock()
	return ar.collect(func(a *types.Appointment) bool {
		return a.UserID == userID
	}), nil
}

func (ar *appointmentRepo) GetUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]*types.Appointment, error) {
	ar.s.mu.RLock()
	defer ar.s.mu.RUnlock()
	return ar.collect(func(a *types.Appointment) bool {
		return a.UserID == userID &&
			!a.AppointmentDate.Before(now) &&
			a.Status == types.AppointmentScheduled
	}), nil
}

func (ar *appointmentRepo) GetByDate(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*types.Appointment, error) {
	ar.s.mu.RLock()
	defer ar.s.mu.RUnlock()
	return ar.collect(func(a *types.Appointment) bool {
		return a.UserID == userID &&
			!a.AppointmentDate.Before(dayStart) &&
			a.AppointmentDate.Before(dayEnd)
	}), nil
}

func (ar *appointmentRepo) GetByID(ctx context.Context, appointmentID uuid.UUID) (*types.Appointment, error) {
	ar.s.mu.RLock()
	defer ar.s.mu.RUnlock()
	row, ok := ar.s.appointments[appointmentID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (ar *appointmentRepo) Create(ctx context.Context, appointment *types.Appointment) (*types.Appointment, error) {
	ar.s.mu.Lock()
	defer ar.s.mu.Unlock()
	appointment.ID = ensureID(appointment.ID)
	appointment.CreatedAt = ensureTime(appointment.CreatedAt)
	appointment.UpdatedAt = ensureTime(appointment.UpdatedAt)
	row := *appointment
	ar.s.appointments[appointment.ID] = &row
	return appointment, nil
}

func (ar *appointmentRepo) Update(ctx context.Context, appointmentID, userID uuid.UUID, updates map[string]any) (*types.Appointment, error) {
	ar.s.mu.Lock()
	defer ar.s.mu.Unlock()
	row, ok := ar.s.appointments[appointmentID]
	if !ok || row.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	applyUpdates(row, updates)
	row.UpdatedAt = time.Now()
	out := *row
	return &out, nil
}

func (ar *appointmentRepo) Delete(ctx context.Context, appointmentID, userID uuid.UUID) error {
	ar.s.mu.Lock()
	defer ar.s.mu.Unlock()
	row, ok := ar.s.appointments[appointmentID]
	if !ok || row.UserID != userID {
		return nil
	}
	delete(ar.s.appointments, appointmentID)
	return nil
}
