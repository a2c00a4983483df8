package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
)

// DashboardStats is recomputed on every request; nothing is cached.
type DashboardStats struct {
	DaysTracking         int `json:"days_tracking"`
	MedicationsActive    int `json:"medications_active"`
	UpcomingAppointments int `json:"upcoming_appointments"`
}

// TimelineEvent is the uniform shape symptoms, dose logs and appointments
// are merged into for the dashboard feed.
type TimelineEvent struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Severity    *int      `json:"severity,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// Timeline event types.
const (
	TimelineSymptom     = "symptom"
	TimelineMedication  = "medication"
	TimelineAppointment = "appointment"
)

type DashboardService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)
	GetTimeline(ctx context.Context, userID uuid.UUID, limit int) ([]TimelineEvent, error)
	TodayReminders(ctx context.Context, userID uuid.UUID) ([]*types.Reminder, error)
}

type dashboardService struct {
	log             *logger.Logger
	userRepo        repos.UserRepo
	medicationRepo  repos.MedicationRepo
	logRepo         repos.MedicationLogRepo
	symptomRepo     repos.SymptomRepo
	appointmentRepo repos.AppointmentRepo
	reminderRepo    repos.ReminderRepo
}

func NewDashboardService(
	log *logger.Logger,
	userRepo repos.UserRepo,
	medicationRepo repos.MedicationRepo,
	logRepo repos.MedicationLogRepo,
	symptomRepo repos.SymptomRepo,
	appointmentRepo repos.AppointmentRepo,
	reminderRepo repos.ReminderRepo,
) DashboardService {
	return &dashboardService{
		log:             log.With("service", "DashboardService"),
		userRepo:        userRepo,
		medicationRepo:  medicationRepo,
		logRepo:         logRepo,
		symptomRepo:     symptomRepo,
		appointmentRepo: appointmentRepo,
		reminderRepo:    reminderRepo,
	}
}

func (ds *dashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	user, err := ds.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := ds.medicationRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	upcoming, err := ds.appointmentRepo.GetUpcoming(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	days := int(time.Since(user.CreatedAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &DashboardStats{
		DaysTracking:         days,
		MedicationsActive:    len(active),
		UpcomingAppointments: len(upcoming),
	}, nil
}

func (ds *dashboardService) GetTimeline(ctx context.Context, userID uuid.UUID, limit int) ([]TimelineEvent, error) {
	if limit <= 0 {
		limit = 10
	}

	symptoms, err := ds.symptomRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := ds.logRepo.GetByUserID(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	appointments, err := ds.appointmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// one batched lookup for every medication the logs reference
	idSet := map[uuid.UUID]struct{}{}
	for _, l := range logs {
		idSet[l.MedicationID] = struct{}{}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	medNames := map[uuid.UUID]string{}
	if len(ids) > 0 {
		meds, err := ds.medicationRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, m := range meds {
			medNames[m.ID] = m.Name
		}
	}

	events := make([]TimelineEvent, 0, len(symptoms)+len(logs)+len(appointments))
	for _, s := range symptoms {
		sev := s.Severity
		events = append(events, TimelineEvent{
			ID:          s.ID,
			Type:        TimelineSymptom,
			Title:       s.Name,
			Description: s.Notes,
			Date:        s.OccurredAt,
			Severity:    &sev,
			Tags:        []string(s.Triggers),
		})
	}
	for _, l := range logs {
		name, ok := medNames[l.MedicationID]
		if !ok {
			// the medication was deleted; a log without a name is noise
			continue
		}
		title := name
		if l.Missed {
			title = fmt.Sprintf("Missed %s", name)
		}
		events = append(events, TimelineEvent{
			ID:          l.ID,
			Type:        TimelineMedication,
			Title:       title,
			Description: l.Notes,
			Date:        l.TakenAt,
		})
	}
	for _, a := range appointments {
		desc := a.Provider
		if a.Location != "" {
			desc = fmt.Sprintf("%s, %s", a.Provider, a.Location)
		}
		events = append(events, TimelineEvent{
			ID:          a.ID,
			Type:        TimelineAppointment,
			Title:       a.Title,
			Description: desc,
			Date:        a.AppointmentDate,
			Tags:        []string{a.Status},
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (ds *dashboardService) TodayReminders(ctx context.Context, userID uuid.UUID) ([]*types.Reminder, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	return ds.reminderRepo.GetDueBetween(ctx, userID, dayStart, dayEnd)
}
