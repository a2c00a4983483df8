package app

import (
	"github.com/elevita-health/elevita-backend/internal/handlers"
	"github.com/elevita-health/elevita-backend/internal/logger"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	User          *handlers.UserHandler
	Profile       *handlers.HealthProfileHandler
	Medication    *handlers.MedicationHandler
	Symptom       *handlers.SymptomHandler
	Appointment   *handlers.AppointmentHandler
	Metric        *handlers.HealthMetricHandler
	Dashboard     *handlers.DashboardHandler
	Insight       *handlers.InsightHandler
	Report        *handlers.ReportHandler
	Reminder      *handlers.ReminderHandler
	Transcription *handlers.TranscriptionHandler
	Notification  *handlers.NotificationHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:          handlers.NewAuthHandler(log, s.Auth),
		User:          handlers.NewUserHandler(log, s.User),
		Profile:       handlers.NewHealthProfileHandler(log, s.HealthProfile),
		Medication:    handlers.NewMedicationHandler(log, s.Medication),
		Symptom:       handlers.NewSymptomHandler(log, s.Symptom),
		Appointment:   handlers.NewAppointmentHandler(log, s.Appointment),
		Metric:        handlers.NewHealthMetricHandler(log, s.HealthMetric),
		Dashboard:     handlers.NewDashboardHandler(log, s.Dashboard),
		Insight:       handlers.NewInsightHandler(log, s.Insight),
		Report:        handlers.NewReportHandler(log, s.Report),
		Reminder:      handlers.NewReminderHandler(log, s.Reminder),
		Transcription: handlers.NewTranscriptionHandler(log, s.Transcription),
		Notification:  handlers.NewNotificationHandler(log, s.Notification),
	}
}
