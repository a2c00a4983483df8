package app

import (
	"fmt"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
)

type Services struct {
	Auth          services.AuthService
	User          services.UserService
	HealthProfile services.HealthProfileService
	Medication    services.MedicationService
	Symptom       services.SymptomService
	Appointment   services.AppointmentService
	HealthMetric  services.HealthMetricService
	Dashboard     services.DashboardService
	Notification  services.NotificationService
	Insight       services.InsightService
	Report        services.ReportService
	Reminder      services.ReminderService
	Transcription services.TranscriptionService
	AI            services.AIClient
	Bucket        services.BucketService
}

func wireServices(log *logger.Logger, cfg Config, r Repos) (Services, error) {
	log.Info("Wiring services...")

	aiClient, err := services.NewAIClient(log)
	if err != nil {
		return Services{}, fmt.Errorf("init ai client: %w", err)
	}
	bucket, err := services.NewBucketService(log)
	if err != nil {
		return Services{}, fmt.Errorf("init bucket service: %w", err)
	}
	transcriber := services.NewPlaceholderTranscriber(log)
	dispatcher := services.NewLogDispatcher(log)

	auth := services.NewAuthService(log, r.User, r.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	notification := services.NewNotificationService(log, r.Notification, r.NotificationSettings, dispatcher)

	return Services{
		Auth:          auth,
		User:          services.NewUserService(log, r.User),
		HealthProfile: services.NewHealthProfileService(log, r.HealthProfile),
		Medication:    services.NewMedicationService(log, r.Medication, r.MedicationLog),
		Symptom:       services.NewSymptomService(log, r.Symptom),
		Appointment:   services.NewAppointmentService(log, r.Appointment),
		HealthMetric:  services.NewHealthMetricService(log, r.HealthMetric),
		Dashboard:     services.NewDashboardService(log, r.User, r.Medication, r.MedicationLog, r.Symptom, r.Appointment, r.Reminder),
		Notification:  notification,
		Insight:       services.NewInsightService(log, aiClient, r.AIInsight, r.Symptom, r.Medication, r.MedicationLog, r.Appointment, r.HealthMetric, notification),
		Report:        services.NewReportService(log, aiClient, r.HealthReport, r.Symptom, r.Medication, r.MedicationLog, r.Appointment, r.HealthMetric),
		Reminder:      services.NewReminderService(log, r.Reminder),
		Transcription: services.NewTranscriptionService(log, r.Transcription, bucket, transcriber),
		AI:            aiClient,
		Bucket:        bucket,
	}, nil
}
