package app

import (
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/repos/memstore"
)

type Repos struct {
	User                 repos.UserRepo
	UserToken            repos.UserTokenRepo
	HealthProfile        repos.HealthProfileRepo
	Medication           repos.MedicationRepo
	MedicationLog        repos.MedicationLogRepo
	Symptom              repos.SymptomRepo
	Appointment          repos.AppointmentRepo
	HealthMetric         repos.HealthMetricRepo
	AIInsight            repos.AIInsightRepo
	Reminder             repos.ReminderRepo
	HealthReport         repos.HealthReportRepo
	Transcription        repos.TranscriptionRepo
	Notification         repos.NotificationRepo
	NotificationSettings repos.NotificationSettingsRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:                 repos.NewUserRepo(db, log),
		UserToken:            repos.NewUserTokenRepo(db, log),
		HealthProfile:        repos.NewHealthProfileRepo(db, log),
		Medication:           repos.NewMedicationRepo(db, log),
		MedicationLog:        repos.NewMedicationLogRepo(db, log),
		Symptom:              repos.NewSymptomRepo(db, log),
		Appointment:          repos.NewAppointmentRepo(db, log),
		HealthMetric:         repos.NewHealthMetricRepo(db, log),
		AIInsight:            repos.NewAIInsightRepo(db, log),
		Reminder:             repos.NewReminderRepo(db, log),
		HealthReport:         repos.NewHealthReportRepo(db, log),
		Transcription:        repos.NewTranscriptionRepo(db, log),
		Notification:         repos.NewNotificationRepo(db, log),
		NotificationSettings: repos.NewNotificationSettingsRepo(db, log),
	}
}

func wireMemoryRepos(log *logger.Logger) Repos {
	log.Info("Wiring in-memory repos...")
	store := memstore.New()
	return Repos{
		User:                 memstore.NewUserRepo(store),
		UserToken:            memstore.NewUserTokenRepo(store),
		HealthProfile:        memstore.NewHealthProfileRepo(store),
		Medication:           memstore.NewMedicationRepo(store),
		MedicationLog:        memstore.NewMedicationLogRepo(store),
		Symptom:              memstore.NewSymptomRepo(store),
		Appointment:          memstore.NewAppointmentRepo(store),
		HealthMetric:         memstore.NewHealthMetricRepo(store),
		AIInsight:            memstore.NewAIInsightRepo(store),
		Reminder:             memstore.NewReminderRepo(store),
		HealthReport:         memstore.NewHealthReportRepo(store),
		Transcription:        memstore.NewTranscriptionRepo(store),
		Notification:         memstore.NewNotificationRepo(store),
		NotificationSettings: memstore.NewNotificationSettingsRepo(store),
	}
}
