package app

import (
	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/middleware"
	"github.com/elevita-health/elevita-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, am *middleware.AuthMiddleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthMiddleware:       am,
		AuthHandler:          h.Auth,
		UserHandler:          h.User,
		ProfileHandler:       h.Profile,
		MedicationHandler:    h.Medication,
		SymptomHandler:       h.Symptom,
		AppointmentHandler:   h.Appointment,
		MetricHandler:        h.Metric,
		DashboardHandler:     h.Dashboard,
		InsightHandler:       h.Insight,
		ReportHandler:        h.Report,
		ReminderHandler:      h.Reminder,
		TranscriptionHandler: h.Transcription,
		NotificationHandler:  h.Notification,
		AllowOrigins:         cfg.AllowOrigins,
	})
}

func wireMiddleware(log *logger.Logger, s Services, r Repos) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(log, s.Auth, r.User)
}
