package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/handlers"
	"github.com/elevita-health/elevita-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware       *middleware.AuthMiddleware
	AuthHandler          *handlers.AuthHandler
	UserHandler          *handlers.UserHandler
	ProfileHandler       *handlers.HealthProfileHandler
	MedicationHandler    *handlers.MedicationHandler
	SymptomHandler       *handlers.SymptomHandler
	AppointmentHandler   *handlers.AppointmentHandler
	MetricHandler        *handlers.HealthMetricHandler
	DashboardHandler     *handlers.DashboardHandler
	InsightHandler       *handlers.InsightHandler
	ReportHandler        *handlers.ReportHandler
	ReminderHandler      *handlers.ReminderHandler
	TranscriptionHandler *handlers.TranscriptionHandler
	NotificationHandler  *handlers.NotificationHandler
	AllowOrigins         []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/refresh", cfg.AuthHandler.Refresh)

	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	router.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)

	// User + setup wizard
	api.GET("/auth/user", cfg.UserHandler.GetMe)
	api.POST("/auth/user/setup", cfg.UserHandler.UpdateSetup)
	api.POST("/auth/user/setup/complete", cfg.UserHandler.CompleteSetup)

	// Health profile (upsert)
	api.GET("/health-profile", cfg.ProfileHandler.Get)
	api.POST("/health-profile", cfg.ProfileHandler.Save)

	// Medications
	api.GET("/medications", cfg.MedicationHandler.List)
	api.POST("/medications", cfg.MedicationHandler.Create)
	api.PATCH("/medications/:id", cfg.MedicationHandler.Update)
	api.DELETE("/medications/:id", cfg.MedicationHandler.Delete)
	api.GET("/medications/:id/logs", cfg.MedicationHandler.ListLogs)
	api.POST("/medications/:id/logs", cfg.MedicationHandler.LogIntake)
	api.GET("/medications/:id/adherence", cfg.MedicationHandler.Adherence)

	// Symptoms
	api.GET("/symptoms", cfg.SymptomHandler.List)
	api.POST("/symptoms", cfg.SymptomHandler.Create)
	api.PATCH("/symptoms/:id", cfg.SymptomHandler.Update)
	api.DELETE("/symptoms/:id", cfg.SymptomHandler.Delete)

	// Appointments (professional-gated)
	professional := api.Group("")
	professional.Use(cfg.AuthMiddleware.RequireProfessional())
	professional.GET("/appointments", cfg.AppointmentHandler.List)
	professional.POST("/appointments", cfg.AppointmentHandler.Create)
	professional.PATCH("/appointments/:id", cfg.AppointmentHandler.Update)
	professional.DELETE("/appointments/:id", cfg.AppointmentHandler.Delete)

	// Health metrics
	api.GET("/health-metrics", cfg.MetricHandler.List)
	api.POST("/health-metrics", cfg.MetricHandler.Create)

	// Dashboard
	api.GET("/dashboard/stats", cfg.DashboardHandler.Stats)
	api.GET("/dashboard/timeline", cfg.DashboardHandler.Timeline)
	api.GET("/dashboard/reminders", cfg.DashboardHandler.Reminders)

	// AI insights + translation
	api.GET("/ai-insights", cfg.InsightHandler.List)
	api.POST("/ai-insights/generate", cfg.InsightHandler.Generate)
	api.PATCH("/ai-insights/:id/read", cfg.InsightHandler.MarkRead)
	api.POST("/translate-term", cfg.InsightHandler.TranslateTerm)

	// Reports
	api.GET("/reports", cfg.ReportHandler.List)
	api.POST("/reports/generate", cfg.ReportHandler.Generate)

	// Reminders
	api.GET("/reminders", cfg.ReminderHandler.List)
	api.POST("/reminders", cfg.ReminderHandler.Create)
	api.PATCH("/reminders/:id/complete", cfg.ReminderHandler.Complete)

	// Transcriptions (professional-only)
	professional.GET("/transcriptions", cfg.TranscriptionHandler.List)
	professional.POST("/transcriptions", cfg.TranscriptionHandler.Create)
	professional.GET("/transcriptions/:id", cfg.TranscriptionHandler.Get)
	professional.PATCH("/transcriptions/:id", cfg.TranscriptionHandler.Update)
	professional.DELETE("/transcriptions/:id", cfg.TranscriptionHandler.Delete)

	// Notifications
	api.GET("/notifications", cfg.NotificationHandler.List)
	api.GET("/notifications/unread", cfg.NotificationHandler.Unread)
	api.POST("/notifications", cfg.NotificationHandler.Create)
	api.PATCH("/notifications/read-all", cfg.NotificationHandler.MarkAllRead)
	api.PATCH("/notifications/:id/read", cfg.NotificationHandler.MarkRead)
	api.DELETE("/notifications/:id", cfg.NotificationHandler.Delete)

	// Notification settings
	api.GET("/settings/notifications", cfg.NotificationHandler.GetSettings)
	api.PUT("/settings/notifications", cfg.NotificationHandler.UpdateSettings)

	// Patient roster (professional-only)
	professional.GET("/patients", cfg.UserHandler.GetPatients)

	return router
}
