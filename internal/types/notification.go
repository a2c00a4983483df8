package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification types. Each maps to a settings toggle except
// NotificationEmergencyAlert, which is always delivered.
const (
	NotificationMedicationReminder  = "medication_reminder"
	NotificationAppointmentReminder = "appointment_reminder"
	NotificationHealthAlert         = "health_alert"
	NotificationAIInsight           = "ai_insight"
	NotificationWeeklyReport        = "weekly_report"
	NotificationEmergencyAlert      = "emergency_alert"
)

type Notification struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Type         string         `gorm:"not null;column:type" json:"type"`
	Title        string         `gorm:"not null;column:title" json:"title"`
	Message      string         `gorm:"not null;column:message" json:"message"`
	IsRead       bool           `gorm:"not null;default:false;column:is_read" json:"is_read"`
	ReadAt       *time.Time     `gorm:"column:read_at" json:"read_at,omitempty"`
	IsActionable bool           `gorm:"not null;default:false;column:is_actionable" json:"is_actionable"`
	ActionURL    string         `gorm:"column:action_url" json:"action_url"`
	ScheduledFor *time.Time     `gorm:"column:scheduled_for" json:"scheduled_for,omitempty"`
	Metadata     datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (Notification) TableName() string { return "notification" }
