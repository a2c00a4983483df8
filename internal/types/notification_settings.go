package types

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettings holds per-user delivery toggles. A row is created
// lazily with these defaults the first time settings are read.
type NotificationSettings struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	MedicationReminders  bool      `gorm:"not null;default:true;column:medication_reminders" json:"medication_reminders"`
	AppointmentReminders bool      `gorm:"not null;default:true;column:appointment_reminders" json:"appointment_reminders"`
	HealthAlerts         bool      `gorm:"not null;default:true;column:health_alerts" json:"health_alerts"`
	AIInsights           bool      `gorm:"not null;default:true;column:ai_insights" json:"ai_insights"`
	WeeklyReports        bool      `gorm:"not null;default:false;column:weekly_reports" json:"weekly_reports"`
	EmergencyAlerts      bool      `gorm:"not null;default:true;column:emergency_alerts" json:"emergency_alerts"`
	ReminderTime         string    `gorm:"column:reminder_time;default:09:00" json:"reminder_time"`
	ReminderFrequency    string    `gorm:"column:reminder_frequency;default:daily" json:"reminder_frequency"`
	EmailNotifications   bool      `gorm:"not null;default:false;column:email_notifications" json:"email_notifications"`
	PushNotifications    bool      `gorm:"not null;default:true;column:push_notifications" json:"push_notifications"`
	CreatedAt            time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (NotificationSettings) TableName() string { return "notification_settings" }

// DefaultNotificationSettings returns the lazily-created defaults for a user.
func DefaultNotificationSettings(userID uuid.UUID) *NotificationSettings {
	return &NotificationSettings{
		UserID:               userID,
		MedicationReminders:  true,
		AppointmentReminders: true,
		HealthAlerts:         true,
		AIInsights:           true,
		WeeklyReports:        false,
		EmergencyAlerts:      true,
		ReminderTime:         "09:00",
		ReminderFrequency:    "daily",
		EmailNotifications:   false,
		PushNotifications:    true,
	}
}
