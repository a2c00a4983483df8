package types

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is one-shot: marked complete, never rescheduled.
type Reminder struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Type         string     `gorm:"not null;column:type" json:"type"`
	Title        string     `gorm:"not null;column:title" json:"title"`
	Description  string     `gorm:"column:description" json:"description"`
	ScheduledFor time.Time  `gorm:"not null;column:scheduled_for" json:"scheduled_for"`
	IsCompleted  bool       `gorm:"not null;default:false;column:is_completed" json:"is_completed"`
	ReminderTime string     `gorm:"column:reminder_time" json:"reminder_time"`
	RelatedID    *uuid.UUID `gorm:"type:uuid;column:related_id" json:"related_id,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (Reminder) TableName() string { return "reminder" }
