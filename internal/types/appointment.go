package types

import (
	"time"

	"github.com/google/uuid"
)

// Appointment status values. No transition guards are enforced server-side.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Title           string    `gorm:"not null;column:title" json:"title"`
	Provider        string    `gorm:"not null;column:provider" json:"provider"`
	Type            string    `gorm:"column:type" json:"type"`
	Location        string    `gorm:"column:location" json:"location"`
	AppointmentDate time.Time `gorm:"not null;index;column:appointment_date" json:"appointment_date"`
	Duration        int       `gorm:"column:duration" json:"duration"`
	Notes           string    `gorm:"column:notes" json:"notes"`
	Status          string    `gorm:"column:status;default:scheduled" json:"status"`
	Outcome         string    `gorm:"column:outcome" json:"outcome"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Appointment) TableName() string { return "appointment" }
