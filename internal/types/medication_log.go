package types

import (
	"time"

	"github.com/google/uuid"
)

// MedicationLog is an append-only record of a single dose event.
type MedicationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	MedicationID uuid.UUID `gorm:"type:uuid;not null;index;column:medication_id" json:"medication_id"`
	TakenAt      time.Time `gorm:"not null;column:taken_at" json:"taken_at"`
	DosageTaken  string    `gorm:"column:dosage_taken" json:"dosage_taken"`
	Notes        string    `gorm:"column:notes" json:"notes"`
	Missed       bool      `gorm:"not null;default:false;column:missed" json:"missed"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (MedicationLog) TableName() string { return "medication_log" }
