package types

import (
	"time"

	"github.com/google/uuid"
)

// Transcription is a recorded session note authored by a healthcare
// professional about a patient. The transcript text comes from whatever
// Transcriber implementation is wired in, and Duration is an estimate
// derived from the audio byte size, never a measured value.
type Transcription struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	PatientID     *uuid.UUID `gorm:"type:uuid;index;column:patient_id" json:"patient_id,omitempty"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;column:appointment_id" json:"appointment_id,omitempty"`
	Title         string     `gorm:"not null;column:title" json:"title"`
	Description   string     `gorm:"column:description" json:"description"`
	Transcript    string     `gorm:"type:text;column:transcript" json:"transcript"`
	AudioKey      string     `gorm:"column:audio_key" json:"audio_key"`
	AudioURL      string     `gorm:"column:audio_url" json:"audio_url"`
	Duration      int        `gorm:"column:duration" json:"duration"`
	RecordedAt    time.Time  `gorm:"not null;index;column:recorded_at" json:"recorded_at"`
	CreatedAt     time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Transcription) TableName() string { return "transcription" }
