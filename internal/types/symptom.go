package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Severity bounds for a symptom entry.
const (
	SeverityMin = 1
	SeverityMax = 10
)

type Symptom struct {
	ID         uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID                   `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name       string                      `gorm:"not null;column:name" json:"name"`
	Severity   int                         `gorm:"not null;column:severity" json:"severity"`
	Location   string                      `gorm:"column:location" json:"location"`
	Duration   string                      `gorm:"column:duration" json:"duration"`
	Triggers   datatypes.JSONSlice[string] `gorm:"column:triggers" json:"triggers"`
	Notes      string                      `gorm:"column:notes" json:"notes"`
	OccurredAt time.Time                   `gorm:"not null;column:occurred_at" json:"occurred_at"`
	ResolvedAt *time.Time                  `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt  time.Time                   `gorm:"not null;default:now()" json:"created_at"`
}

func (Symptom) TableName() string { return "symptom" }
