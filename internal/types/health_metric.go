package types

import (
	"time"

	"github.com/google/uuid"
)

// HealthMetric stores a generic typed measurement. Value stays a string so
// heterogeneous formats ("120/80", "72.5") fit without per-type columns.
type HealthMetric struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Type       string    `gorm:"not null;column:type" json:"type"`
	Value      string    `gorm:"not null;column:value" json:"value"`
	Unit       string    `gorm:"column:unit" json:"unit"`
	MeasuredAt time.Time `gorm:"not null;column:measured_at" json:"measured_at"`
	Notes      string    `gorm:"column:notes" json:"notes"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (HealthMetric) TableName() string { return "health_metric" }
