package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HealthReport is a generated snapshot for provider handover. Immutable.
type HealthReport struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Title       string         `gorm:"not null;column:title" json:"title"`
	Content     datatypes.JSON `gorm:"not null;column:content" json:"content"`
	GeneratedAt time.Time      `gorm:"not null;default:now();column:generated_at" json:"generated_at"`
	PeriodStart time.Time      `gorm:"not null;column:period_start" json:"period_start"`
	PeriodEnd   time.Time      `gorm:"not null;column:period_end" json:"period_end"`
	ReportType  string         `gorm:"not null;column:report_type" json:"report_type"`
	FileURL     string         `gorm:"column:file_url" json:"file_url"`
}

func (HealthReport) TableName() string { return "health_report" }
