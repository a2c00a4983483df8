package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Insight types emitted by the generator.
const (
	InsightPattern        = "pattern"
	InsightObservation    = "observation"
	InsightRecommendation = "recommendation"
)

// AIInsight is immutable once created except for the read flag.
type AIInsight struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Type       string         `gorm:"not null;column:type" json:"type"`
	Title      string         `gorm:"not null;column:title" json:"title"`
	Content    string         `gorm:"not null;column:content" json:"content"`
	Confidence int            `gorm:"column:confidence" json:"confidence"`
	DataPoints datatypes.JSON `gorm:"column:data_points" json:"data_points,omitempty"`
	IsRead     bool           `gorm:"not null;default:false;column:is_read" json:"is_read"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (AIInsight) TableName() string { return "ai_insight" }
