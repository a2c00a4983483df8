package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Medication struct {
	ID           uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name         string                      `gorm:"not null;column:name" json:"name"`
	Dosage       string                      `gorm:"not null;column:dosage" json:"dosage"`
	Frequency    string                      `gorm:"not null;column:frequency" json:"frequency"`
	Instructions string                      `gorm:"column:instructions" json:"instructions"`
	PrescribedBy string                      `gorm:"column:prescribed_by" json:"prescribed_by"`
	Purpose      string                      `gorm:"column:purpose" json:"purpose"`
	StartDate    time.Time                   `gorm:"not null;column:start_date" json:"start_date"`
	EndDate      *time.Time                  `gorm:"column:end_date" json:"end_date,omitempty"`
	IsActive     bool                        `gorm:"not null;default:true;column:is_active" json:"is_active"`
	SideEffects  datatypes.JSONSlice[string] `gorm:"column:side_effects" json:"side_effects"`
	CreatedAt    time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Medication) TableName() string { return "medication" }

// CurrentlyActive reports whether the medication should count as active.
// Both the flag and the end date signal retirement; callers must check both.
func (m *Medication) CurrentlyActive(now time.Time) bool {
	if !m.IsActive {
		return false
	}
	if m.EndDate != nil && m.EndDate.Before(now) {
		return false
	}
	return true
}
