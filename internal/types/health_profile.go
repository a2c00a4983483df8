package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HealthProfile struct {
	ID                  uuid.UUID                    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID              uuid.UUID                    `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	DateOfBirth         *time.Time                   `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	EmergencyContact    string                       `gorm:"column:emergency_contact" json:"emergency_contact"`
	EmergencyPhone      string                       `gorm:"column:emergency_phone" json:"emergency_phone"`
	Allergies           datatypes.JSONSlice[string]  `gorm:"column:allergies" json:"allergies"`
	ChronicConditions   datatypes.JSONSlice[string]  `gorm:"column:chronic_conditions" json:"chronic_conditions"`
	PreferredPharmacy   string                       `gorm:"column:preferred_pharmacy" json:"preferred_pharmacy"`
	InsuranceProvider   string                       `gorm:"column:insurance_provider" json:"insurance_provider"`
	PrimaryCareProvider string                       `gorm:"column:primary_care_provider" json:"primary_care_provider"`
	CreatedAt           time.Time                    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time                    `gorm:"not null;default:now()" json:"updated_at"`
}

func (HealthProfile) TableName() string { return "health_profile" }
