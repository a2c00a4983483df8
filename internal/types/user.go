package types

import (
	"time"

	"github.com/google/uuid"
)

// ViewPatient and ViewProfessional are the two dashboard views a
// professional account can switch between. Patient accounts always
// render the patient view.
const (
	ViewPatient      = "patient"
	ViewProfessional = "professional"
)

type User struct {
	ID                       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email                    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password                 string    `gorm:"not null;column:password" json:"-"`
	FirstName                string    `gorm:"column:first_name" json:"first_name"`
	LastName                 string    `gorm:"column:last_name" json:"last_name"`
	ProfileImageURL          string    `gorm:"column:profile_image_url" json:"profile_image_url"`
	IsHealthcareProfessional bool      `gorm:"not null;default:false;column:is_healthcare_professional" json:"is_healthcare_professional"`
	SetupCompleted           bool      `gorm:"not null;default:false;column:setup_completed" json:"setup_completed"`
	SetupStep                int       `gorm:"not null;default:0;column:setup_step" json:"setup_step"`
	CurrentView              string    `gorm:"column:current_view;default:patient" json:"current_view"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "user" }
