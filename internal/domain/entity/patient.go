package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Patient represents a patient profile linked to a login account.
// An authenticated patient account without a Patient row is treated as an
// incomplete profile and must finish it before booking.
type Patient struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name       string    `gorm:"type:varchar(20);not null" json:"name"`
	Gender     string    `gorm:"type:char(1);not null" json:"gender"`
	NationalID string    `gorm:"type:varchar(18);uniqueIndex;not null" json:"national_id"`
	Phone      string    `gorm:"type:varchar(11);not null" json:"phone"`
	BirthDate  time.Time `gorm:"type:date;not null" json:"birth_date"`

	// Relationships
	User         User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Records      []MedicalRecord `gorm:"foreignKey:PatientID" json:"records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
