package entity

import "github.com/google/uuid"

// WorkStatus represents a doctor's employment status
type WorkStatus string

const (
	WorkStatusActive   WorkStatus = "active"
	WorkStatusInactive WorkStatus = "inactive"
)

// Doctor represents a practicing doctor linked to a login account
type Doctor struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name         string     `gorm:"type:varchar(20);not null" json:"name"`
	DepartmentID int        `gorm:"not null;index" json:"department_id"`
	Title        string     `gorm:"type:varchar(20);not null" json:"title"`
	Phone        string     `gorm:"type:varchar(11);not null" json:"phone"`
	WorkStatus   WorkStatus `gorm:"type:varchar(10);not null;default:'active';index" json:"work_status"`

	// Relationships
	User       User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department Department      `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Schedules  []Schedule      `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	Records    []MedicalRecord `gorm:"foreignKey:DoctorID" json:"records,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsActive reports whether the doctor can be assigned new visits.
func (d *Doctor) IsActive() bool {
	return d.WorkStatus == WorkStatusActive
}
