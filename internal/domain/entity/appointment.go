package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a patient's booking with a department.
// The (patient_id, arrival_time, department_id) triple is unique.
type Appointment struct {
	ID           int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    int               `gorm:"not null;index;uniqueIndex:idx_patient_arrival_dept" json:"patient_id"`
	DepartmentID int               `gorm:"not null;index;uniqueIndex:idx_patient_arrival_dept" json:"department_id"`
	ArrivalTime  time.Time         `gorm:"not null;uniqueIndex:idx_patient_arrival_dept" json:"arrival_time"`
	Status       AppointmentStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient    Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Department Department     `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Record     *MedicalRecord `gorm:"foreignKey:AppointmentID" json:"record,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment has not yet been checked in or cancelled
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCompleted checks if the appointment was checked in
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
