package entity

import "time"

// VisitStatus represents the state of a visit
type VisitStatus string

const (
	VisitStatusInProgress VisitStatus = "in_progress"
	VisitStatusDischarged VisitStatus = "discharged"
)

// MedicalRecord represents a visit spawned from a checked-in appointment
type MedicalRecord struct {
	ID            int         `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int         `gorm:"not null;index" json:"patient_id"`
	DoctorID      int         `gorm:"not null;index" json:"doctor_id"`
	RoomID        string      `gorm:"type:varchar(10);not null" json:"room_id"`
	VisitTime     time.Time   `gorm:"autoCreateTime;index" json:"visit_time"`
	VisitStatus   VisitStatus `gorm:"type:varchar(12);not null;default:'in_progress';index" json:"visit_status"`
	Symptom       string      `gorm:"type:varchar(500)" json:"symptom,omitempty"`
	Prescription  string      `gorm:"type:varchar(500)" json:"prescription,omitempty"`
	AppointmentID *int        `gorm:"uniqueIndex" json:"appointment_id,omitempty"`

	// Relationships
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Room        Room         `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Payment     *Payment     `gorm:"foreignKey:RecordID" json:"payment,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// IsInProgress checks if the visit is still open
func (m *MedicalRecord) IsInProgress() bool {
	return m.VisitStatus == VisitStatusInProgress
}

// IsDischarged checks if the visit has been settled and closed
func (m *MedicalRecord) IsDischarged() bool {
	return m.VisitStatus == VisitStatusDischarged
}
