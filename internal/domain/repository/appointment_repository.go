package repository

import (
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error)
	FindUpcomingByPatientID(db *gorm.DB, patientID int, limit int) ([]entity.Appointment, error)
	HasPendingOnDate(db *gorm.DB, patientID int, day time.Time) (bool, error)
	MarkCompleted(db *gorm.DB, id int) (int64, error)
	MarkCancelled(db *gorm.DB, id int) (int64, error)
}
