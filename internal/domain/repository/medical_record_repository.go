package repository

import (
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error)
	FindAll(db *gorm.DB) ([]entity.MedicalRecord, error)
	FindInProgressByDoctorID(db *gorm.DB, doctorID int) ([]entity.MedicalRecord, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	MarkDischarged(db *gorm.DB, id int) (int64, error)
	CountVisitsOn(db *gorm.DB, day time.Time) (int64, error)
	CountVisitsByDepartment(db *gorm.DB) ([]entity.DepartmentVisits, error)
}
