package repository

import (
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindFirstActiveByDepartment(db *gorm.DB, departmentID int) (*entity.Doctor, error)
	Count(db *gorm.DB) (int64, error)
}
