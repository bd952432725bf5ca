package repository

import (
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Count(db *gorm.DB) (int64, error)
}
