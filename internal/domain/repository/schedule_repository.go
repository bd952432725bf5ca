package repository

import (
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByDoctorDateSlot(db *gorm.DB, doctorID int, date time.Time, slot string) (*entity.Schedule, error)
	FindAll(db *gorm.DB) ([]entity.Schedule, error)
}
