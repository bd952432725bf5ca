package repository

import (
	"errors"
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	domainRepo "github.com/sleepysheepppp/hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByDoctorDateSlot(db *gorm.DB, doctorID int, date time.Time, slot string) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Where("doctor_id = ? AND schedule_date = ? AND time_slot = ?", doctorID, date, slot).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindAll(db *gorm.DB) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Preload("Doctor").Preload("Room").
		Order("schedule_date DESC, time_slot ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
