package repository

import (
	"errors"
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	domainRepo "github.com/sleepysheepppp/hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Department").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Department").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByPatientID(db *gorm.DB, patientID int, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Department").
		Where("patient_id = ? AND status = ?", patientID, entity.AppointmentStatusPending).
		Order("arrival_time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// HasPendingOnDate reports whether the patient already holds a pending
// appointment whose arrival date falls on the given calendar day, regardless
// of department.
func (r *appointmentRepository) HasPendingOnDate(db *gorm.DB, patientID int, day time.Time) (bool, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND status = ? AND arrival_time >= ? AND arrival_time < ?",
			patientID, entity.AppointmentStatusPending, start, end).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkCompleted atomically completes an appointment ONLY while it is pending.
// Returns affected rows: 1 = success, 0 = missing or already processed.
func (r *appointmentRepository) MarkCompleted(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusPending).
		Update("status", entity.AppointmentStatusCompleted)
	return result.RowsAffected, result.Error
}

// MarkCancelled atomically cancels an appointment ONLY while it is pending.
// Returns affected rows: 1 = success, 0 = missing or already processed.
func (r *appointmentRepository) MarkCancelled(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusPending).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}
