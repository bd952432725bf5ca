package repository

import (
	"errors"
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	domainRepo "github.com/sleepysheepppp/hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Preload("Patient").Preload("Doctor").Preload("Room").
		Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Preload("Patient").Preload("Doctor").Preload("Room").
		Order("visit_time DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindInProgressByDoctorID(db *gorm.DB, doctorID int) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Preload("Patient").Preload("Room").
		Where("doctor_id = ? AND visit_status = ?", doctorID, entity.VisitStatusInProgress).
		Order("visit_time ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Omit("Patient", "Doctor", "Room", "Appointment", "Payment").Save(record).Error
}

// MarkDischarged atomically discharges a record ONLY while the visit is open.
// Returns affected rows: 1 = success, 0 = missing or already discharged.
func (r *medicalRecordRepository) MarkDischarged(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.MedicalRecord{}).
		Where("id = ? AND visit_status = ?", id, entity.VisitStatusInProgress).
		Update("visit_status", entity.VisitStatusDischarged)
	return result.RowsAffected, result.Error
}

func (r *medicalRecordRepository) CountVisitsOn(db *gorm.DB, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := db.Model(&entity.MedicalRecord{}).
		Where("visit_time >= ? AND visit_time < ?", start, end).
		Count(&count).Error
	return count, err
}

// CountVisitsByDepartment groups visit counts by the treating doctor's
// department, descending.
func (r *medicalRecordRepository) CountVisitsByDepartment(db *gorm.DB) ([]entity.DepartmentVisits, error) {
	var rows []entity.DepartmentVisits
	err := db.Model(&entity.MedicalRecord{}).
		Select("departments.name AS department_name, COUNT(medical_records.id) AS visit_count").
		Joins("JOIN doctors ON doctors.id = medical_records.doctor_id").
		Joins("JOIN departments ON departments.id = doctors.department_id").
		Group("departments.name").
		Order("visit_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
