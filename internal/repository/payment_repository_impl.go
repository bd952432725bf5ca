package repository

import (
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	domainRepo "github.com/sleepysheepppp/hospital-management/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindAll(db *gorm.DB) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("Record").Preload("Record.Patient").
		Order("pay_time DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) SumTotalOn(db *gorm.DB, day time.Time) (decimal.Decimal, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.sumTotalBetween(db, start, start.AddDate(0, 0, 1))
}

func (r *paymentRepository) SumTotalSince(db *gorm.DB, since time.Time) (decimal.Decimal, error) {
	return r.sumTotalBetween(db, since, time.Time{})
}

func (r *paymentRepository) sumTotalBetween(db *gorm.DB, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	query := db.Model(&entity.Payment{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("pay_time >= ?", start)
	if !end.IsZero() {
		query = query.Where("pay_time < ?", end)
	}
	err := query.Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// SumRevenueByDoctor groups payment sums by the treating doctor, descending
// total.
func (r *paymentRepository) SumRevenueByDoctor(db *gorm.DB) ([]entity.DoctorRevenue, error) {
	var rows []entity.DoctorRevenue
	err := db.Model(&entity.Payment{}).
		Select(`doctors.name AS doctor_name,
			SUM(payments.total_amount) AS total,
			SUM(payments.insurance_amount) AS insurance,
			SUM(payments.self_pay_amount) AS self_pay,
			COUNT(payments.id) AS payment_count`).
		Joins("JOIN medical_records ON medical_records.id = payments.record_id").
		Joins("JOIN doctors ON doctors.id = medical_records.doctor_id").
		Group("doctors.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
