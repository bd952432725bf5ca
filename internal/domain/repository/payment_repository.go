package repository

import (
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindAll(db *gorm.DB) ([]entity.Payment, error)
	SumTotalOn(db *gorm.DB, day time.Time) (decimal.Decimal, error)
	SumTotalSince(db *gorm.DB, since time.Time) (decimal.Decimal, error)
	SumRevenueByDoctor(db *gorm.DB) ([]entity.DoctorRevenue, error)
}
