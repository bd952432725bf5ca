package repository

import (
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindByID(db *gorm.DB, id int) (*entity.Department, error)
	FindAll(db *gorm.DB) ([]entity.Department, error)
	Count(db *gorm.DB) (int64, error)
}

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	FindByID(db *gorm.DB, id string) (*entity.Room, error)
	FindFirstByDepartment(db *gorm.DB, departmentID int) (*entity.Room, error)
}
