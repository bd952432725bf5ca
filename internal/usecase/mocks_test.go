package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB opens gorm over sqlmock so transaction boundaries can be
// asserted while repositories stay mocked.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, dbMock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	args := m.Called(db, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindByID(db *gorm.DB, id int) (*entity.Department, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(db *gorm.DB, room *entity.Room) error {
	args := m.Called(db, room)
	return args.Error(0)
}

func (m *MockRoomRepository) FindByID(db *gorm.DB, id string) (*entity.Room, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindFirstByDepartment(db *gorm.DB, departmentID int) (*entity.Room, error) {
	args := m.Called(db, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	args := m.Called(db, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindFirstActiveByDepartment(db *gorm.DB, departmentID int) (*entity.Doctor, error) {
	args := m.Called(db, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	args := m.Called(db, patientID)
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindUpcomingByPatientID(db *gorm.DB, patientID int, limit int) ([]entity.Appointment, error) {
	args := m.Called(db, patientID, limit)
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) HasPendingOnDate(db *gorm.DB, patientID int, day time.Time) (bool, error) {
	args := m.Called(db, patientID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) MarkCompleted(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) MarkCancelled(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	args := m.Called(db, record)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindAll(db *gorm.DB) ([]entity.MedicalRecord, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindInProgressByDoctorID(db *gorm.DB, doctorID int) ([]entity.MedicalRecord, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).([]entity.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	args := m.Called(db, record)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) MarkDischarged(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMedicalRecordRepository) CountVisitsOn(db *gorm.DB, day time.Time) (int64, error) {
	args := m.Called(db, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMedicalRecordRepository) CountVisitsByDepartment(db *gorm.DB) ([]entity.DepartmentVisits, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.DepartmentVisits), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	args := m.Called(db, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindAll(db *gorm.DB) ([]entity.Payment, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumTotalOn(db *gorm.DB, day time.Time) (decimal.Decimal, error) {
	args := m.Called(db, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SumTotalSince(db *gorm.DB, since time.Time) (decimal.Decimal, error) {
	args := m.Called(db, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SumRevenueByDoctor(db *gorm.DB) ([]entity.DoctorRevenue, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.DoctorRevenue), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	args := m.Called(db, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindByDoctorDateSlot(db *gorm.DB, doctorID int, date time.Time, slot string) (*entity.Schedule, error) {
	args := m.Called(db, doctorID, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindAll(db *gorm.DB) ([]entity.Schedule, error) {
	args := m.Called(db)
	return args.Get(0).([]entity.Schedule), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	args := m.Called(db, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Log(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	args := m.Called(ctx, tx, userID, action, metadata)
	return args.Error(0)
}
