package usecase

import (
	"testing"

	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyAppointment(t *testing.T) {
	clerkID := uuid.New()
	pendingAppointment := func() *entity.Appointment {
		return &entity.Appointment{
			ID:           10,
			PatientID:    7,
			DepartmentID: 2,
			Status:       entity.AppointmentStatusPending,
		}
	}
	doctor := &entity.Doctor{ID: 3, Name: "Li Na", DepartmentID: 2, WorkStatus: entity.WorkStatusActive}
	room := &entity.Room{ID: "A-101", DepartmentID: 2}

	t.Run("success opens a visit", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		roomRepo := new(MockRoomRepository)
		recordRepo := new(MockMedicalRecordRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, 10).Return(pendingAppointment(), nil)
		doctorRepo.On("FindFirstActiveByDepartment", mock.Anything, 2).Return(doctor, nil)
		roomRepo.On("FindFirstByDepartment", mock.Anything, 2).Return(room, nil)
		appointmentRepo.On("MarkCompleted", mock.Anything, 10).Return(int64(1), nil)
		recordRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.MedicalRecord) bool {
			return r.PatientID == 7 && r.DoctorID == 3 && r.RoomID == "A-101" &&
				r.VisitStatus == entity.VisitStatusInProgress &&
				r.AppointmentID != nil && *r.AppointmentID == 10
		})).Return(nil)
		auditService.On("Log", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentCheckIn, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		uc := NewReceptionUsecase(db, testLogger(), appointmentRepo, doctorRepo, roomRepo, recordRepo, new(MockPaymentRepository), auditService)
		record, err := uc.VerifyAppointment(patientContext(clerkID), &dto.VerifyAppointmentRequest{AppointmentID: 10})

		require.NoError(t, err)
		assert.Equal(t, "Li Na", record.DoctorName)
		assert.Equal(t, "A-101", record.RoomID)
		assert.Equal(t, "in_progress", record.VisitStatus)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("rejects already processed appointment", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, 10).Return(&entity.Appointment{
			ID: 10, Status: entity.AppointmentStatusCompleted,
		}, nil)
		dbMock.ExpectRollback()

		uc := NewReceptionUsecase(db, testLogger(), appointmentRepo, new(MockDoctorRepository), new(MockRoomRepository), new(MockMedicalRecordRepository), new(MockPaymentRepository), new(MockAuditService))
		_, err := uc.VerifyAppointment(patientContext(clerkID), &dto.VerifyAppointmentRequest{AppointmentID: 10})

		assert.ErrorIs(t, err, ErrAppointmentNotPending)
	})

	t.Run("second clerk loses the race", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)
		roomRepo := new(MockRoomRepository)
		recordRepo := new(MockMedicalRecordRepository)

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, 10).Return(pendingAppointment(), nil)
		doctorRepo.On("FindFirstActiveByDepartment", mock.Anything, 2).Return(doctor, nil)
		roomRepo.On("FindFirstByDepartment", mock.Anything, 2).Return(room, nil)
		// The other clerk's transaction completed the appointment first
		appointmentRepo.On("MarkCompleted", mock.Anything, 10).Return(int64(0), nil)
		dbMock.ExpectRollback()

		uc := NewReceptionUsecase(db, testLogger(), appointmentRepo, doctorRepo, roomRepo, recordRepo, new(MockPaymentRepository), new(MockAuditService))
		_, err := uc.VerifyAppointment(patientContext(clerkID), &dto.VerifyAppointmentRequest{AppointmentID: 10})

		assert.ErrorIs(t, err, ErrAppointmentNotPending)
		recordRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("no active doctor in department", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorRepository)

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, 10).Return(pendingAppointment(), nil)
		doctorRepo.On("FindFirstActiveByDepartment", mock.Anything, 2).Return(nil, nil)
		dbMock.ExpectRollback()

		uc := NewReceptionUsecase(db, testLogger(), appointmentRepo, doctorRepo, new(MockRoomRepository), new(MockMedicalRecordRepository), new(MockPaymentRepository), new(MockAuditService))
		_, err := uc.VerifyAppointment(patientContext(clerkID), &dto.VerifyAppointmentRequest{AppointmentID: 10})

		assert.ErrorIs(t, err, ErrNoActiveDoctor)
	})
}

func TestSettlePayment(t *testing.T) {
	clerkID := uuid.New()
	openRecord := func() *entity.MedicalRecord {
		return &entity.MedicalRecord{
			ID:          20,
			PatientID:   7,
			DoctorID:    3,
			RoomID:      "A-101",
			VisitStatus: entity.VisitStatusInProgress,
		}
	}

	t.Run("success discharges the visit", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		recordRepo := new(MockMedicalRecordRepository)
		paymentRepo := new(MockPaymentRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		recordRepo.On("FindByID", mock.Anything, 20).Return(openRecord(), nil)
		paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.RecordID == 20 &&
				p.SelfPayAmount.Equal(decimal.RequireFromString("180.00")) &&
				p.Method == entity.PaymentMethodWeChat
		})).Return(nil)
		recordRepo.On("MarkDischarged", mock.Anything, 20).Return(int64(1), nil)
		auditService.On("Log", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionPaymentSettle, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		uc := NewReceptionUsecase(db, testLogger(), new(MockAppointmentRepository), new(MockDoctorRepository), new(MockRoomRepository), recordRepo, paymentRepo, auditService)
		payment, err := uc.SettlePayment(patientContext(clerkID), &dto.SettlePaymentRequest{
			RecordID:        20,
			TotalAmount:     "300.00",
			InsuranceAmount: "120.00",
			Method:          "wechat",
		})

		require.NoError(t, err)
		assert.Equal(t, "180.00", payment.SelfPayAmount)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("insurance exceeding total is rejected", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		recordRepo := new(MockMedicalRecordRepository)
		paymentRepo := new(MockPaymentRepository)

		dbMock.ExpectBegin()
		recordRepo.On("FindByID", mock.Anything, 20).Return(openRecord(), nil)
		dbMock.ExpectRollback()

		uc := NewReceptionUsecase(db, testLogger(), new(MockAppointmentRepository), new(MockDoctorRepository), new(MockRoomRepository), recordRepo, paymentRepo, new(MockAuditService))
		_, err := uc.SettlePayment(patientContext(clerkID), &dto.SettlePaymentRequest{
			RecordID:        20,
			TotalAmount:     "100.00",
			InsuranceAmount: "150.00",
			Method:          "cash",
		})

		assert.ErrorIs(t, err, entity.ErrInsuranceExceeds)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed amount is rejected before any query", func(t *testing.T) {
		db, _ := newTestDB(t)
		uc := NewReceptionUsecase(db, testLogger(), new(MockAppointmentRepository), new(MockDoctorRepository), new(MockRoomRepository), new(MockMedicalRecordRepository), new(MockPaymentRepository), new(MockAuditService))

		_, err := uc.SettlePayment(patientContext(clerkID), &dto.SettlePaymentRequest{
			RecordID:    20,
			TotalAmount: "three hundred",
			Method:      "cash",
		})

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("discharged record cannot be settled again", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		recordRepo := new(MockMedicalRecordRepository)

		discharged := openRecord()
		discharged.VisitStatus = entity.VisitStatusDischarged

		dbMock.ExpectBegin()
		recordRepo.On("FindByID", mock.Anything, 20).Return(discharged, nil)
		dbMock.ExpectRollback()

		uc := NewReceptionUsecase(db, testLogger(), new(MockAppointmentRepository), new(MockDoctorRepository), new(MockRoomRepository), recordRepo, new(MockPaymentRepository), new(MockAuditService))
		_, err := uc.SettlePayment(patientContext(clerkID), &dto.SettlePaymentRequest{
			RecordID:    20,
			TotalAmount: "300.00",
			Method:      "cash",
		})

		assert.ErrorIs(t, err, ErrRecordNotInProgress)
	})

	t.Run("concurrent settlement hits the unique constraint", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		recordRepo := new(MockMedicalRecordRepository)
		paymentRepo := new(MockPaymentRepository)

		dbMock.ExpectBegin()
		recordRepo.On("FindByID", mock.Anything, 20).Return(openRecord(), nil)
		paymentRepo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "payments_record_id_key",
		})
		dbMock.ExpectRollback()

		uc := NewReceptionUsecase(db, testLogger(), new(MockAppointmentRepository), new(MockDoctorRepository), new(MockRoomRepository), recordRepo, paymentRepo, new(MockAuditService))
		_, err := uc.SettlePayment(patientContext(clerkID), &dto.SettlePaymentRequest{
			RecordID:    20,
			TotalAmount: "300.00",
			Method:      "cash",
		})

		assert.ErrorIs(t, err, ErrRecordAlreadySettled)
	})
}

func TestReceptionDashboard(t *testing.T) {
	db, _ := newTestDB(t)
	recordRepo := new(MockMedicalRecordRepository)
	paymentRepo := new(MockPaymentRepository)

	recordRepo.On("CountVisitsOn", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(12), nil)
	paymentRepo.On("SumTotalOn", mock.Anything, mock.AnythingOfType("time.Time")).Return(decimal.RequireFromString("4321.50"), nil)

	uc := NewReceptionUsecase(db, testLogger(), new(MockAppointmentRepository), new(MockDoctorRepository), new(MockRoomRepository), recordRepo, paymentRepo, new(MockAuditService))
	dashboard, err := uc.GetDashboard(patientContext(uuid.New()))

	require.NoError(t, err)
	assert.Equal(t, int64(12), dashboard.TodayVisits)
	assert.Equal(t, "4321.50", dashboard.TodayPayments)
}
