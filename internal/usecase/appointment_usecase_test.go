package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/delivery/http/middleware"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateArrivalTime(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 45, 0, time.Local)

	tests := []struct {
		name    string
		arrival time.Time
		wantErr error
	}{
		{
			name:    "zero time",
			arrival: time.Time{},
			wantErr: ErrArrivalTimeRequired,
		},
		{
			name:    "one minute ago",
			arrival: time.Date(2026, 8, 31, 10, 29, 0, 0, time.Local),
			wantErr: ErrArrivalTimeInPast,
		},
		{
			name:    "same minute as now",
			arrival: time.Date(2026, 8, 31, 10, 30, 0, 0, time.Local),
		},
		{
			name:    "tomorrow morning",
			arrival: time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local),
		},
		{
			name:    "exactly seven days ahead",
			arrival: time.Date(2026, 9, 7, 10, 30, 0, 0, time.Local),
		},
		{
			name:    "one minute past the window",
			arrival: time.Date(2026, 9, 7, 10, 31, 0, 0, time.Local),
			wantErr: ErrArrivalTimeTooFar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArrivalTime(tt.arrival, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func patientContext(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

func TestCreateAppointment(t *testing.T) {
	userID := uuid.New()
	patient := &entity.Patient{ID: 7, UserID: userID, Name: "Zhang Wei"}
	department := &entity.Department{ID: 2, Name: "Cardiology"}
	arrival := time.Now().Truncate(time.Minute).Add(24 * time.Hour)

	t.Run("success", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		departmentRepo := new(MockDepartmentRepository)
		patientRepo := new(MockPatientRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		patientRepo.On("FindByUserID", mock.Anything, userID).Return(patient, nil)
		departmentRepo.On("FindByID", mock.Anything, 2).Return(department, nil)
		appointmentRepo.On("HasPendingOnDate", mock.Anything, 7, arrival).Return(false, nil)
		appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
			return a.PatientID == 7 && a.DepartmentID == 2 && a.Status == entity.AppointmentStatusPending
		})).Return(nil)
		auditService.On("Log", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentCreate, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, departmentRepo, patientRepo, auditService)
		resp, err := uc.CreateAppointment(patientContext(userID), &dto.CreateAppointmentRequest{
			DepartmentID: 2,
			ArrivalTime:  arrival.Format("2006-01-02T15:04"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Cardiology", resp.DepartmentName)
		assert.Equal(t, "pending", resp.Status)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("rejects same-day pending conflict", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		departmentRepo := new(MockDepartmentRepository)
		patientRepo := new(MockPatientRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		patientRepo.On("FindByUserID", mock.Anything, userID).Return(patient, nil)
		departmentRepo.On("FindByID", mock.Anything, 2).Return(department, nil)
		appointmentRepo.On("HasPendingOnDate", mock.Anything, 7, arrival).Return(true, nil)
		dbMock.ExpectRollback()

		uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, departmentRepo, patientRepo, auditService)
		_, err := uc.CreateAppointment(patientContext(userID), &dto.CreateAppointmentRequest{
			DepartmentID: 2,
			ArrivalTime:  arrival.Format("2006-01-02T15:04"),
		})

		assert.ErrorIs(t, err, ErrPendingOnSameDay)
		appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects incomplete profile", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		departmentRepo := new(MockDepartmentRepository)
		patientRepo := new(MockPatientRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		patientRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)
		dbMock.ExpectRollback()

		uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, departmentRepo, patientRepo, auditService)
		_, err := uc.CreateAppointment(patientContext(userID), &dto.CreateAppointmentRequest{
			DepartmentID: 2,
			ArrivalTime:  arrival.Format("2006-01-02T15:04"),
		})

		assert.ErrorIs(t, err, ErrProfileIncomplete)
	})

	t.Run("rejects unknown department", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		departmentRepo := new(MockDepartmentRepository)
		patientRepo := new(MockPatientRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		patientRepo.On("FindByUserID", mock.Anything, userID).Return(patient, nil)
		departmentRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)
		dbMock.ExpectRollback()

		uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, departmentRepo, patientRepo, auditService)
		_, err := uc.CreateAppointment(patientContext(userID), &dto.CreateAppointmentRequest{
			DepartmentID: 99,
			ArrivalTime:  arrival.Format("2006-01-02T15:04"),
		})

		assert.ErrorIs(t, err, ErrDepartmentNotFound)
	})

	t.Run("rejects malformed arrival time", func(t *testing.T) {
		db, _ := newTestDB(t)
		uc := NewAppointmentUsecase(db, testLogger(), new(MockAppointmentRepository), new(MockDepartmentRepository), new(MockPatientRepository), new(MockAuditService))

		_, err := uc.CreateAppointment(patientContext(userID), &dto.CreateAppointmentRequest{
			DepartmentID: 2,
			ArrivalTime:  "31/08/2026 10:00",
		})

		assert.ErrorIs(t, err, ErrInvalidArrivalFormat)
	})
}

func TestCancelAppointment(t *testing.T) {
	userID := uuid.New()
	patient := &entity.Patient{ID: 7, UserID: userID}

	t.Run("success", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		patientRepo.On("FindByUserID", mock.Anything, userID).Return(patient, nil)
		appointmentRepo.On("FindByID", mock.Anything, 5).Return(&entity.Appointment{
			ID: 5, PatientID: 7, Status: entity.AppointmentStatusPending,
		}, nil)
		appointmentRepo.On("MarkCancelled", mock.Anything, 5).Return(int64(1), nil)
		auditService.On("Log", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentCancel, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, new(MockDepartmentRepository), patientRepo, auditService)
		err := uc.CancelAppointment(patientContext(userID), 5)

		require.NoError(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("lost race reports already processed", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)

		dbMock.ExpectBegin()
		patientRepo.On("FindByUserID", mock.Anything, userID).Return(patient, nil)
		appointmentRepo.On("FindByID", mock.Anything, 5).Return(&entity.Appointment{
			ID: 5, PatientID: 7, Status: entity.AppointmentStatusPending,
		}, nil)
		// Another request completed or cancelled it between read and update
		appointmentRepo.On("MarkCancelled", mock.Anything, 5).Return(int64(0), nil)
		dbMock.ExpectRollback()

		uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, new(MockDepartmentRepository), patientRepo, new(MockAuditService))
		err := uc.CancelAppointment(patientContext(userID), 5)

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("rejects another patient's appointment", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)

		dbMock.ExpectBegin()
		patientRepo.On("FindByUserID", mock.Anything, userID).Return(patient, nil)
		appointmentRepo.On("FindByID", mock.Anything, 6).Return(&entity.Appointment{
			ID: 6, PatientID: 8, Status: entity.AppointmentStatusPending,
		}, nil)
		dbMock.ExpectRollback()

		uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, new(MockDepartmentRepository), patientRepo, new(MockAuditService))
		err := uc.CancelAppointment(patientContext(userID), 6)

		assert.ErrorIs(t, err, ErrAppointmentNotOwned)
		appointmentRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
	})
}

func TestGetDashboard(t *testing.T) {
	userID := uuid.New()
	patient := &entity.Patient{ID: 7, UserID: userID}

	db, _ := newTestDB(t)
	appointmentRepo := new(MockAppointmentRepository)
	patientRepo := new(MockPatientRepository)

	patientRepo.On("FindByUserID", mock.Anything, userID).Return(patient, nil)
	appointmentRepo.On("FindUpcomingByPatientID", mock.Anything, 7, 3).Return([]entity.Appointment{
		{ID: 1, Status: entity.AppointmentStatusPending},
		{ID: 2, Status: entity.AppointmentStatusPending},
	}, nil)

	uc := NewAppointmentUsecase(db, testLogger(), appointmentRepo, new(MockDepartmentRepository), patientRepo, new(MockAuditService))
	resp, err := uc.GetDashboard(patientContext(userID))

	require.NoError(t, err)
	assert.Len(t, resp.UpcomingAppointments, 2)
}
