package usecase

import (
	"testing"

	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDoctorGetMyRecords(t *testing.T) {
	userID := uuid.New()
	doctor := &entity.Doctor{ID: 3, UserID: userID, Name: "Li Na"}

	db, _ := newTestDB(t)
	doctorRepo := new(MockDoctorRepository)
	recordRepo := new(MockMedicalRecordRepository)

	doctorRepo.On("FindByUserID", mock.Anything, userID).Return(doctor, nil)
	recordRepo.On("FindInProgressByDoctorID", mock.Anything, 3).Return([]entity.MedicalRecord{
		{ID: 20, DoctorID: 3, VisitStatus: entity.VisitStatusInProgress},
	}, nil)

	uc := NewDoctorUsecase(db, testLogger(), doctorRepo, recordRepo, new(MockAuditService))
	resp, err := uc.GetMyRecords(patientContext(userID))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestDoctorUpdateRecord(t *testing.T) {
	userID := uuid.New()
	doctor := &entity.Doctor{ID: 3, UserID: userID, Name: "Li Na"}

	t.Run("success", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorRepository)
		recordRepo := new(MockMedicalRecordRepository)
		auditService := new(MockAuditService)

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, userID).Return(doctor, nil)
		recordRepo.On("FindByID", mock.Anything, 20).Return(&entity.MedicalRecord{
			ID: 20, DoctorID: 3, VisitStatus: entity.VisitStatusInProgress,
		}, nil)
		recordRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.MedicalRecord) bool {
			return r.Symptom == "persistent cough" && r.Prescription == "amoxicillin 500mg tid"
		})).Return(nil)
		auditService.On("Log", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionRecordUpdate, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		uc := NewDoctorUsecase(db, testLogger(), doctorRepo, recordRepo, auditService)
		resp, err := uc.UpdateRecord(patientContext(userID), 20, &dto.UpdateRecordRequest{
			Symptom:      "persistent cough",
			Prescription: "amoxicillin 500mg tid",
		})

		require.NoError(t, err)
		assert.Equal(t, "persistent cough", resp.Symptom)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("rejects another doctor's record", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorRepository)
		recordRepo := new(MockMedicalRecordRepository)

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, userID).Return(doctor, nil)
		recordRepo.On("FindByID", mock.Anything, 21).Return(&entity.MedicalRecord{
			ID: 21, DoctorID: 4, VisitStatus: entity.VisitStatusInProgress,
		}, nil)
		dbMock.ExpectRollback()

		uc := NewDoctorUsecase(db, testLogger(), doctorRepo, recordRepo, new(MockAuditService))
		_, err := uc.UpdateRecord(patientContext(userID), 21, &dto.UpdateRecordRequest{Symptom: "x"})

		assert.ErrorIs(t, err, ErrRecordNotOwned)
		recordRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects discharged record", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorRepository)
		recordRepo := new(MockMedicalRecordRepository)

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, userID).Return(doctor, nil)
		recordRepo.On("FindByID", mock.Anything, 22).Return(&entity.MedicalRecord{
			ID: 22, DoctorID: 3, VisitStatus: entity.VisitStatusDischarged,
		}, nil)
		dbMock.ExpectRollback()

		uc := NewDoctorUsecase(db, testLogger(), doctorRepo, recordRepo, new(MockAuditService))
		_, err := uc.UpdateRecord(patientContext(userID), 22, &dto.UpdateRecordRequest{Symptom: "x"})

		assert.ErrorIs(t, err, ErrRecordNotEditble)
	})

	t.Run("account without doctor profile is refused", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorRepository)

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, userID).Return(nil, nil)
		dbMock.ExpectRollback()

		uc := NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockMedicalRecordRepository), new(MockAuditService))
		_, err := uc.UpdateRecord(patientContext(userID), 20, &dto.UpdateRecordRequest{Symptom: "x"})

		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}
