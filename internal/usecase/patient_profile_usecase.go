package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sleepysheepppp/hospital-management/internal/converter"
	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/delivery/http/middleware"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	"github.com/sleepysheepppp/hospital-management/internal/domain/repository"
	"github.com/sleepysheepppp/hospital-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileIncomplete       = errors.New("patient profile is not completed")
	ErrNationalIDAlreadyExists = errors.New("national ID already registered")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientProfileUsecase interface {
	GetProfile(ctx context.Context) (*dto.PatientResponse, error)
	UpsertProfile(ctx context.Context, req *dto.UpsertPatientProfileRequest) (*dto.PatientResponse, error)
}

type patientProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientProfileUsecase) GetProfile(ctx context.Context) (*dto.PatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrProfileIncomplete
	}

	return converter.PatientToResponse(patient), nil
}

// UpsertProfile completes a missing profile or updates an existing one.
// A completed profile is the gate for every other patient operation.
func (u *patientProfileUsecase) UpsertProfile(ctx context.Context, req *dto.UpsertPatientProfileRequest) (*dto.PatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}

	if patient == nil {
		patient = &entity.Patient{
			UserID:     userID,
			Name:       req.Name,
			Gender:     req.Gender,
			NationalID: req.NationalID,
			Phone:      req.Phone,
			BirthDate:  birthDate,
		}
		if err := u.patientRepo.Create(tx, patient); err != nil {
			if isDuplicateKeyError(err, "national_id") {
				return nil, ErrNationalIDAlreadyExists
			}
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return nil, err
		}
	} else {
		patient.Name = req.Name
		patient.Gender = req.Gender
		patient.NationalID = req.NationalID
		patient.Phone = req.Phone
		patient.BirthDate = birthDate
		if err := u.patientRepo.Update(tx, patient); err != nil {
			if isDuplicateKeyError(err, "national_id") {
				return nil, ErrNationalIDAlreadyExists
			}
			u.log.Warnf("Failed to update patient profile: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionProfileUpdate, entity.JSON{
		"patient_id": patient.ID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}
