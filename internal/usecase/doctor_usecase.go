package usecase

import (
	"context"
	"errors"

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
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrRecordNotOwned   = errors.New("medical record is not assigned to you")
	ErrRecordNotEditble = errors.New("only in-progress records can be updated")
)

type DoctorUsecase interface {
	GetMyRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error)
	UpdateRecord(ctx context.Context, recordID int, req *dto.UpdateRecordRequest) (*dto.MedicalRecordResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	recordRepo   repository.MedicalRecordRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	recordRepo repository.MedicalRecordRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		recordRepo:   recordRepo,
		auditService: auditService,
	}
}

// requireDoctor resolves the calling user to their doctor row.
func (u *doctorUsecase) requireDoctor(ctx context.Context, db *gorm.DB) (*entity.Doctor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by user ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

// GetMyRecords lists the caller's open visits.
func (u *doctorUsecase) GetMyRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error) {
	doctor, err := u.requireDoctor(ctx, u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	records, err := u.recordRepo.FindInProgressByDoctorID(u.db.WithContext(ctx), doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to list records for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// UpdateRecord writes symptom and prescription onto one of the caller's
// in-progress visits.
func (u *doctorUsecase) UpdateRecord(ctx context.Context, recordID int, req *dto.UpdateRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.requireDoctor(ctx, tx)
	if err != nil {
		return nil, err
	}

	record, err := u.recordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %d: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.DoctorID != doctor.ID {
		return nil, ErrRecordNotOwned
	}
	if !record.IsInProgress() {
		return nil, ErrRecordNotEditble
	}

	record.Symptom = req.Symptom
	record.Prescription = req.Prescription

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record %d: %+v", recordID, err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &doctor.UserID, entity.AuditActionRecordUpdate, entity.JSON{
		"record_id": record.ID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}
