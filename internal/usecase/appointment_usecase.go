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

// arrivalTimeLayout matches the browser's datetime-local input, minute
// precision.
const arrivalTimeLayout = "2006-01-02T15:04"

// maxBookingWindow caps how far ahead an arrival time may be booked.
const maxBookingWindow = 7 * 24 * time.Hour

var (
	ErrAppointmentNotFound  = errors.New("appointment not found or already processed")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to you")
	ErrArrivalTimeRequired  = errors.New("arrival time is required")
	ErrArrivalTimeInPast    = errors.New("arrival time must not be earlier than now")
	ErrArrivalTimeTooFar    = errors.New("arrival time must be within the next 7 days")
	ErrPendingOnSameDay     = errors.New("you already have a pending appointment on that day")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrInvalidArrivalFormat = errors.New("invalid arrival time format, use YYYY-MM-DDTHH:MM")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID int) error
	GetDashboard(ctx context.Context) (*dto.PatientDashboardResponse, error)
	GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	departmentRepo  repository.DepartmentRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	departmentRepo repository.DepartmentRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		departmentRepo:  departmentRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
	}
}

// validateArrivalTime enforces the booking window: the requested arrival must
// not be earlier than now (truncated to the minute) and at most 7 days ahead.
func validateArrivalTime(arrival, now time.Time) error {
	if arrival.IsZero() {
		return ErrArrivalTimeRequired
	}
	now = now.Truncate(time.Minute)
	if arrival.Before(now) {
		return ErrArrivalTimeInPast
	}
	if arrival.After(now.Add(maxBookingWindow)) {
		return ErrArrivalTimeTooFar
	}
	return nil
}

// requirePatient resolves the caller's completed patient profile.
func (u *appointmentUsecase) requirePatient(ctx context.Context, db *gorm.DB) (*entity.Patient, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrProfileIncomplete
	}
	return patient, nil
}

// CreateAppointment books an appointment for the calling patient.
//
// The same-day pending conflict check and the insert run in one transaction;
// the (patient, arrival_time, department) unique constraint backstops the
// race between check and insert.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.ArrivalTime == "" {
		return nil, ErrArrivalTimeRequired
	}
	arrival, err := time.ParseInLocation(arrivalTimeLayout, req.ArrivalTime, time.Local)
	if err != nil {
		return nil, ErrInvalidArrivalFormat
	}

	if err := validateArrivalTime(arrival, time.Now()); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.requirePatient(ctx, tx)
	if err != nil {
		return nil, err
	}

	department, err := u.departmentRepo.FindByID(tx, req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", req.DepartmentID, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	// One pending appointment per patient per calendar day, any department
	conflict, err := u.appointmentRepo.HasPendingOnDate(tx, patient.ID, arrival)
	if err != nil {
		u.log.Warnf("Failed to check pending appointments: %+v", err)
		return nil, err
	}
	if conflict {
		return nil, ErrPendingOnSameDay
	}

	appointment := &entity.Appointment{
		PatientID:    patient.ID,
		DepartmentID: department.ID,
		ArrivalTime:  arrival,
		Status:       entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_patient_arrival_dept") {
			return nil, ErrPendingOnSameDay
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	appointment.Department = *department

	if err := u.auditService.Log(ctx, tx, &patient.UserID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID,
		"department_id":  department.ID,
		"arrival_time":   arrival.Format(arrivalTimeLayout),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, department=%d", appointment.ID, patient.ID, department.ID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patient, err := u.requirePatient(ctx, u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error) {
	patient, err := u.requirePatient(ctx, u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patient.ID {
		return nil, ErrAppointmentNotOwned
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment cancels a pending appointment owned by the caller.
// The guarded UPDATE transitions pending->cancelled only; anything else
// reports not-found/already-processed without side effects.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.requirePatient(ctx, tx)
	if err != nil {
		return err
	}

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patient.ID {
		return ErrAppointmentNotOwned
	}

	affected, err := u.appointmentRepo.MarkCancelled(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.Log(ctx, tx, &patient.UserID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": appointmentID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d, patient=%d", appointmentID, patient.ID)
	return nil
}

// GetDashboard returns the patient's next pending appointments.
func (u *appointmentUsecase) GetDashboard(ctx context.Context) (*dto.PatientDashboardResponse, error) {
	patient, err := u.requirePatient(ctx, u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByPatientID(u.db.WithContext(ctx), patient.ID, 3)
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	return &dto.PatientDashboardResponse{
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
	}, nil
}

func (u *appointmentUsecase) GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}
