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

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotPending = errors.New("appointment is not pending")
	ErrNoActiveDoctor        = errors.New("no active doctor available in the department")
	ErrNoRoomInDepartment    = errors.New("no room available in the department")
	ErrRecordNotFound        = errors.New("medical record not found")
	ErrRecordNotInProgress   = errors.New("medical record is not in progress")
	ErrRecordAlreadySettled  = errors.New("medical record has already been settled")
	ErrInvalidAmount         = errors.New("invalid amount")
)

type ReceptionUsecase interface {
	VerifyAppointment(ctx context.Context, req *dto.VerifyAppointmentRequest) (*dto.MedicalRecordResponse, error)
	SettlePayment(ctx context.Context, req *dto.SettlePaymentRequest) (*dto.PaymentResponse, error)
	GetVisits(ctx context.Context) (*dto.MedicalRecordListResponse, error)
	GetPayments(ctx context.Context) (*dto.PaymentListResponse, error)
	GetDashboard(ctx context.Context) (*dto.ReceptionDashboardResponse, error)
}

type receptionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	roomRepo        repository.RoomRepository
	recordRepo      repository.MedicalRecordRepository
	paymentRepo     repository.PaymentRepository
	auditService    service.AuditService
}

func NewReceptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	roomRepo repository.RoomRepository,
	recordRepo repository.MedicalRecordRepository,
	paymentRepo repository.PaymentRepository,
	auditService service.AuditService,
) ReceptionUsecase {
	return &receptionUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		roomRepo:        roomRepo,
		recordRepo:      recordRepo,
		paymentRepo:     paymentRepo,
		auditService:    auditService,
	}
}

// VerifyAppointment checks a pending appointment in: it assigns the first
// active doctor and the first room of the booked department, opens a medical
// record, and completes the appointment. The pending->completed transition is
// a guarded UPDATE, so two clerks verifying the same appointment race safely;
// the unique appointment_id on medical_records backstops the record insert.
func (u *receptionUsecase) VerifyAppointment(ctx context.Context, req *dto.VerifyAppointmentRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.IsPending() {
		return nil, ErrAppointmentNotPending
	}

	doctor, err := u.doctorRepo.FindFirstActiveByDepartment(tx, appointment.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find active doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNoActiveDoctor
	}

	room, err := u.roomRepo.FindFirstByDepartment(tx, appointment.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrNoRoomInDepartment
	}

	affected, err := u.appointmentRepo.MarkCompleted(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %d: %+v", appointment.ID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotPending
	}

	record := &entity.MedicalRecord{
		PatientID:     appointment.PatientID,
		DoctorID:      doctor.ID,
		RoomID:        room.ID,
		VisitStatus:   entity.VisitStatusInProgress,
		AppointmentID: &appointment.ID,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrAppointmentNotPending
		}
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}
	record.Patient = appointment.Patient
	record.Doctor = *doctor

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionAppointmentCheckIn, entity.JSON{
		"appointment_id": appointment.ID,
		"record_id":      record.ID,
		"doctor_id":      doctor.ID,
		"room_id":        room.ID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment checked in: appointment=%d, record=%d, doctor=%d, room=%s",
		appointment.ID, record.ID, doctor.ID, room.ID)
	return converter.MedicalRecordToResponse(record), nil
}

// SettlePayment records the payment of an in-progress visit and discharges
// the patient. Exactly one payment per record; the unique record_id column
// rejects a concurrent double settlement.
func (u *receptionUsecase) SettlePayment(ctx context.Context, req *dto.SettlePaymentRequest) (*dto.PaymentResponse, error) {
	totalAmount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	insuranceAmount := decimal.Zero
	if req.InsuranceAmount != "" {
		insuranceAmount, err = decimal.NewFromString(req.InsuranceAmount)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, req.RecordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %d: %+v", req.RecordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if !record.IsInProgress() {
		return nil, ErrRecordNotInProgress
	}

	payment := &entity.Payment{
		RecordID:        record.ID,
		TotalAmount:     totalAmount,
		InsuranceAmount: insuranceAmount,
		Method:          entity.PaymentMethod(req.Method),
	}

	// Recompute is also run by the BeforeSave hook; calling it here turns
	// amount violations into clean sentinel errors before touching the DB.
	if err := payment.Recompute(); err != nil {
		return nil, err
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		if isDuplicateKeyError(err, "record_id") {
			return nil, ErrRecordAlreadySettled
		}
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	affected, err := u.recordRepo.MarkDischarged(tx, record.ID)
	if err != nil {
		u.log.Warnf("Failed to discharge record %d: %+v", record.ID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRecordAlreadySettled
	}
	payment.Record = *record

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionPaymentSettle, entity.JSON{
		"record_id":  record.ID,
		"payment_id": payment.ID,
		"total":      payment.TotalAmount.StringFixed(2),
		"self_pay":   payment.SelfPayAmount.StringFixed(2),
		"method":     string(payment.Method),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Payment settled: record=%d, payment=%d, total=%s", record.ID, payment.ID, payment.TotalAmount.StringFixed(2))
	return converter.PaymentToResponse(payment), nil
}

func (u *receptionUsecase) GetVisits(ctx context.Context) (*dto.MedicalRecordListResponse, error) {
	records, err := u.recordRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *receptionUsecase) GetPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

// GetDashboard returns today's visit count and payment total.
func (u *receptionUsecase) GetDashboard(ctx context.Context) (*dto.ReceptionDashboardResponse, error) {
	today := time.Now()

	visits, err := u.recordRepo.CountVisitsOn(u.db.WithContext(ctx), today)
	if err != nil {
		u.log.Warnf("Failed to count today's visits: %+v", err)
		return nil, err
	}

	payments, err := u.paymentRepo.SumTotalOn(u.db.WithContext(ctx), today)
	if err != nil {
		u.log.Warnf("Failed to sum today's payments: %+v", err)
		return nil, err
	}

	return &dto.ReceptionDashboardResponse{
		TodayVisits:   visits,
		TodayPayments: payments.StringFixed(2),
	}, nil
}
