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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrScheduleConflict          = errors.New("doctor already has a schedule for that date and slot")
	ErrRoomNotFound              = errors.New("room not found")
	ErrRoomWrongDepartment       = errors.New("room does not belong to the doctor's department")
	ErrDepartmentNameTaken       = errors.New("department name already exists")
	ErrRoomIDTaken               = errors.New("room ID already exists")
	ErrInvalidScheduleDateFormat = errors.New("invalid schedule date format, use YYYY-MM-DD")
)

type AdminUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedules(ctx context.Context) (*dto.ScheduleListResponse, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	GetVisitStatistics(ctx context.Context) (*dto.VisitStatisticsResponse, error)
	GetRevenueStatistics(ctx context.Context) (*dto.RevenueStatisticsResponse, error)
}

type adminUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	departmentRepo repository.DepartmentRepository
	roomRepo       repository.RoomRepository
	doctorRepo     repository.DoctorRepository
	patientRepo    repository.PatientRepository
	scheduleRepo   repository.ScheduleRepository
	recordRepo     repository.MedicalRecordRepository
	paymentRepo    repository.PaymentRepository
	auditService   service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	departmentRepo repository.DepartmentRepository,
	roomRepo repository.RoomRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	scheduleRepo repository.ScheduleRepository,
	recordRepo repository.MedicalRecordRepository,
	paymentRepo repository.PaymentRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		roomRepo:       roomRepo,
		doctorRepo:     doctorRepo,
		patientRepo:    patientRepo,
		scheduleRepo:   scheduleRepo,
		recordRepo:     recordRepo,
		paymentRepo:    paymentRepo,
		auditService:   auditService,
	}
}

// CreateSchedule assigns a doctor to a room for a date and time slot. The
// pre-check catches the common duplicate; the idx_doctor_date_slot unique
// constraint catches the concurrent one.
func (u *adminUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	scheduleDate, err := time.Parse("2006-01-02", req.ScheduleDate)
	if err != nil {
		return nil, ErrInvalidScheduleDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	room, err := u.roomRepo.FindByID(tx, req.RoomID)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", req.RoomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.DepartmentID != doctor.DepartmentID {
		return nil, ErrRoomWrongDepartment
	}

	existing, err := u.scheduleRepo.FindByDoctorDateSlot(tx, req.DoctorID, scheduleDate, req.TimeSlot)
	if err != nil {
		u.log.Warnf("Failed to check schedule conflict: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrScheduleConflict
	}

	schedule := &entity.Schedule{
		DoctorID:     req.DoctorID,
		RoomID:       req.RoomID,
		ScheduleDate: scheduleDate,
		TimeSlot:     req.TimeSlot,
		Bookable:     req.Bookable,
	}

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_date_slot") {
			return nil, ErrScheduleConflict
		}
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}
	schedule.Doctor = *doctor

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionScheduleCreate, entity.JSON{
		"schedule_id": schedule.ID,
		"doctor_id":   doctor.ID,
		"date":        req.ScheduleDate,
		"time_slot":   req.TimeSlot,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Schedule created: id=%d, doctor=%d, date=%s, slot=%s", schedule.ID, doctor.ID, req.ScheduleDate, req.TimeSlot)
	return converter.ScheduleToResponse(schedule), nil
}

func (u *adminUsecase) GetSchedules(ctx context.Context) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *adminUsecase) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department := &entity.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.departmentRepo.Create(tx, department); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDepartmentNameTaken
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionDepartmentCreate, entity.JSON{
		"department_id": department.ID,
		"name":          department.Name,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *adminUsecase) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", req.DepartmentID, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	room := &entity.Room{
		ID:           req.ID,
		DepartmentID: req.DepartmentID,
		Location:     req.Location,
	}

	if err := u.roomRepo.Create(tx, room); err != nil {
		if isDuplicateKeyError(err, "rooms_pkey") {
			return nil, ErrRoomIDTaken
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionRoomCreate, entity.JSON{
		"room_id":       room.ID,
		"department_id": room.DepartmentID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

// CreateDoctor provisions the login account and the doctor row in one
// transaction so a half-created doctor never exists.
func (u *adminUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", req.DepartmentID, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		RoleID:   entity.RoleIDDoctor,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create doctor account: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		UserID:       user.ID,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Title:        req.Title,
		Phone:        req.Phone,
		WorkStatus:   entity.WorkStatusActive,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}
	doctor.Department = *department

	adminID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Log(ctx, tx, &adminID, entity.AuditActionDoctorCreate, entity.JSON{
		"doctor_id":     doctor.ID,
		"user_id":       user.ID.String(),
		"department_id": req.DepartmentID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor created: id=%d, department=%d", doctor.ID, req.DepartmentID)
	return converter.DoctorToResponse(doctor), nil
}

// GetDashboard returns headline counts and revenue since the start of the
// current month.
func (u *adminUsecase) GetDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	patients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	doctors, err := u.doctorRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	departments, err := u.departmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count departments: %+v", err)
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthRevenue, err := u.paymentRepo.SumTotalSince(db, monthStart)
	if err != nil {
		u.log.Warnf("Failed to sum month revenue: %+v", err)
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		TotalPatients:    patients,
		TotalDoctors:     doctors,
		TotalDepartments: departments,
		MonthRevenue:     monthRevenue.StringFixed(2),
	}, nil
}

// GetVisitStatistics groups visit counts by the treating doctor's department.
func (u *adminUsecase) GetVisitStatistics(ctx context.Context) (*dto.VisitStatisticsResponse, error) {
	byDepartment, err := u.recordRepo.CountVisitsByDepartment(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count visits by department: %+v", err)
		return nil, err
	}

	departments := make([]dto.DepartmentVisitsResponse, 0, len(byDepartment))
	var total int64
	for _, row := range byDepartment {
		departments = append(departments, dto.DepartmentVisitsResponse{
			DepartmentName: row.DepartmentName,
			VisitCount:     row.VisitCount,
		})
		total += row.VisitCount
	}

	return &dto.VisitStatisticsResponse{
		Departments: departments,
		TotalVisits: total,
	}, nil
}

// GetRevenueStatistics groups settled payments by the treating doctor,
// highest revenue first.
func (u *adminUsecase) GetRevenueStatistics(ctx context.Context) (*dto.RevenueStatisticsResponse, error) {
	byDoctor, err := u.paymentRepo.SumRevenueByDoctor(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to sum revenue by doctor: %+v", err)
		return nil, err
	}

	doctors := make([]dto.DoctorRevenueResponse, 0, len(byDoctor))
	for _, row := range byDoctor {
		doctors = append(doctors, dto.DoctorRevenueResponse{
			DoctorName:   row.DoctorName,
			Total:        row.Total.StringFixed(2),
			Insurance:    row.Insurance.StringFixed(2),
			SelfPay:      row.SelfPay.StringFixed(2),
			PaymentCount: row.PaymentCount,
		})
	}

	return &dto.RevenueStatisticsResponse{Doctors: doctors}, nil
}
