package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/usecase"
	"github.com/sleepysheepppp/hospital-management/pkg/response"
	"github.com/sleepysheepppp/hospital-management/pkg/validator"
)

// AdminHandler serves scheduling, master data provisioning, and the
// statistics views.
type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// CreateSchedule handles assigning a doctor to a room and time slot
// @Summary Create a schedule
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Schedule Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/schedules [post]
func (h *AdminHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.adminUsecase.CreateSchedule(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidScheduleDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid schedule date format", nil)
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrRoomWrongDepartment:
			response.Error(w, http.StatusBadRequest, "Room does not belong to the doctor's department", nil)
		case usecase.ErrScheduleConflict:
			response.Error(w, http.StatusConflict, "Doctor already has a schedule for that date and slot", nil)
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

// GetSchedules handles listing all schedules
// @Summary List schedules
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/schedules [get]
func (h *AdminHandler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.adminUsecase.GetSchedules(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

// CreateDepartment handles creating a department
// @Summary Create a department
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Department Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/departments [post]
func (h *AdminHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.adminUsecase.CreateDepartment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNameTaken:
			response.Error(w, http.StatusConflict, "Department name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create department")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

// CreateRoom handles creating a room
// @Summary Create a room
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/rooms [post]
func (h *AdminHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.adminUsecase.CreateRoom(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrRoomIDTaken:
			response.Error(w, http.StatusConflict, "Room ID already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create room")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

// CreateDoctor handles provisioning a doctor account and profile
// @Summary Create a doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Doctor Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/doctors [post]
func (h *AdminHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.adminUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrUsernameAlreadyExists:
			response.Error(w, http.StatusConflict, "Username already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// GetDashboard handles the admin dashboard
// @Summary Admin dashboard
// @Description Headline counts and current-month revenue
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.adminUsecase.GetDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// GetVisitStatistics handles the visits-by-department report
// @Summary Visit statistics
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/statistics/visits [get]
func (h *AdminHandler) GetVisitStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUsecase.GetVisitStatistics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get visit statistics")
		return
	}

	response.Success(w, http.StatusOK, "Visit statistics retrieved successfully", stats)
}

// GetRevenueStatistics handles the revenue-by-doctor report
// @Summary Revenue statistics
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/statistics/revenue [get]
func (h *AdminHandler) GetRevenueStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUsecase.GetRevenueStatistics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get revenue statistics")
		return
	}

	response.Success(w, http.StatusOK, "Revenue statistics retrieved successfully", stats)
}
