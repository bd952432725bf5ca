package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/usecase"
	"github.com/sleepysheepppp/hospital-management/pkg/response"
	"github.com/sleepysheepppp/hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

// PatientHandler serves the patient self-service surface: profile
// completion, appointment booking, and the dashboard.
type PatientHandler struct {
	profileUsecase     usecase.PatientProfileUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewPatientHandler(
	profileUsecase usecase.PatientProfileUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *PatientHandler {
	return &PatientHandler{
		profileUsecase:     profileUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// profileGuard maps the missing-profile sentinel to a redirect so the
// client lands on the profile-completion page.
func profileGuard(w http.ResponseWriter, err error) bool {
	if err == usecase.ErrProfileIncomplete {
		response.RedirectTo(w, http.StatusForbidden, "Please complete your profile first", "/patient/profile")
		return true
	}
	return false
}

// GetProfile handles fetching the caller's patient profile
// @Summary Get my profile
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /patient/profile [get]
func (h *PatientHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context())
	if err != nil {
		if err == usecase.ErrProfileIncomplete {
			response.NotFound(w, "Profile not completed yet")
			return
		}
		response.InternalServerError(w, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpsertProfile handles completing or updating the caller's patient profile
// @Summary Complete or update my profile
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertPatientProfileRequest true "Profile Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/profile [put]
func (h *PatientHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertPatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpsertProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid birth date format", nil)
		case usecase.ErrNationalIDAlreadyExists:
			response.Error(w, http.StatusConflict, "National ID already registered", nil)
		default:
			response.InternalServerError(w, "Failed to save profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile saved successfully", profile)
}

// CreateAppointment handles booking an appointment
// @Summary Book an appointment
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/appointments [post]
func (h *PatientHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		if profileGuard(w, err) {
			return
		}
		switch err {
		case usecase.ErrArrivalTimeRequired, usecase.ErrInvalidArrivalFormat,
			usecase.ErrArrivalTimeInPast, usecase.ErrArrivalTimeTooFar:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrPendingOnSameDay:
			response.Error(w, http.StatusConflict, "You already have a pending appointment on that day", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// GetMyAppointments handles listing the caller's appointments
// @Summary List my appointments
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/appointments [get]
func (h *PatientHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		if profileGuard(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetAppointment handles fetching one of the caller's appointments
// @Summary Get an appointment
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/appointments/{id} [get]
func (h *PatientHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if profileGuard(w, err) {
			return
		}
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// CancelAppointment handles cancelling a pending appointment
// @Summary Cancel an appointment
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/appointments/{id}/cancel [post]
func (h *PatientHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	err = h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		if profileGuard(w, err) {
			return
		}
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found or already processed")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// GetDashboard handles the patient dashboard
// @Summary Patient dashboard
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/dashboard [get]
func (h *PatientHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.appointmentUsecase.GetDashboard(r.Context())
	if err != nil {
		if profileGuard(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// GetDepartments handles listing bookable departments
// @Summary List departments
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /departments [get]
func (h *PatientHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.appointmentUsecase.GetDepartments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}
