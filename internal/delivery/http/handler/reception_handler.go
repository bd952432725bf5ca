package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	"github.com/sleepysheepppp/hospital-management/internal/usecase"
	"github.com/sleepysheepppp/hospital-management/pkg/response"
	"github.com/sleepysheepppp/hospital-management/pkg/validator"
)

// ReceptionHandler serves the front-desk surface: appointment check-in,
// payment settlement, and the reception dashboard.
type ReceptionHandler struct {
	receptionUsecase usecase.ReceptionUsecase
	validator        *validator.CustomValidator
}

func NewReceptionHandler(receptionUsecase usecase.ReceptionUsecase, validator *validator.CustomValidator) *ReceptionHandler {
	return &ReceptionHandler{
		receptionUsecase: receptionUsecase,
		validator:        validator,
	}
}

// VerifyAppointment handles appointment check-in
// @Summary Check in a pending appointment
// @Description Completes the appointment, assigns a doctor and room, and opens a visit
// @Tags Reception
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.VerifyAppointmentRequest true "Verify Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reception/appointments/verify [post]
func (h *ReceptionHandler) VerifyAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.receptionUsecase.VerifyAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotPending:
			response.Error(w, http.StatusConflict, "Appointment has already been checked in or cancelled", nil)
		case usecase.ErrNoActiveDoctor:
			response.Error(w, http.StatusConflict, "No active doctor available in the department", nil)
		case usecase.ErrNoRoomInDepartment:
			response.Error(w, http.StatusConflict, "No room available in the department", nil)
		default:
			response.InternalServerError(w, "Failed to check in appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment checked in successfully", record)
}

// SettlePayment handles payment settlement
// @Summary Settle a visit's payment
// @Description Records the payment and discharges the patient
// @Tags Reception
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SettlePaymentRequest true "Settlement Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reception/payments [post]
func (h *ReceptionHandler) SettlePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.SettlePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.receptionUsecase.SettlePayment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordNotInProgress:
			response.Error(w, http.StatusConflict, "Medical record is not in progress", nil)
		case usecase.ErrRecordAlreadySettled:
			response.Error(w, http.StatusConflict, "Medical record has already been settled", nil)
		case usecase.ErrInvalidAmount, entity.ErrNegativeAmount, entity.ErrInsuranceExceeds, entity.ErrInvalidPayMethod:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to settle payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment settled successfully", payment)
}

// GetVisits handles listing all visits
// @Summary List visits
// @Tags Reception
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reception/visits [get]
func (h *ReceptionHandler) GetVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.receptionUsecase.GetVisits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

// GetPayments handles listing all payments
// @Summary List payments
// @Tags Reception
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reception/payments [get]
func (h *ReceptionHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.receptionUsecase.GetPayments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

// GetDashboard handles the reception dashboard
// @Summary Reception dashboard
// @Description Today's visit count and payment total
// @Tags Reception
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reception/dashboard [get]
func (h *ReceptionHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.receptionUsecase.GetDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
