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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// GetMyRecords handles listing the doctor's open visits
// @Summary List my in-progress visits
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/records [get]
func (h *DoctorHandler) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.doctorUsecase.GetMyRecords(r.Context())
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.Forbidden(w, "No doctor profile linked to this account")
			return
		}
		response.InternalServerError(w, "Failed to get records")
		return
	}

	response.Success(w, http.StatusOK, "Records retrieved successfully", records)
}

// UpdateRecord handles writing symptom and prescription onto a visit
// @Summary Update a medical record
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body dto.UpdateRecordRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/records/{id} [put]
func (h *DoctorHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.doctorUsecase.UpdateRecord(r.Context(), recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.Forbidden(w, "No doctor profile linked to this account")
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordNotOwned:
			response.Forbidden(w, "Medical record is not assigned to you")
		case usecase.ErrRecordNotEditble:
			response.Error(w, http.StatusConflict, "Only in-progress records can be updated", nil)
		default:
			response.InternalServerError(w, "Failed to update record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Record updated successfully", record)
}
