package converter

import (
	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to its response DTO.
// Amounts are rendered with two decimal places.
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:              payment.ID,
		RecordID:        payment.RecordID,
		PatientName:     payment.Record.Patient.Name,
		TotalAmount:     payment.TotalAmount.StringFixed(2),
		InsuranceAmount: payment.InsuranceAmount.StringFixed(2),
		SelfPayAmount:   payment.SelfPayAmount.StringFixed(2),
		Method:          string(payment.Method),
		PayTime:         payment.PayTime,
	}
}

// PaymentsToResponses converts a slice of Payment entities
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, *PaymentToResponse(&payments[i]))
	}
	return responses
}
