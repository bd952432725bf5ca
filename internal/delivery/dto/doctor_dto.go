package dto

// Request DTOs

type UpdateRecordRequest struct {
	Symptom      string `json:"symptom" validate:"max=500"`
	Prescription string `json:"prescription" validate:"max=500"`
}
