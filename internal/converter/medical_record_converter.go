package converter

import (
	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its response DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:           record.ID,
		PatientName:  record.Patient.Name,
		DoctorName:   record.Doctor.Name,
		RoomID:       record.RoomID,
		VisitTime:    record.VisitTime,
		VisitStatus:  string(record.VisitStatus),
		Symptom:      record.Symptom,
		Prescription: record.Prescription,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *MedicalRecordToResponse(&records[i]))
	}
	return responses
}
