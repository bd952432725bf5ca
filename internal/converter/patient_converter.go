package converter

import (
	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		Name:       patient.Name,
		Gender:     patient.Gender,
		NationalID: patient.NationalID,
		Phone:      patient.Phone,
		BirthDate:  patient.BirthDate.Format("2006-01-02"),
	}
}
