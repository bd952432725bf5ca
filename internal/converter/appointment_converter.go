package converter

import (
	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		DepartmentID:   appointment.DepartmentID,
		DepartmentName: appointment.Department.Name,
		ArrivalTime:    appointment.ArrivalTime,
		Status:         string(appointment.Status),
		CreatedAt:      appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}

// DepartmentToResponse converts a Department entity to its response DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
	}
}

// DepartmentsToResponses converts a slice of Department entities
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, *DepartmentToResponse(&departments[i]))
	}
	return responses
}
