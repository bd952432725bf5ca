package converter

import (
	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its response DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		UserID:         doctor.UserID,
		Name:           doctor.Name,
		DepartmentID:   doctor.DepartmentID,
		DepartmentName: doctor.Department.Name,
		Title:          doctor.Title,
		Phone:          doctor.Phone,
		WorkStatus:     string(doctor.WorkStatus),
	}
}

// RoomToResponse converts a Room entity to its response DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:           room.ID,
		DepartmentID: room.DepartmentID,
		Location:     room.Location,
	}
}
