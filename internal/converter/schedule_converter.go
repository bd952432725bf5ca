package converter

import (
	"github.com/sleepysheepppp/hospital-management/internal/delivery/dto"
	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
)

// ScheduleToResponse converts a Schedule entity to its response DTO
func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	bookable := schedule.Bookable == nil || *schedule.Bookable

	return &dto.ScheduleResponse{
		ID:           schedule.ID,
		DoctorID:     schedule.DoctorID,
		DoctorName:   schedule.Doctor.Name,
		RoomID:       schedule.RoomID,
		ScheduleDate: schedule.ScheduleDate.Format("2006-01-02"),
		TimeSlot:     schedule.TimeSlot,
		Bookable:     bookable,
	}
}

// SchedulesToResponses converts a slice of Schedule entities
func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *ScheduleToResponse(&schedules[i]))
	}
	return responses
}
