package dto

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID     int    `json:"doctor_id" validate:"required,min=1"`
	RoomID       string `json:"room_id" validate:"required"`
	ScheduleDate string `json:"schedule_date" validate:"required,datetime=2006-01-02"`
	TimeSlot     string `json:"time_slot" validate:"required,max=20"`
	Bookable     *bool  `json:"bookable"`
}

// Response DTOs

type ScheduleResponse struct {
	ID           int    `json:"id"`
	DoctorID     int    `json:"doctor_id"`
	DoctorName   string `json:"doctor_name,omitempty"`
	RoomID       string `json:"room_id"`
	ScheduleDate string `json:"schedule_date"`
	TimeSlot     string `json:"time_slot"`
	Bookable     bool   `json:"bookable"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
