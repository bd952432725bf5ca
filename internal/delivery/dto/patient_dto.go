package dto

// Request DTOs

type UpsertPatientProfileRequest struct {
	Name       string `json:"name" validate:"required,max=20"`
	Gender     string `json:"gender" validate:"required,oneof=M F O"`
	NationalID string `json:"national_id" validate:"required,len=18"`
	Phone      string `json:"phone" validate:"required,cn_mobile"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// Response DTOs

type PatientResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
}

type PatientDashboardResponse struct {
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
}
