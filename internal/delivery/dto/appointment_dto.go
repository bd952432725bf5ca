package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	DepartmentID int    `json:"department_id" validate:"required,min=1"`
	ArrivalTime  string `json:"arrival_time" validate:"required"` // Format: 2006-01-02T15:04
}

// Response DTOs

type AppointmentResponse struct {
	ID             int       `json:"id"`
	DepartmentID   int       `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type DepartmentResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}
