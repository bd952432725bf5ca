package dto

import "github.com/google/uuid"

// Request DTOs

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
}

type CreateRoomRequest struct {
	ID           string `json:"id" validate:"required,max=10"`
	DepartmentID int    `json:"department_id" validate:"required,min=1"`
	Location     string `json:"location" validate:"required,max=50"`
}

type CreateDoctorRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=150"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name" validate:"required,max=20"`
	DepartmentID int    `json:"department_id" validate:"required,min=1"`
	Title        string `json:"title" validate:"required,max=20"`
	Phone        string `json:"phone" validate:"required,cn_mobile"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int       `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	DepartmentID   int       `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	Title          string    `json:"title"`
	Phone          string    `json:"phone"`
	WorkStatus     string    `json:"work_status"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	DepartmentID int    `json:"department_id"`
	Location     string `json:"location"`
}

type AdminDashboardResponse struct {
	TotalPatients    int64  `json:"total_patients"`
	TotalDoctors     int64  `json:"total_doctors"`
	TotalDepartments int64  `json:"total_departments"`
	MonthRevenue     string `json:"month_revenue"`
}
