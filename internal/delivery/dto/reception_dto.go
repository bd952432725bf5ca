package dto

import "time"

// Request DTOs

type VerifyAppointmentRequest struct {
	AppointmentID int `json:"appointment_id" validate:"required,min=1"`
}

type SettlePaymentRequest struct {
	RecordID        int    `json:"record_id" validate:"required,min=1"`
	TotalAmount     string `json:"total_amount" validate:"required"`
	InsuranceAmount string `json:"insurance_amount"`
	Method          string `json:"method" validate:"required,oneof=cash wechat alipay insurance"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID           int       `json:"id"`
	PatientName  string    `json:"patient_name,omitempty"`
	DoctorName   string    `json:"doctor_name,omitempty"`
	RoomID       string    `json:"room_id"`
	VisitTime    time.Time `json:"visit_time"`
	VisitStatus  string    `json:"visit_status"`
	Symptom      string    `json:"symptom,omitempty"`
	Prescription string    `json:"prescription,omitempty"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}

type PaymentResponse struct {
	ID              int       `json:"id"`
	RecordID        int       `json:"record_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	TotalAmount     string    `json:"total_amount"`
	InsuranceAmount string    `json:"insurance_amount"`
	SelfPayAmount   string    `json:"self_pay_amount"`
	Method          string    `json:"method"`
	PayTime         time.Time `json:"pay_time"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

type ReceptionDashboardResponse struct {
	TodayVisits   int64  `json:"today_visits"`
	TodayPayments string `json:"today_payments"`
}
