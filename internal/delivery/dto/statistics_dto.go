package dto

// Response DTOs

type DepartmentVisitsResponse struct {
	DepartmentName string `json:"department_name"`
	VisitCount     int64  `json:"visit_count"`
}

type VisitStatisticsResponse struct {
	Departments []DepartmentVisitsResponse `json:"departments"`
	TotalVisits int64                      `json:"total_visits"`
}

type DoctorRevenueResponse struct {
	DoctorName   string `json:"doctor_name"`
	Total        string `json:"total"`
	Insurance    string `json:"insurance"`
	SelfPay      string `json:"self_pay"`
	PaymentCount int64  `json:"payment_count"`
}

type RevenueStatisticsResponse struct {
	Doctors []DoctorRevenueResponse `json:"doctors"`
}
