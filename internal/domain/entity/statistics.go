package entity

import "github.com/shopspring/decimal"

// DepartmentVisits is a read-only aggregate row: visit count per department.
// Used by repository layer to avoid coupling with delivery DTOs.
type DepartmentVisits struct {
	DepartmentName string `json:"department_name"`
	VisitCount     int64  `json:"visit_count"`
}

// DoctorRevenue is a read-only aggregate row: revenue sums per doctor.
type DoctorRevenue struct {
	DoctorName   string          `json:"doctor_name"`
	Total        decimal.Decimal `json:"total"`
	Insurance    decimal.Decimal `json:"insurance"`
	SelfPay      decimal.Decimal `json:"self_pay"`
	PaymentCount int64           `json:"payment_count"`
}
