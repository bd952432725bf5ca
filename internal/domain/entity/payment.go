package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodWeChat    PaymentMethod = "wechat"
	PaymentMethodAlipay    PaymentMethod = "alipay"
	PaymentMethodInsurance PaymentMethod = "insurance"
)

var (
	ErrNegativeAmount   = errors.New("payment amounts must not be negative")
	ErrInsuranceExceeds = errors.New("insurance amount must not exceed total amount")
	ErrInvalidPayMethod = errors.New("invalid payment method")
)

// Payment represents the settlement of a medical record (strict 1-1)
type Payment struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	RecordID        int             `gorm:"uniqueIndex;not null" json:"record_id"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	InsuranceAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"insurance_amount"`
	SelfPayAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"self_pay_amount"`
	PayTime         time.Time       `gorm:"autoCreateTime;index" json:"pay_time"`
	Method          PaymentMethod   `gorm:"type:varchar(10);not null" json:"method"`

	// Relationships
	Record MedicalRecord `gorm:"foreignKey:RecordID" json:"record,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodWeChat, PaymentMethodAlipay, PaymentMethodInsurance:
		return true
	}
	return false
}

// Recompute derives the self-pay amount and enforces amount invariants:
// self_pay = total - insurance, insurance <= total, amounts >= 0.
func (p *Payment) Recompute() error {
	if p.TotalAmount.IsNegative() || p.InsuranceAmount.IsNegative() {
		return ErrNegativeAmount
	}
	if p.InsuranceAmount.GreaterThan(p.TotalAmount) {
		return ErrInsuranceExceeds
	}
	if !ValidPaymentMethod(p.Method) {
		return ErrInvalidPayMethod
	}
	p.SelfPayAmount = p.TotalAmount.Sub(p.InsuranceAmount)
	return nil
}

// BeforeSave recomputes the derived amount on every save so the invariant
// holds no matter which code path writes the row.
func (p *Payment) BeforeSave(tx *gorm.DB) error {
	return p.Recompute()
}
