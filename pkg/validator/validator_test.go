package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mobileFixture struct {
	Phone string `validate:"required,cn_mobile"`
}

func TestCNMobileRule(t *testing.T) {
	v := NewValidator()

	valid := []string{"13812345678", "19999999999", "15000000000"}
	for _, phone := range valid {
		assert.NoError(t, v.Validate(&mobileFixture{Phone: phone}), phone)
	}

	invalid := []string{
		"12812345678", // 12x prefix not assigned
		"1381234567",  // too short
		"138123456789",
		"23812345678",
		"abcdefghijk",
		"",
	}
	for _, phone := range invalid {
		assert.Error(t, v.Validate(&mobileFixture{Phone: phone}), phone)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&mobileFixture{Phone: "bad"})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "Phone must be a valid mobile number", formatted["Phone"])
}
