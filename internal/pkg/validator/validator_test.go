package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPakNumber(t *testing.T) {
	assert.True(t, IsValidPakNumber("O-1210710"))
	assert.True(t, IsValidPakNumber("PAF-4432"))
	assert.False(t, IsValidPakNumber("1210710"))
	assert.False(t, IsValidPakNumber("O-"))
	assert.False(t, IsValidPakNumber("O 1210710"))
}

func TestIsValidCNIC(t *testing.T) {
	assert.True(t, IsValidCNIC("35202-1234567-1"))
	assert.False(t, IsValidCNIC("3520212345671"))
	assert.False(t, IsValidCNIC("35202-123456-1"))
	assert.False(t, IsValidCNIC(""))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("03001234567"))
	assert.False(t, IsValidMobile("0300123456"))
	assert.False(t, IsValidMobile("13001234567"))
	assert.False(t, IsValidMobile("0300-1234567"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-01-06")
	assert.True(t, ok)
	_, ok = IsValidDate("06/01/2026")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "cnic", Message: "cnic must match #####-#######-#"},
		{Field: "mobile", Message: "mobile must match 03#########"},
	}
	assert.Contains(t, errs.Error(), "cnic:")
	assert.Equal(t, "cnic must match #####-#######-#", errs.ToMap()["cnic"])
}
