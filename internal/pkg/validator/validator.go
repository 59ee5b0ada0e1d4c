package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// PAK number validation: an alphabetic prefix, a dash, and the numeric
// component used for cross-referencing imported data (e.g. "O-1210710").
var pakNumberRegex = regexp.MustCompile(`^[A-Za-z]{1,4}-\d{3,}$`)

func IsValidPakNumber(pak string) bool {
	return pakNumberRegex.MatchString(pak)
}

// CNIC validation (Pakistani national ID): "#####-#######-#"
var cnicRegex = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

func IsValidCNIC(cnic string) bool {
	return cnicRegex.MatchString(cnic)
}

// Mobile number validation: local Pakistani format "03#########"
var mobileRegex = regexp.MustCompile(`^03\d{9}$`)

func IsValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
