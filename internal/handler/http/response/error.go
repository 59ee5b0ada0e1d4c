package response

import (
	"errors"
	"net/http"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/attendance"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/employee"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/timeutil"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"
	"github.com/adnanaslam989/attendance-backend-go/internal/service/importer"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrDateAlreadyExists):
		Conflict(w, "Attendance already exists for this date")
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, attendance.ErrEmptyBatch):
		BadRequest(w, "At least one attendance entry is required", nil)
	case errors.Is(err, importer.ErrAmbiguousDateFormat):
		BadRequest(w, "Could not determine the spreadsheet's date format", nil)
	case errors.Is(err, timeutil.ErrInvalidFormat):
		BadRequest(w, "Invalid time format", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee already exists")

	// Shift policy errors
	case errors.Is(err, shift.ErrInvalidConfig):
		BadRequest(w, "Invalid shift policy", nil)
	case errors.Is(err, shift.ErrConfigNotFound):
		NotFound(w, "Shift policy not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
