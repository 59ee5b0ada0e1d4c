package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// AttendanceLine is one employee's row in a batch submission.
type AttendanceLine struct {
	Pak     string  `json:"pak"`
	Status  string  `json:"status"`
	TimeIn  *string `json:"time_in,omitempty"`  // "HH:MM"
	TimeOut *string `json:"time_out,omitempty"` // "HH:MM"
	Remarks *string `json:"remarks,omitempty"`
}

type AddAttendanceRequest struct {
	AttendanceDate string           `json:"attendance_date"` // YYYY-MM-DD
	Employees      []AttendanceLine `json:"employees"`
}

func (r *AddAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.AttendanceDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employees",
			Message: "at least one employee entry is required",
		})
	}

	for _, line := range r.Employees {
		if validator.IsEmpty(line.Pak) {
			errs = append(errs, validator.ValidationError{
				Field:   "employees.pak",
				Message: "pak is required for every entry",
			})
			break
		}
		if !validator.IsInSlice(strings.ToLower(line.Status), ValidStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "employees.status",
				Message: "status must be one of: " + strings.Join(ValidStatuses, ", "),
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID                  string  `json:"id,omitempty"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	EmployeeAppointment *string `json:"employee_appointment,omitempty"`
	Date                string  `json:"date"`
	Status              string  `json:"status"`
	TimeIn              *string `json:"time_in,omitempty"`  // "HH:MM"
	TimeOut             *string `json:"time_out,omitempty"` // "HH:MM"
	MissedHours         float64 `json:"missed_hours"`
	Remarks             *string `json:"remarks,omitempty"`
	Source              string  `json:"source"`
}

type CheckDateResponse struct {
	Exists bool `json:"exists"`
}

type SubmitResponse struct {
	SubmittedCount int    `json:"submitted_count"`
	AttendanceDate string `json:"attendance_date"`
}

type UpdateEntryRequest struct {
	ID      string  `json:"-"`
	Status  *string `json:"status,omitempty"`
	TimeIn  *string `json:"time_in,omitempty"`  // "HH:MM"
	TimeOut *string `json:"time_out,omitempty"` // "HH:MM"
	Remarks *string `json:"remarks,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(strings.ToLower(*r.Status), ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(ValidStatuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// IMPORT DTOs
// ========================================

type ImportRequest struct {
	Date       string                `json:"date"`        // YYYY-MM-DD
	DateFormat string                `json:"date_format"` // e.g. "auto", "DD/MM/YYYY"
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "spreadsheet file is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".xlsx" && ext != ".xlsm" && ext != ".xls" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only xlsx, xlsm, xls allowed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MatchResultResponse is the per-row diagnostic for one imported person/day.
type MatchResultResponse struct {
	ExternalID int64   `json:"external_id"`
	Matched    bool    `json:"matched"`
	EmployeeID string  `json:"employee_id,omitempty"`
	FirstPunch *string `json:"first_punch,omitempty"` // "HH:MM"
	LastPunch  *string `json:"last_punch,omitempty"`  // "HH:MM"
	Status     string  `json:"status,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

type ImportResponse struct {
	TotalRecordsInFile int                   `json:"total_records_in_file"`
	MatchedCount       int                   `json:"matched_count"`
	UnmatchedCount     int                   `json:"unmatched_count"`
	AllDatesInFile     []string              `json:"all_dates_in_file"`
	AttendanceData     []MatchResultResponse `json:"attendance_data"`
	UpdatedDraft       []EntryResponse       `json:"updated_draft"`
}
