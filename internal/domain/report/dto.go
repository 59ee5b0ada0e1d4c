package report

import "github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"

type SummaryRequest struct {
	EmployeeID string `json:"employee_id,omitempty"` // empty = all employees
	StartDate  string `json:"start_date"`            // YYYY-MM-DD
	EndDate    string `json:"end_date"`              // YYYY-MM-DD
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekdayStats counts punctuality issues for one weekday bucket.
type WeekdayStats struct {
	LateCount       int `json:"late_count"`
	EarlyLeaveCount int `json:"early_leave_count"`
	IssueCount      int `json:"issue_count"`
}

// PeriodSummary aggregates attendance entries over a date range.
// TotalDays counts records found, not possible working days.
type PeriodSummary struct {
	EmployeeID           string                  `json:"employee_id,omitempty"`
	StartDate            string                  `json:"start_date"`
	EndDate              string                  `json:"end_date"`
	TotalDays            int                     `json:"total_days"`
	PresentDays          int                     `json:"present_days"`
	AbsentDays           int                     `json:"absent_days"`
	LeaveDays            int                     `json:"leave_days"`
	LateDays             int                     `json:"late_days"`
	HalfDays             int                     `json:"half_days"`
	HolidayWorkDays      int                     `json:"holiday_work_days"`
	ShortLeaveDays       int                     `json:"short_leave_days"`
	TotalMissedHours     float64                 `json:"total_missed_hours"`
	TotalExtraHours      float64                 `json:"total_extra_hours"`
	AverageMissedHours   float64                 `json:"average_missed_hours"`
	AttendancePercentage string                  `json:"attendance_percentage"`
	DayOfWeekBreakdown   map[string]WeekdayStats `json:"day_of_week_breakdown"`
}
