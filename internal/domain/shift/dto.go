package shift

import "github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"

type ConfigResponse struct {
	DefaultTimeIn           string `json:"default_time_in"`  // "HH:MM"
	DefaultTimeOut          string `json:"default_time_out"` // "HH:MM"
	GracePeriodMinutes      int    `json:"grace_period_minutes"`
	LateThreshold           string `json:"late_threshold"` // derived, "HH:MM"
	EarlyLeaveBufferMinutes int    `json:"early_leave_buffer_minutes"`
}

type UpdateConfigRequest struct {
	DefaultTimeIn           string `json:"default_time_in"`
	DefaultTimeOut          string `json:"default_time_out"`
	GracePeriodMinutes      int    `json:"grace_period_minutes"`
	EarlyLeaveBufferMinutes int    `json:"early_leave_buffer_minutes"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DefaultTimeIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_time_in",
			Message: "default_time_in is required",
		})
	}

	if validator.IsEmpty(r.DefaultTimeOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_time_out",
			Message: "default_time_out is required",
		})
	}

	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if r.EarlyLeaveBufferMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_leave_buffer_minutes",
			Message: "early_leave_buffer_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
