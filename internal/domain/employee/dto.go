package employee

import (
	"mime/multipart"
	"strings"

	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	ID          string  `json:"id"` // PAK number
	Name        string  `json:"name"`
	Appointment string  `json:"appointment"`
	CNIC        *string `json:"cnic,omitempty"`
	Mobile      *string `json:"mobile,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPakNumber(strings.TrimSpace(r.ID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a PAK number like O-1210710",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Appointment) {
		errs = append(errs, validator.ValidationError{
			Field:   "appointment",
			Message: "appointment is required",
		})
	}

	if r.CNIC != nil && !validator.IsValidCNIC(*r.CNIC) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnic",
			Message: "cnic must match #####-#######-#",
		})
	}

	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must match 03#########",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name,omitempty"`
	Appointment      *string `json:"appointment,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
	CNIC             *string `json:"cnic,omitempty"`
	Mobile           *string `json:"mobile,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, []string{StatusCurrent, StatusEx}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: current, ex",
		})
	}

	if r.CNIC != nil && !validator.IsValidCNIC(*r.CNIC) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnic",
			Message: "cnic must match #####-#######-#",
		})
	}

	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must match 03#########",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadPhotoRequest struct {
	EmployeeID string                `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadPhotoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "photo file is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 5<<20 { // 5MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "photo size must not exceed 5MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Appointment      string  `json:"appointment"`
	EmploymentStatus string  `json:"employment_status"`
	CNIC             *string `json:"cnic,omitempty"`
	Mobile           *string `json:"mobile,omitempty"`
	PhotoURL         *string `json:"photo_url,omitempty"`
}

// RosterResponse carries the "{id} : {appointment} : {name}" lines the
// attendance screens parse.
type RosterResponse struct {
	Employees []string `json:"employees"`
}
