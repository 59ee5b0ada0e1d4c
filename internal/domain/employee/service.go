package employee

import "context"

type EmployeeService interface {
	// GetRoster returns current employees as formatted roster lines
	GetRoster(ctx context.Context) (RosterResponse, error)

	// ListEmployees returns full employee records
	ListEmployees(ctx context.Context, includeEx bool) ([]EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UploadPhoto stores an employee photo and returns its public URL
	UploadPhoto(ctx context.Context, req UploadPhotoRequest) (string, error)
}
