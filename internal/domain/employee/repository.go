package employee

import "context"

// EmployeeRepository defines data access methods for the employee roster.
type EmployeeRepository interface {
	// ListCurrent retrieves all currently-serving employees
	ListCurrent(ctx context.Context) ([]Employee, error)

	// List retrieves all employees, optionally including ex-employees
	List(ctx context.Context, includeEx bool) ([]Employee, error)

	// GetByID retrieves an employee by PAK number
	GetByID(ctx context.Context, id string) (Employee, error)

	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, emp Employee) error

	// UpdatePhotoURL stores the public URL of an uploaded photo
	UpdatePhotoURL(ctx context.Context, id string, url string) error
}
