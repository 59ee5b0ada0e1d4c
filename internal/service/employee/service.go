package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/employee"
	"github.com/adnanaslam989/attendance-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	repo   employee.EmployeeRepository
	photos *file.Service
}

func NewEmployeeService(repo employee.EmployeeRepository, photos *file.Service) employee.EmployeeService {
	return &EmployeeServiceImpl{repo: repo, photos: photos}
}

func (s *EmployeeServiceImpl) GetRoster(ctx context.Context) (employee.RosterResponse, error) {
	roster, err := s.repo.ListCurrent(ctx)
	if err != nil {
		return employee.RosterResponse{}, fmt.Errorf("list roster: %w", err)
	}

	lines := make([]string, 0, len(roster))
	for _, emp := range roster {
		lines = append(lines, emp.RosterLine())
	}

	return employee.RosterResponse{Employees: lines}, nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, includeEx bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx, includeEx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:               strings.ToUpper(strings.TrimSpace(req.ID)),
		Name:             strings.TrimSpace(req.Name),
		Appointment:      strings.TrimSpace(req.Appointment),
		EmploymentStatus: employee.StatusCurrent,
		CNIC:             req.CNIC,
		Mobile:           req.Mobile,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Appointment != nil {
		emp.Appointment = strings.TrimSpace(*req.Appointment)
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = *req.EmploymentStatus
	}
	if req.CNIC != nil {
		emp.CNIC = req.CNIC
	}
	if req.Mobile != nil {
		emp.Mobile = req.Mobile
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) UploadPhoto(ctx context.Context, req employee.UploadPhotoRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	if _, err := s.repo.GetByID(ctx, req.EmployeeID); err != nil {
		return "", err
	}

	url, err := s.photos.SavePhoto(ctx, req.EmployeeID, req.File, req.FileHeader.Filename)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePhotoURL(ctx, req.EmployeeID, url); err != nil {
		return "", err
	}

	return url, nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		Name:             emp.Name,
		Appointment:      emp.Appointment,
		EmploymentStatus: emp.EmploymentStatus,
		CNIC:             emp.CNIC,
		Mobile:           emp.Mobile,
		PhotoURL:         emp.PhotoURL,
	}
}
