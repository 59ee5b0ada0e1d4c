package employee

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/employee"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"
	"github.com/adnanaslam989/attendance-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repoStub struct {
	employees []employee.Employee
}

func (s *repoStub) ListCurrent(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range s.employees {
		if emp.EmploymentStatus == employee.StatusCurrent {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (s *repoStub) List(_ context.Context, includeEx bool) ([]employee.Employee, error) {
	if includeEx {
		return s.employees, nil
	}
	return s.ListCurrent(context.Background())
}

func (s *repoStub) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *repoStub) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range s.employees {
		if existing.ID == emp.ID {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
	}
	s.employees = append(s.employees, emp)
	return emp, nil
}

func (s *repoStub) Update(_ context.Context, updated employee.Employee) error {
	for i, emp := range s.employees {
		if emp.ID == updated.ID {
			s.employees[i] = updated
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (s *repoStub) UpdatePhotoURL(_ context.Context, id string, url string) error {
	for i, emp := range s.employees {
		if emp.ID == id {
			s.employees[i].PhotoURL = &url
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type storageStub struct {
	files map[string][]byte
}

func (s *storageStub) Upload(_ context.Context, file io.Reader, path string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[path] = data
	return path, nil
}

func (s *storageStub) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *storageStub) GetURL(path string) string {
	return "http://localhost:8080/uploads/" + path
}

func (s *storageStub) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func newTestService(repo *repoStub, st *storageStub) employee.EmployeeService {
	return NewEmployeeService(repo, file.NewFileService(st))
}

func strPtr(v string) *string { return &v }

func TestGetRoster_FormatsLines(t *testing.T) {
	repo := &repoStub{employees: []employee.Employee{
		{ID: "O-1210710", Name: "Adnan", Appointment: "Engineer", EmploymentStatus: employee.StatusCurrent},
		{ID: "O-1210711", Name: "Bilal", Appointment: "Clerk", EmploymentStatus: employee.StatusEx},
	}}
	service := newTestService(repo, &storageStub{})

	roster, err := service.GetRoster(context.Background())
	require.NoError(t, err)

	require.Len(t, roster.Employees, 1)
	assert.Equal(t, "O-1210710 : Engineer : Adnan", roster.Employees[0])
}

func TestCreateEmployee_NormalizesID(t *testing.T) {
	repo := &repoStub{}
	service := newTestService(repo, &storageStub{})

	resp, err := service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		ID:          " o-1210710 ",
		Name:        "Adnan",
		Appointment: "Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, "O-1210710", resp.ID)
	assert.Equal(t, employee.StatusCurrent, resp.EmploymentStatus)
}

func TestCreateEmployee_DuplicateID(t *testing.T) {
	repo := &repoStub{employees: []employee.Employee{{ID: "O-1210710"}}}
	service := newTestService(repo, &storageStub{})

	_, err := service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		ID:          "O-1210710",
		Name:        "Adnan",
		Appointment: "Engineer",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)
}

func TestCreateEmployee_Validation(t *testing.T) {
	service := newTestService(&repoStub{}, &storageStub{})

	_, err := service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		ID:     "not a pak",
		Name:   "",
		CNIC:   strPtr("12345"),
		Mobile: strPtr("0099"),
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "cnic")
	assert.Contains(t, fields, "mobile")
}

func TestUpdateEmployee_MarksEx(t *testing.T) {
	repo := &repoStub{employees: []employee.Employee{
		{ID: "O-1210710", Name: "Adnan", Appointment: "Engineer", EmploymentStatus: employee.StatusCurrent},
	}}
	service := newTestService(repo, &storageStub{})

	resp, err := service.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:               "O-1210710",
		EmploymentStatus: strPtr(employee.StatusEx),
	})
	require.NoError(t, err)
	assert.Equal(t, employee.StatusEx, resp.EmploymentStatus)

	roster, err := service.GetRoster(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roster.Employees)
}

func TestUploadPhoto_StoresAndLinks(t *testing.T) {
	repo := &repoStub{employees: []employee.Employee{
		{ID: "O-1210710", EmploymentStatus: employee.StatusCurrent},
	}}
	st := &storageStub{}
	service := newTestService(repo, st)

	url, err := service.UploadPhoto(context.Background(), employee.UploadPhotoRequest{
		EmployeeID: "O-1210710",
		File:       photoFile{bytes.NewReader([]byte("jpeg-bytes"))},
		FileHeader: &multipart.FileHeader{Filename: "me.jpg", Size: 1024},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/photos/O-1210710-"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
	require.NotNil(t, repo.employees[0].PhotoURL)
	assert.Equal(t, url, *repo.employees[0].PhotoURL)
	assert.Len(t, st.files, 1)
}

func TestUploadPhoto_RejectsOversizeAndWrongType(t *testing.T) {
	service := newTestService(&repoStub{}, &storageStub{})

	_, err := service.UploadPhoto(context.Background(), employee.UploadPhotoRequest{
		EmployeeID: "O-1210710",
		FileHeader: &multipart.FileHeader{Filename: "me.gif", Size: 1024},
	})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	_, err = service.UploadPhoto(context.Background(), employee.UploadPhotoRequest{
		EmployeeID: "O-1210710",
		FileHeader: &multipart.FileHeader{Filename: "me.jpg", Size: 6 << 20},
	})
	require.ErrorAs(t, err, &errs)
}

type photoFile struct {
	*bytes.Reader
}

func (photoFile) Close() error { return nil }
