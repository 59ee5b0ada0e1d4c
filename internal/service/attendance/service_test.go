package attendance

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/attendance"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/employee"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// ========================================
// IN-MEMORY REPOSITORY STUBS
// ========================================

type entryRepoStub struct {
	entries []attendance.Entry
	nextID  int
}

func (s *entryRepoStub) CreateBatch(_ context.Context, entries []attendance.Entry) (int, error) {
	for _, entry := range entries {
		s.nextID++
		entry.ID = fmt.Sprintf("entry-%d", s.nextID)
		s.entries = append(s.entries, entry)
	}
	return len(entries), nil
}

func (s *entryRepoStub) ExistsForDate(_ context.Context, date time.Time) (bool, error) {
	for _, entry := range s.entries {
		if entry.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *entryRepoStub) ListByDate(_ context.Context, date time.Time) ([]attendance.Entry, error) {
	var out []attendance.Entry
	for _, entry := range s.entries {
		if entry.Date.Equal(date) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (s *entryRepoStub) ListRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Entry, error) {
	var out []attendance.Entry
	for _, entry := range s.entries {
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		if employeeID != "" && entry.EmployeeID != employeeID {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *entryRepoStub) GetByID(_ context.Context, id string) (attendance.Entry, error) {
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return attendance.Entry{}, attendance.ErrEntryNotFound
}

func (s *entryRepoStub) Update(_ context.Context, updated attendance.Entry) error {
	for i, entry := range s.entries {
		if entry.ID == updated.ID {
			s.entries[i] = updated
			return nil
		}
	}
	return attendance.ErrEntryNotFound
}

type employeeRepoStub struct {
	roster []employee.Employee
}

func (s *employeeRepoStub) ListCurrent(_ context.Context) ([]employee.Employee, error) {
	return s.roster, nil
}

func (s *employeeRepoStub) List(_ context.Context, _ bool) ([]employee.Employee, error) {
	return s.roster, nil
}

func (s *employeeRepoStub) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.roster {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *employeeRepoStub) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	s.roster = append(s.roster, emp)
	return emp, nil
}

func (s *employeeRepoStub) Update(_ context.Context, _ employee.Employee) error { return nil }

func (s *employeeRepoStub) UpdatePhotoURL(_ context.Context, _ string, _ string) error { return nil }

type shiftRepoStub struct {
	cfg *shift.Config
}

func (s *shiftRepoStub) GetActive(_ context.Context) (shift.Config, error) {
	if s.cfg == nil {
		return shift.Config{}, shift.ErrConfigNotFound
	}
	return *s.cfg, nil
}

func (s *shiftRepoStub) Save(_ context.Context, cfg shift.Config) (shift.Config, error) {
	s.cfg = &cfg
	return cfg, nil
}

func newTestService(entryRepo *entryRepoStub, employeeRepo *employeeRepoStub, shiftRepo *shiftRepoStub) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		defaults:     testConfig,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func testRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "O-1210710", Name: "Adnan", Appointment: "Engineer"},
		{ID: "O-1210711", Name: "Bilal", Appointment: "Clerk"},
	}
}

func strPtr(v string) *string { return &v }

// ========================================
// TESTS
// ========================================

func TestPrepareNewAttendance_BuildsRosterDraft(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	draft, err := service.PrepareNewAttendance(context.Background(), "2026-01-06")
	require.NoError(t, err)
	require.Len(t, draft, 2)

	assert.Equal(t, "O-1210710", draft[0].EmployeeID)
	assert.Equal(t, "2026-01-06", draft[0].Date)
	assert.Equal(t, attendance.StatusPresent, draft[0].Status)
	assert.Nil(t, draft[0].TimeIn)
}

func TestPrepareNewAttendance_DateAlreadyExists(t *testing.T) {
	entryRepo := &entryRepoStub{}
	service := newTestService(entryRepo, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	_, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
		Employees:      []attendance.AttendanceLine{{Pak: "O-1210710", Status: "present"}},
	})
	require.NoError(t, err)

	_, err = service.PrepareNewAttendance(context.Background(), "2026-01-06")
	assert.ErrorIs(t, err, attendance.ErrDateAlreadyExists)
}

func TestPrepareNewAttendance_InvalidDate(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{}, &shiftRepoStub{})

	_, err := service.PrepareNewAttendance(context.Background(), "06-01-2026")
	assert.ErrorIs(t, err, attendance.ErrInvalidDate)
}

func TestSubmit_ClassifiesLines(t *testing.T) {
	entryRepo := &entryRepoStub{}
	service := newTestService(entryRepo, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	resp, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
		Employees: []attendance.AttendanceLine{
			{Pak: "O-1210710", Status: "present", TimeIn: strPtr("09:20"), TimeOut: strPtr("17:02")},
			{Pak: "O-1210711", Status: "absent"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.SubmittedCount)
	assert.Equal(t, "2026-01-06", resp.AttendanceDate)

	require.Len(t, entryRepo.entries, 2)

	late := entryRepo.entries[0]
	assert.Equal(t, attendance.StatusLate, late.Status)
	assert.Equal(t, 0.33, late.MissedHours)
	require.NotNil(t, late.TimeIn)
	assert.Equal(t, 560, *late.TimeIn)
	assert.Equal(t, attendance.SourceManual, late.Source)

	absent := entryRepo.entries[1]
	assert.Equal(t, attendance.StatusAbsent, absent.Status)
	assert.Equal(t, FullDayHours, absent.MissedHours)
	assert.Nil(t, absent.TimeIn)
	assert.Nil(t, absent.TimeOut)
}

func TestSubmit_SecondSubmissionForDateFails(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	req := attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
		Employees:      []attendance.AttendanceLine{{Pak: "O-1210710", Status: "present"}},
	}

	_, err := service.Submit(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Submit(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrDateAlreadyExists)
}

func TestSubmit_EmptyBatch(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{}, &shiftRepoStub{})

	_, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
	})
	assert.ErrorIs(t, err, attendance.ErrEmptyBatch)
}

func TestSubmit_UnknownPak(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	_, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
		Employees:      []attendance.AttendanceLine{{Pak: "O-9999999", Status: "present"}},
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestSubmit_DuplicatePak(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	_, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
		Employees: []attendance.AttendanceLine{
			{Pak: "O-1210710", Status: "present"},
			{Pak: "O-1210710", Status: "absent"},
		},
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestSubmit_HolidayWorkRequiresRestDay(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	// 2026-01-06 is a Tuesday.
	_, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
		Employees:      []attendance.AttendanceLine{{Pak: "O-1210710", Status: "holiday_work"}},
	})
	require.ErrorIs(t, err, attendance.ErrInvalidDate)

	// 2026-01-10 is a Saturday.
	resp, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-10",
		Employees:      []attendance.AttendanceLine{{Pak: "O-1210710", Status: "holiday_work"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SubmittedCount)
}

func TestSubmit_MalformedTime(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	_, err := service.Submit(context.Background(), attendance.AddAttendanceRequest{
		AttendanceDate: "2026-01-06",
		Employees: []attendance.AttendanceLine{
			{Pak: "O-1210710", Status: "present", TimeIn: strPtr("25:99")},
		},
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestUpdateEntry_Reclassifies(t *testing.T) {
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	timeIn := 540
	entryRepo := &entryRepoStub{entries: []attendance.Entry{{
		ID:         "entry-1",
		EmployeeID: "O-1210710",
		Date:       date,
		Status:     attendance.StatusPresent,
		TimeIn:     &timeIn,
		Source:     attendance.SourceManual,
	}}}
	service := newTestService(entryRepo, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	resp, err := service.UpdateEntry(context.Background(), attendance.UpdateEntryRequest{
		ID:     "entry-1",
		TimeIn: strPtr("09:40"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.Equal(t, 0.67, resp.MissedHours)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "09:40", *resp.TimeIn)
	assert.Equal(t, attendance.StatusLate, entryRepo.entries[0].Status)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{}, &shiftRepoStub{})

	_, err := service.UpdateEntry(context.Background(), attendance.UpdateEntryRequest{ID: "missing"})
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestShiftPolicy_DefaultsThenUpdate(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{}, &shiftRepoStub{})

	resp, err := service.GetShiftPolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.DefaultTimeIn)
	assert.Equal(t, "17:00", resp.DefaultTimeOut)
	assert.Equal(t, "09:15", resp.LateThreshold)

	updated, err := service.UpdateShiftPolicy(context.Background(), shift.UpdateConfigRequest{
		DefaultTimeIn:           "08:30",
		DefaultTimeOut:          "16:30",
		GracePeriodMinutes:      10,
		EarlyLeaveBufferMinutes: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "08:30", updated.DefaultTimeIn)
	assert.Equal(t, "08:40", updated.LateThreshold)

	resp, err = service.GetShiftPolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "08:30", resp.DefaultTimeIn)
}

func TestUpdateShiftPolicy_Invalid(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{}, &shiftRepoStub{})

	_, err := service.UpdateShiftPolicy(context.Background(), shift.UpdateConfigRequest{
		DefaultTimeIn:  "17:00",
		DefaultTimeOut: "09:00",
	})
	assert.ErrorIs(t, err, shift.ErrInvalidConfig)
}

// ========================================
// IMPORT TESTS
// ========================================

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func buildPunchWorkbook(t *testing.T, rows [][]interface{}) multipart.File {
	t.Helper()
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, file.SetCellValue(sheet, name, cell))
		}
	}

	buf, err := file.WriteToBuffer()
	require.NoError(t, err)
	return memFile{bytes.NewReader(buf.Bytes())}
}

func TestApplyImport_MergesMatchedRows(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	file := buildPunchWorkbook(t, [][]interface{}{
		{"AC-No.", "Time"},
		{"1210710", "2026-01-06 09:20:00"},
		{"1210710", "2026-01-06 17:02:00"},
		{"9999999", "2026-01-06 09:00:00"},
	})

	resp, err := service.ApplyImport(context.Background(), attendance.ImportRequest{
		Date:       "2026-01-06",
		DateFormat: "auto",
		File:       file,
		FileHeader: &multipart.FileHeader{Filename: "punches.xlsx"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalRecordsInFile)
	assert.Equal(t, 1, resp.MatchedCount)
	assert.Equal(t, 1, resp.UnmatchedCount)
	assert.Equal(t, []string{"2026-01-06"}, resp.AllDatesInFile)

	require.Len(t, resp.UpdatedDraft, 2)

	merged := resp.UpdatedDraft[0]
	assert.Equal(t, "O-1210710", merged.EmployeeID)
	assert.Equal(t, attendance.StatusLate, merged.Status)
	assert.Equal(t, 0.33, merged.MissedHours)
	require.NotNil(t, merged.TimeIn)
	assert.Equal(t, "09:20", *merged.TimeIn)
	require.NotNil(t, merged.TimeOut)
	assert.Equal(t, "17:02", *merged.TimeOut)
	assert.Equal(t, attendance.SourceSpreadsheetImport, merged.Source)

	untouched := resp.UpdatedDraft[1]
	assert.Equal(t, "O-1210711", untouched.EmployeeID)
	assert.Equal(t, attendance.StatusPresent, untouched.Status)
	assert.Nil(t, untouched.TimeIn)
	assert.Equal(t, attendance.SourceManual, untouched.Source)
}

func TestApplyImport_UnmatchedOnlyLeavesDraftUntouched(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{roster: testRoster()}, &shiftRepoStub{})

	file := buildPunchWorkbook(t, [][]interface{}{
		{"ID", "Time"},
		{"9999999", "2026-01-06 09:00:00"},
	})

	resp, err := service.ApplyImport(context.Background(), attendance.ImportRequest{
		Date:       "2026-01-06",
		DateFormat: "auto",
		File:       file,
		FileHeader: &multipart.FileHeader{Filename: "punches.xlsx"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.MatchedCount)
	assert.Equal(t, 1, resp.UnmatchedCount)
	require.Len(t, resp.AttendanceData, 1)
	assert.Equal(t, "NoRosterEntry", resp.AttendanceData[0].Reason)

	for _, entry := range resp.UpdatedDraft {
		assert.Equal(t, attendance.StatusPresent, entry.Status)
		assert.Nil(t, entry.TimeIn)
	}
}

func TestApplyImport_RejectsWrongFileType(t *testing.T) {
	service := newTestService(&entryRepoStub{}, &employeeRepoStub{}, &shiftRepoStub{})

	_, err := service.ApplyImport(context.Background(), attendance.ImportRequest{
		Date:       "2026-01-06",
		DateFormat: "auto",
		FileHeader: &multipart.FileHeader{Filename: "punches.csv"},
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}
