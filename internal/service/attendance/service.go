package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/attendance"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/employee"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/database"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/timeutil"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/validator"
	"github.com/adnanaslam989/attendance-backend-go/internal/repository/postgresql"
	"github.com/adnanaslam989/attendance-backend-go/internal/service/importer"
)

const dateLayout = "2006-01-02"

type ReconciliationServiceImpl struct {
	entryRepo    attendance.EntryRepository
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ConfigRepository
	defaults     shift.Config
	runTx        func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewReconciliationService(
	db *database.DB,
	entryRepo attendance.EntryRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ConfigRepository,
	defaults shift.Config,
) attendance.ReconciliationService {
	return &ReconciliationServiceImpl{
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		defaults:     defaults,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *ReconciliationServiceImpl) CheckDate(ctx context.Context, date string) (attendance.CheckDateResponse, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return attendance.CheckDateResponse{}, err
	}

	exists, err := s.entryRepo.ExistsForDate(ctx, parsed)
	if err != nil {
		return attendance.CheckDateResponse{}, fmt.Errorf("check date: %w", err)
	}

	return attendance.CheckDateResponse{Exists: exists}, nil
}

func (s *ReconciliationServiceImpl) GetByDate(ctx context.Context, date string) ([]attendance.EntryResponse, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByDate(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	return responses, nil
}

func (s *ReconciliationServiceImpl) PrepareNewAttendance(ctx context.Context, date string) ([]attendance.EntryResponse, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	exists, err := s.entryRepo.ExistsForDate(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("check date: %w", err)
	}
	if exists {
		return nil, attendance.ErrDateAlreadyExists
	}

	roster, err := s.employeeRepo.ListCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	return rosterDraft(roster, parsed), nil
}

func (s *ReconciliationServiceImpl) ApplyImport(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}

	targetDate, err := parseDate(req.Date)
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	// An unresolvable timestamp format is not fatal: the sheet's rows come
	// back without timestamps and surface per-row as AmbiguousDateFormat.
	sheet, parseErr := importer.ParseWorkbook(req.File, req.DateFormat)
	if parseErr != nil && !errors.Is(parseErr, importer.ErrAmbiguousDateFormat) {
		return attendance.ImportResponse{}, fmt.Errorf("parse workbook: %w", parseErr)
	}

	roster, err := s.employeeRepo.ListCurrent(ctx)
	if err != nil {
		return attendance.ImportResponse{}, fmt.Errorf("list roster: %w", err)
	}

	cfg, err := s.activeConfig(ctx)
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	entries, err := s.entryRepo.ListByDate(ctx, targetDate)
	if err != nil {
		return attendance.ImportResponse{}, fmt.Errorf("list attendance: %w", err)
	}

	var draft []attendance.EntryResponse
	if len(entries) > 0 {
		draft = make([]attendance.EntryResponse, 0, len(entries))
		for _, entry := range entries {
			draft = append(draft, toEntryResponse(entry))
		}
	} else {
		draft = rosterDraft(roster, targetDate)
	}

	index := make(map[string]*attendance.EntryResponse, len(draft))
	for i := range draft {
		index[draft[i].EmployeeID] = &draft[i]
	}

	resp := attendance.ImportResponse{
		TotalRecordsInFile: sheet.TotalRecords,
		AllDatesInFile:     sheet.AllDates,
		AttendanceData:     []attendance.MatchResultResponse{},
	}

	for _, result := range importer.Match(sheet.Rows, roster, targetDate) {
		item := attendance.MatchResultResponse{
			ExternalID: result.ExternalID,
			Matched:    result.Matched,
			EmployeeID: result.EmployeeID,
			FirstPunch: formatMinutes(result.FirstPunch),
			LastPunch:  formatMinutes(result.LastPunch),
			Reason:     result.Reason,
		}

		if !result.Matched {
			resp.UnmatchedCount++
			resp.AttendanceData = append(resp.AttendanceData, item)
			continue
		}

		cls, err := Classify(result.FirstPunch, attendance.StatusPresent, cfg)
		if err != nil {
			return attendance.ImportResponse{}, err
		}
		item.Status = cls.Status

		if entry, ok := index[result.EmployeeID]; ok {
			entry.TimeIn = item.FirstPunch
			entry.TimeOut = item.LastPunch
			entry.Status = cls.Status
			entry.MissedHours = cls.MissedHours
			entry.Source = attendance.SourceSpreadsheetImport
		}

		resp.MatchedCount++
		resp.AttendanceData = append(resp.AttendanceData, item)
	}

	resp.UpdatedDraft = draft
	return resp, nil
}

func (s *ReconciliationServiceImpl) Submit(ctx context.Context, req attendance.AddAttendanceRequest) (attendance.SubmitResponse, error) {
	if len(req.Employees) == 0 {
		return attendance.SubmitResponse{}, attendance.ErrEmptyBatch
	}
	if err := req.Validate(); err != nil {
		return attendance.SubmitResponse{}, err
	}

	date, err := parseDate(req.AttendanceDate)
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	exists, err := s.entryRepo.ExistsForDate(ctx, date)
	if err != nil {
		return attendance.SubmitResponse{}, fmt.Errorf("check date: %w", err)
	}
	if exists {
		return attendance.SubmitResponse{}, attendance.ErrDateAlreadyExists
	}

	cfg, err := s.activeConfig(ctx)
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	roster, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return attendance.SubmitResponse{}, fmt.Errorf("list roster: %w", err)
	}
	known := make(map[string]struct{}, len(roster))
	for _, emp := range roster {
		known[emp.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(req.Employees))
	entries := make([]attendance.Entry, 0, len(req.Employees))
	for i, line := range req.Employees {
		field := func(name string) string { return fmt.Sprintf("employees[%d].%s", i, name) }

		if _, ok := known[line.Pak]; !ok {
			return attendance.SubmitResponse{}, validator.ValidationErrors{{
				Field:   field("pak"),
				Message: "no employee with pak " + line.Pak,
			}}
		}
		if _, dup := seen[line.Pak]; dup {
			return attendance.SubmitResponse{}, validator.ValidationErrors{{
				Field:   field("pak"),
				Message: "duplicate entry for pak " + line.Pak,
			}}
		}
		seen[line.Pak] = struct{}{}

		status := strings.ToLower(line.Status)
		if status == attendance.StatusHolidayWork && !IsRestDay(date) {
			return attendance.SubmitResponse{}, fmt.Errorf("%w: holiday work on %s", attendance.ErrInvalidDate, DayName(date))
		}

		timeIn, err := parseClock(line.TimeIn)
		if err != nil {
			return attendance.SubmitResponse{}, validator.ValidationErrors{{
				Field:   field("time_in"),
				Message: "time_in must be a valid time like HH:MM",
			}}
		}
		timeOut, err := parseClock(line.TimeOut)
		if err != nil {
			return attendance.SubmitResponse{}, validator.ValidationErrors{{
				Field:   field("time_out"),
				Message: "time_out must be a valid time like HH:MM",
			}}
		}

		if status == attendance.StatusAbsent || status == attendance.StatusLeave {
			timeIn, timeOut = nil, nil
		}

		cls, err := Classify(timeIn, status, cfg)
		if err != nil {
			return attendance.SubmitResponse{}, err
		}

		entries = append(entries, attendance.Entry{
			EmployeeID:  line.Pak,
			Date:        date,
			Status:      cls.Status,
			TimeIn:      timeIn,
			TimeOut:     timeOut,
			MissedHours: cls.MissedHours,
			Remarks:     line.Remarks,
			Source:      attendance.SourceManual,
		})
	}

	var count int
	err = s.runTx(ctx, func(txCtx context.Context) error {
		n, err := s.entryRepo.CreateBatch(txCtx, entries)
		if err != nil {
			return fmt.Errorf("create batch: %w", err)
		}
		count = n
		return nil
	})
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	return attendance.SubmitResponse{
		SubmittedCount: count,
		AttendanceDate: req.AttendanceDate,
	}, nil
}

func (s *ReconciliationServiceImpl) UpdateEntry(ctx context.Context, req attendance.UpdateEntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	if req.Status != nil {
		entry.Status = strings.ToLower(*req.Status)
	}
	if req.TimeIn != nil {
		entry.TimeIn, err = parseClock(req.TimeIn)
		if err != nil {
			return attendance.EntryResponse{}, validator.ValidationErrors{{
				Field:   "time_in",
				Message: "time_in must be a valid time like HH:MM",
			}}
		}
	}
	if req.TimeOut != nil {
		entry.TimeOut, err = parseClock(req.TimeOut)
		if err != nil {
			return attendance.EntryResponse{}, validator.ValidationErrors{{
				Field:   "time_out",
				Message: "time_out must be a valid time like HH:MM",
			}}
		}
	}
	if req.Remarks != nil {
		entry.Remarks = req.Remarks
	}

	if entry.Status == attendance.StatusHolidayWork && !IsRestDay(entry.Date) {
		return attendance.EntryResponse{}, fmt.Errorf("%w: holiday work on %s", attendance.ErrInvalidDate, DayName(entry.Date))
	}
	if entry.Status == attendance.StatusAbsent || entry.Status == attendance.StatusLeave {
		entry.TimeIn, entry.TimeOut = nil, nil
	}

	cfg, err := s.activeConfig(ctx)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	cls, err := Classify(entry.TimeIn, entry.Status, cfg)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	entry.Status = cls.Status
	entry.MissedHours = cls.MissedHours

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return attendance.EntryResponse{}, err
	}

	return toEntryResponse(entry), nil
}

func (s *ReconciliationServiceImpl) GetShiftPolicy(ctx context.Context) (shift.ConfigResponse, error) {
	cfg, err := s.activeConfig(ctx)
	if err != nil {
		return shift.ConfigResponse{}, err
	}
	return toConfigResponse(cfg), nil
}

func (s *ReconciliationServiceImpl) UpdateShiftPolicy(ctx context.Context, req shift.UpdateConfigRequest) (shift.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ConfigResponse{}, err
	}

	timeIn, err := timeutil.Parse(req.DefaultTimeIn)
	if err != nil {
		return shift.ConfigResponse{}, validator.ValidationErrors{{
			Field:   "default_time_in",
			Message: "default_time_in must be a valid time like HH:MM",
		}}
	}
	timeOut, err := timeutil.Parse(req.DefaultTimeOut)
	if err != nil {
		return shift.ConfigResponse{}, validator.ValidationErrors{{
			Field:   "default_time_out",
			Message: "default_time_out must be a valid time like HH:MM",
		}}
	}

	cfg := shift.Config{
		DefaultTimeIn:           timeIn,
		DefaultTimeOut:          timeOut,
		GracePeriodMinutes:      req.GracePeriodMinutes,
		EarlyLeaveBufferMinutes: req.EarlyLeaveBufferMinutes,
	}
	if err := cfg.Validate(); err != nil {
		return shift.ConfigResponse{}, err
	}

	saved, err := s.shiftRepo.Save(ctx, cfg)
	if err != nil {
		return shift.ConfigResponse{}, fmt.Errorf("save shift policy: %w", err)
	}

	return toConfigResponse(saved), nil
}

// activeConfig returns the persisted shift policy, or the environment
// defaults when none has been saved yet.
func (s *ReconciliationServiceImpl) activeConfig(ctx context.Context) (shift.Config, error) {
	cfg, err := s.shiftRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, shift.ErrConfigNotFound) {
			return s.defaults, nil
		}
		return shift.Config{}, fmt.Errorf("get shift policy: %w", err)
	}
	return cfg, nil
}

func parseDate(date string) (time.Time, error) {
	parsed, valid := validator.IsValidDate(date)
	if !valid {
		return time.Time{}, attendance.ErrInvalidDate
	}
	return parsed, nil
}

func parseClock(value *string) (*int, error) {
	if value == nil || validator.IsEmpty(*value) {
		return nil, nil
	}
	minutes, err := timeutil.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &minutes, nil
}

func formatMinutes(minutes *int) *string {
	if minutes == nil {
		return nil
	}
	formatted := timeutil.Format(*minutes)
	return &formatted
}

func rosterDraft(roster []employee.Employee, date time.Time) []attendance.EntryResponse {
	draft := make([]attendance.EntryResponse, 0, len(roster))
	for _, emp := range roster {
		name := emp.Name
		appointment := emp.Appointment
		draft = append(draft, attendance.EntryResponse{
			EmployeeID:          emp.ID,
			EmployeeName:        &name,
			EmployeeAppointment: &appointment,
			Date:                date.Format(dateLayout),
			Status:              attendance.StatusPresent,
			Source:              attendance.SourceManual,
		})
	}
	return draft
}

func toEntryResponse(entry attendance.Entry) attendance.EntryResponse {
	return attendance.EntryResponse{
		ID:                  entry.ID,
		EmployeeID:          entry.EmployeeID,
		EmployeeName:        entry.EmployeeName,
		EmployeeAppointment: entry.EmployeeAppointment,
		Date:                entry.Date.Format(dateLayout),
		Status:              entry.Status,
		TimeIn:              formatMinutes(entry.TimeIn),
		TimeOut:             formatMinutes(entry.TimeOut),
		MissedHours:         entry.MissedHours,
		Remarks:             entry.Remarks,
		Source:              entry.Source,
	}
}

func toConfigResponse(cfg shift.Config) shift.ConfigResponse {
	return shift.ConfigResponse{
		DefaultTimeIn:           timeutil.Format(cfg.DefaultTimeIn),
		DefaultTimeOut:          timeutil.Format(cfg.DefaultTimeOut),
		GracePeriodMinutes:      cfg.GracePeriodMinutes,
		LateThreshold:           timeutil.Format(cfg.LateThreshold()),
		EarlyLeaveBufferMinutes: cfg.EarlyLeaveBufferMinutes,
	}
}
