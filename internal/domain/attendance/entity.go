package attendance

import "time"

// Entry statuses. Exactly one entry exists per (employee, date).
const (
	StatusPresent     = "present"
	StatusAbsent      = "absent"
	StatusLeave       = "leave"
	StatusLate        = "late"
	StatusHalfDay     = "half_day"
	StatusHolidayWork = "holiday_work"
	StatusShortLeave  = "short_leave"
)

// Entry sources.
const (
	SourceManual            = "manual"
	SourceBiometricImport   = "biometric_import"
	SourceSpreadsheetImport = "spreadsheet_import"
)

// ValidStatuses lists every accepted entry status.
var ValidStatuses = []string{
	StatusPresent, StatusAbsent, StatusLeave, StatusLate,
	StatusHalfDay, StatusHolidayWork, StatusShortLeave,
}

// Entry is one employee's attendance record for one calendar date.
// TimeIn/TimeOut are minutes since midnight and absent (nil), not zero,
// when the status carries no punches. MissedHours is signed: positive is
// hours owed, negative is credited extra time.
type Entry struct {
	ID          string
	EmployeeID  string
	Date        time.Time // date only, no time component
	Status      string
	TimeIn      *int
	TimeOut     *int
	MissedHours float64
	Remarks     *string
	Source      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined roster fields
	EmployeeName        *string
	EmployeeAppointment *string
}
