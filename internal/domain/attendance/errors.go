package attendance

import "errors"

// Attendance domain errors
var (
	// ErrDateAlreadyExists guards the one-entry-per-(employee, date)
	// invariant at the submission boundary.
	ErrDateAlreadyExists = errors.New("attendance already exists for this date")

	// ErrInvalidDate covers non-weekend dates submitted for holiday work
	// and ranges whose start falls after their end.
	ErrInvalidDate = errors.New("invalid date for this operation")

	ErrEntryNotFound = errors.New("attendance record not found")
	ErrEmptyBatch    = errors.New("attendance batch contains no employees")
)
