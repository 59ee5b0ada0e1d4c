package attendance

import (
	"context"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
)

// ReconciliationService composes time normalization, the shift policy, the
// holiday classifier and the spreadsheet matcher to go from raw inputs for
// a date to submittable attendance entries.
type ReconciliationService interface {
	// CheckDate reports whether any attendance exists for the date
	CheckDate(ctx context.Context, date string) (CheckDateResponse, error)

	// GetByDate retrieves the submitted entries for a date
	GetByDate(ctx context.Context, date string) ([]EntryResponse, error)

	// PrepareNewAttendance builds a fresh draft for the date from the
	// current roster. Fails with ErrDateAlreadyExists if any entry has
	// already been submitted for that date.
	PrepareNewAttendance(ctx context.Context, date string) ([]EntryResponse, error)

	// ApplyImport matches an uploaded spreadsheet against the roster and
	// merges first/last punches into the date's draft
	ApplyImport(ctx context.Context, req ImportRequest) (ImportResponse, error)

	// Submit persists a batch all-or-nothing
	Submit(ctx context.Context, req AddAttendanceRequest) (SubmitResponse, error)

	// UpdateEntry edits a single submitted entry and reclassifies it
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	// GetShiftPolicy returns the active shift policy
	GetShiftPolicy(ctx context.Context) (shift.ConfigResponse, error)

	// UpdateShiftPolicy replaces the active shift policy
	UpdateShiftPolicy(ctx context.Context, req shift.UpdateConfigRequest) (shift.ConfigResponse, error)
}
