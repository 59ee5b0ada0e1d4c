package attendance

import (
	"context"
	"time"
)

// EntryRepository defines data access methods for attendance entries.
type EntryRepository interface {
	// CreateBatch inserts a batch of entries. Callers wrap it in a
	// transaction for all-or-nothing submission.
	CreateBatch(ctx context.Context, entries []Entry) (int, error)

	// ExistsForDate reports whether any entry exists for the date
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)

	// ListByDate retrieves all entries for a date, joined with roster data
	ListByDate(ctx context.Context, date time.Time) ([]Entry, error)

	// ListRange retrieves entries in [start, end] for one employee, or for
	// all employees when employeeID is empty
	ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)

	// GetByID retrieves a single entry
	GetByID(ctx context.Context, id string) (Entry, error)

	// Update updates an existing entry
	Update(ctx context.Context, entry Entry) error
}
