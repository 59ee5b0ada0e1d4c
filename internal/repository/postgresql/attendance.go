package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/attendance"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EntryRepository {
	return &attendanceRepository{db: db}
}

// CreateBatch implements attendance.EntryRepository.
func (r *attendanceRepository) CreateBatch(ctx context.Context, entries []attendance.Entry) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries (
			id, employee_id, date, status, time_in_minutes, time_out_minutes,
			missed_hours, remarks, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	created := 0
	for _, entry := range entries {
		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := q.Exec(ctx, query,
			id, entry.EmployeeID, entry.Date, entry.Status,
			entry.TimeIn, entry.TimeOut, entry.MissedHours, entry.Remarks, entry.Source,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create attendance entry for %s: %w", entry.EmployeeID, err)
		}
		created++
	}

	return created, nil
}

// ExistsForDate implements attendance.EntryRepository.
func (r *attendanceRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendance_entries WHERE date = $1)`, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance date: %w", err)
	}

	return exists, nil
}

const entryColumns = `
	a.id, a.employee_id, a.date, a.status, a.time_in_minutes, a.time_out_minutes,
	a.missed_hours, a.remarks, a.source, a.created_at, a.updated_at,
	e.name, e.appointment`

func scanEntry(row pgx.Row) (attendance.Entry, error) {
	var entry attendance.Entry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Status,
		&entry.TimeIn, &entry.TimeOut, &entry.MissedHours, &entry.Remarks, &entry.Source,
		&entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName, &entry.EmployeeAppointment,
	)
	return entry, err
}

// ListByDate implements attendance.EntryRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.employee_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListRange implements attendance.EntryRepository.
func (r *attendanceRepository) ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}
	if employeeID != "" {
		query += ` AND a.employee_id = $3`
		args = append(args, employeeID)
	}
	query += ` ORDER BY a.date, a.employee_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetByID implements attendance.EntryRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Entry{}, attendance.ErrEntryNotFound
		}
		return attendance.Entry{}, fmt.Errorf("failed to get attendance entry: %w", err)
	}

	return entry, nil
}

// Update implements attendance.EntryRepository.
func (r *attendanceRepository) Update(ctx context.Context, entry attendance.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_entries
		SET status = $2, time_in_minutes = $3, time_out_minutes = $4,
			missed_hours = $5, remarks = $6, source = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID, entry.Status, entry.TimeIn, entry.TimeOut,
		entry.MissedHours, entry.Remarks, entry.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}
