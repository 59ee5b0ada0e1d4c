// Package importer matches punch rows from uploaded biometric spreadsheets
// against the employee roster.
package importer

import (
	"time"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/employee"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/timeutil"
)

// Unmatched reasons surfaced as per-row diagnostics.
const (
	ReasonNoRosterEntry        = "NoRosterEntry"
	ReasonAmbiguousRosterMatch = "AmbiguousRosterMatch"
	ReasonAmbiguousDateFormat  = "AmbiguousDateFormat"
)

// MatchResult is the outcome of matching one person's punches for one day.
// FirstPunch/LastPunch are minutes since midnight; LastPunch is absent when
// only a single punch exists.
type MatchResult struct {
	ExternalID int64
	Matched    bool
	EmployeeID string
	FirstPunch *int
	LastPunch  *int
	Reason     string
}

// Match groups rows by external id, keeps only punches on targetDate, and
// resolves each group against the roster by numeric-suffix equality.
// Result order mirrors the order ids first appear in the input. A numeric id
// shared by more than one roster entry is an error condition, never a guess.
func Match(rows []Row, roster []employee.Employee, targetDate time.Time) []MatchResult {
	type group struct {
		ambiguous bool
		punches   []int // minutes of day, on targetDate only
	}

	var order []int64
	groups := make(map[int64]*group)
	for _, row := range rows {
		g, seen := groups[row.ExternalID]
		if !seen {
			g = &group{}
			groups[row.ExternalID] = g
			order = append(order, row.ExternalID)
		}
		if row.Timestamp.IsZero() {
			g.ambiguous = true
			continue
		}
		if !sameDate(row.Timestamp, targetDate) {
			continue
		}
		g.punches = append(g.punches, timeutil.MinuteOfDay(row.Timestamp))
	}

	var results []MatchResult
	for _, externalID := range order {
		g := groups[externalID]

		if g.ambiguous {
			results = append(results, MatchResult{
				ExternalID: externalID,
				Reason:     ReasonAmbiguousDateFormat,
			})
			continue
		}
		if len(g.punches) == 0 {
			// All of this person's punches fall on other dates.
			continue
		}

		first, last := firstLastPunch(g.punches)
		result := MatchResult{
			ExternalID: externalID,
			FirstPunch: &first,
		}
		if last != first {
			result.LastPunch = &last
		}

		matches := rosterMatches(roster, externalID)
		switch len(matches) {
		case 1:
			result.Matched = true
			result.EmployeeID = matches[0].ID
		case 0:
			result.Reason = ReasonNoRosterEntry
		default:
			result.Reason = ReasonAmbiguousRosterMatch
		}

		results = append(results, result)
	}

	return results
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func firstLastPunch(punches []int) (first, last int) {
	first, last = punches[0], punches[0]
	for _, p := range punches[1:] {
		if p < first {
			first = p
		}
		if p > last {
			last = p
		}
	}
	return first, last
}

func rosterMatches(roster []employee.Employee, externalID int64) []employee.Employee {
	var matches []employee.Employee
	for _, emp := range roster {
		if suffix, ok := employee.NumericSuffix(emp.ID); ok && suffix == externalID {
			matches = append(matches, emp)
		}
	}
	return matches
}
