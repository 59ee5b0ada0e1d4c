package employee

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	StatusCurrent = "current"
	StatusEx      = "ex"
)

// Employee is an identity record keyed by the formatted PAK number
// (e.g. "O-1210710"). The numeric suffix is what biometric exports key on.
type Employee struct {
	ID               string // PAK number
	Name             string
	Appointment      string
	EmploymentStatus string
	CNIC             *string
	Mobile           *string
	PhotoURL         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const rosterSeparator = " : "

// RosterLine renders the employee in the "{id} : {appointment} : {name}"
// wire format consumed by the attendance screens.
func (e Employee) RosterLine() string {
	return e.ID + rosterSeparator + e.Appointment + rosterSeparator + e.Name
}

// ParseRosterLine splits a roster line back into its id/appointment/name
// triple. The separator is order-significant.
func ParseRosterLine(line string) (id, appointment, name string, ok bool) {
	parts := strings.SplitN(line, rosterSeparator, 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

var numericSuffixRegex = regexp.MustCompile(`(\d+)$`)

// NumericSuffix extracts the trailing numeric component of a PAK number.
// Returns false when the id carries no digits.
func NumericSuffix(id string) (int64, bool) {
	match := numericSuffixRegex.FindString(id)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
