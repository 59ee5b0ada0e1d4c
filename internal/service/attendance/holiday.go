package attendance

import "time"

// IsRestDay reports whether the date is a calendar rest day. Rest days are
// purely weekend-based (Saturday/Sunday); there is no holiday-calendar
// lookup.
func IsRestDay(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DayName returns the weekday name for a date.
func DayName(date time.Time) string {
	return date.Weekday().String()
}
