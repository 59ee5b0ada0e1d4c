package attendance

import (
	"math"
	"strings"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/attendance"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
)

const (
	FullDayHours = 8.0
	HalfDayHours = 4.0

	// MinLateHours is the smallest lateness recorded for a late entry.
	// A late entry whose delta rounds to zero is floored to this value.
	MinLateHours = 0.25
)

// Classification is the derived status and missed hours for one entry.
// MissedHours is signed: positive is hours owed, negative is credit.
type Classification struct {
	Status      string
	MissedHours float64
}

// Classify applies the shift policy to a single attendance entry.
//
// Status is derived first: an explicit late is honored, otherwise an entry
// turns late when the punch falls after defaultTimeIn + grace. Missed hours
// accrue only on late entries, measured from defaultTimeIn (not from the
// grace limit). A missing punch on a present/late entry is not penalized.
func Classify(timeIn *int, status string, cfg shift.Config) (Classification, error) {
	if err := cfg.Validate(); err != nil {
		return Classification{}, err
	}

	status = strings.ToLower(status)
	switch status {
	case attendance.StatusAbsent, attendance.StatusLeave:
		return Classification{Status: status, MissedHours: FullDayHours}, nil
	case attendance.StatusHalfDay:
		return Classification{Status: status, MissedHours: HalfDayHours}, nil
	case attendance.StatusHolidayWork:
		// Working a rest day credits a full day.
		return Classification{Status: status, MissedHours: -FullDayHours}, nil
	case attendance.StatusShortLeave:
		return Classification{Status: status, MissedHours: 0}, nil
	}

	if timeIn == nil {
		return Classification{Status: status, MissedHours: 0}, nil
	}

	derived := status
	if *timeIn > cfg.LateThreshold() {
		derived = attendance.StatusLate
	}

	var missed float64
	if derived == attendance.StatusLate {
		if delta := *timeIn - cfg.DefaultTimeIn; delta > 0 {
			missed = round2(float64(delta) / 60.0)
		}
		if missed < MinLateHours {
			missed = MinLateHours
		}
	}

	return Classification{Status: derived, MissedHours: missed}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
