package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/attendance"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/report"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
)

type ReportServiceImpl struct {
	entryRepo attendance.EntryRepository
	shiftRepo shift.ConfigRepository
	defaults  shift.Config
}

func NewReportService(
	entryRepo attendance.EntryRepository,
	shiftRepo shift.ConfigRepository,
	defaults shift.Config,
) report.ReportService {
	return &ReportServiceImpl{
		entryRepo: entryRepo,
		shiftRepo: shiftRepo,
		defaults:  defaults,
	}
}

func (s *ReportServiceImpl) Summarize(ctx context.Context, req report.SummaryRequest) (report.PeriodSummary, error) {
	if err := req.Validate(); err != nil {
		return report.PeriodSummary{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	entries, err := s.entryRepo.ListRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return report.PeriodSummary{}, fmt.Errorf("list range: %w", err)
	}

	cfg, err := s.shiftRepo.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, shift.ErrConfigNotFound) {
			return report.PeriodSummary{}, fmt.Errorf("get shift policy: %w", err)
		}
		cfg = s.defaults
	}

	return BuildSummary(entries, cfg, req), nil
}

// BuildSummary folds a set of attendance entries into a PeriodSummary.
// The result is independent of entry order.
func BuildSummary(entries []attendance.Entry, cfg shift.Config, req report.SummaryRequest) report.PeriodSummary {
	summary := report.PeriodSummary{
		EmployeeID:           req.EmployeeID,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		AttendancePercentage: "0%",
		DayOfWeekBreakdown:   emptyBreakdown(),
	}

	for _, entry := range entries {
		summary.TotalDays++

		switch entry.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusLate:
			summary.LateDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusHolidayWork:
			summary.HolidayWorkDays++
		case attendance.StatusShortLeave:
			summary.ShortLeaveDays++
		}

		if entry.MissedHours > 0 {
			summary.TotalMissedHours += entry.MissedHours
		} else if entry.MissedHours < 0 {
			summary.TotalExtraHours += -entry.MissedHours
		}

		weekday := entry.Date.Weekday().String()
		stats := summary.DayOfWeekBreakdown[weekday]
		if entry.TimeIn != nil && *entry.TimeIn > cfg.LateThreshold() {
			stats.LateCount++
		}
		if entry.TimeOut != nil && *entry.TimeOut < cfg.EarlyLeaveThreshold() {
			stats.EarlyLeaveCount++
		}
		stats.IssueCount = stats.LateCount + stats.EarlyLeaveCount
		summary.DayOfWeekBreakdown[weekday] = stats
	}

	summary.TotalMissedHours = round2(summary.TotalMissedHours)
	summary.TotalExtraHours = round2(summary.TotalExtraHours)

	if summary.TotalDays > 0 {
		summary.AverageMissedHours = round2(summary.TotalMissedHours / float64(summary.TotalDays))

		attended := float64(summary.PresentDays+summary.LateDays) + 0.5*float64(summary.HalfDays)
		pct := attended / float64(summary.TotalDays) * 100
		summary.AttendancePercentage = fmt.Sprintf("%.1f%%", pct)
	}

	return summary
}

func emptyBreakdown() map[string]report.WeekdayStats {
	breakdown := make(map[string]report.WeekdayStats, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		breakdown[d.String()] = report.WeekdayStats{}
	}
	return breakdown
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
