package report

import "context"

type ReportService interface {
	// Summarize folds a date range's entries into a PeriodSummary
	Summarize(ctx context.Context, req SummaryRequest) (PeriodSummary, error)
}
