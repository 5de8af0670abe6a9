package trend_report_port

//go:generate go run go.uber.org/mock/mockgen -source=trend_report_port.go -destination=../../mocks/mock_trend_report_port.go -package=mocks

import (
	"context"

	"techpulse/domain"
)

// SaveTrendReportPort appends a report; reports are never overwritten.
type SaveTrendReportPort interface {
	SaveReport(ctx context.Context, report *domain.TrendReport) error
}

// FetchLatestTrendReportPort returns the report with the greatest timestamp,
// or nil, nil when none has been saved.
type FetchLatestTrendReportPort interface {
	FindLatestReport(ctx context.Context) (*domain.TrendReport, error)
}

type TrendReportRepository interface {
	SaveTrendReportPort
	FetchLatestTrendReportPort
}
