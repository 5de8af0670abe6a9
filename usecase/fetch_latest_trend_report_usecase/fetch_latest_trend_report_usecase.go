package fetch_latest_trend_report_usecase

import (
	"context"
	"fmt"

	"techpulse/domain"
	"techpulse/port/trend_report_port"
	"techpulse/utils/logger"
)

type FetchLatestTrendReportUsecase struct {
	port trend_report_port.FetchLatestTrendReportPort
}

func NewFetchLatestTrendReportUsecase(port trend_report_port.FetchLatestTrendReportPort) *FetchLatestTrendReportUsecase {
	return &FetchLatestTrendReportUsecase{port: port}
}

// Execute returns the newest report, or domain.ErrNotFound when none exists.
func (u *FetchLatestTrendReportUsecase) Execute(ctx context.Context) (*domain.TrendReport, error) {
	report, err := u.port.FindLatestReport(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch latest trend report", "error", err)
		return nil, fmt.Errorf("fetch latest trend report: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("trend report: %w", domain.ErrNotFound)
	}
	return report, nil
}
