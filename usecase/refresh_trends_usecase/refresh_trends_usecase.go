package refresh_trends_usecase

import (
	"context"

	"techpulse/domain"
	"techpulse/port/trend_event_port"
	"techpulse/utils/logger"
)

type trendCalculator interface {
	Execute(ctx context.Context, keywords []string, now int64) (*domain.TrendReport, error)
}

// RefreshTrendsUsecase computes a report and announces it. Publishing is
// best effort: a stored report is returned even when no consumer got it.
type RefreshTrendsUsecase struct {
	calculator trendCalculator
	publisher  trend_event_port.PublishTrendReportPort
}

func NewRefreshTrendsUsecase(calculator trendCalculator, publisher trend_event_port.PublishTrendReportPort) *RefreshTrendsUsecase {
	return &RefreshTrendsUsecase{calculator: calculator, publisher: publisher}
}

func (u *RefreshTrendsUsecase) Execute(ctx context.Context, keywords []string, now int64) (*domain.TrendReport, error) {
	report, err := u.calculator.Execute(ctx, keywords, now)
	if err != nil {
		return nil, err
	}

	if u.publisher == nil {
		return report, nil
	}
	if err := u.publisher.PublishTrendReport(ctx, report); err != nil {
		logger.Logger.WarnContext(ctx, "trend report saved but not published",
			"timestamp", report.Timestamp,
			"error", err)
	}
	return report, nil
}
