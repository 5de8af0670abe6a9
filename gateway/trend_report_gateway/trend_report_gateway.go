package trend_report_gateway

import (
	"context"
	"time"

	"techpulse/domain"
	"techpulse/port/trend_report_port"
	"techpulse/utils/errors"
	"techpulse/utils/logger"
	"techpulse/utils/metrics"
)

var _ trend_report_port.TrendReportRepository = (*TrendReportGateway)(nil)

const cacheName = "trend_report"

type TrendReportStore interface {
	SaveTrendReport(ctx context.Context, report *domain.TrendReport) error
	FindLatestTrendReport(ctx context.Context) (*domain.TrendReport, error)
}

// ReportCache holds the latest report in front of the store.
// SetLatestReport must refuse a report older than one it has already held.
type ReportCache interface {
	GetLatestReport(ctx context.Context) (*domain.TrendReport, bool, error)
	SetLatestReport(ctx context.Context, report *domain.TrendReport, ttl time.Duration) (bool, error)
	InvalidateLatestReport(ctx context.Context) error
}

type TrendReportGateway struct {
	store TrendReportStore
	cache ReportCache
	ttl   time.Duration
}

// NewTrendReportGateway reads through cache when it is non-nil. Cache
// failures are logged and never fail the call.
func NewTrendReportGateway(store TrendReportStore, cache ReportCache, ttl time.Duration) *TrendReportGateway {
	return &TrendReportGateway{store: store, cache: cache, ttl: ttl}
}

func (g *TrendReportGateway) SaveReport(ctx context.Context, report *domain.TrendReport) error {
	if report == nil {
		return errors.NewValidationContextError("report is required", "gateway", "TrendReportGateway", "SaveReport", domain.ErrValidation, nil)
	}
	if err := g.store.SaveTrendReport(ctx, report); err != nil {
		return errors.NewDatabaseContextError("failed to save trend report", "gateway", "TrendReportGateway", "SaveReport",
			domain.NewRepositoryError("save trend report", err),
			map[string]any{"timestamp": report.Timestamp})
	}

	// Write through; the cache keeps whichever report is newer.
	if g.cache != nil {
		if _, err := g.cache.SetLatestReport(ctx, report, g.ttl); err != nil {
			logger.FromContext(ctx).Warn("failed to write trend report cache, invalidating", "error", err)
			if err := g.cache.InvalidateLatestReport(ctx); err != nil {
				logger.FromContext(ctx).Warn("failed to invalidate trend report cache", "error", err)
			}
		}
	}
	return nil
}

func (g *TrendReportGateway) FindLatestReport(ctx context.Context) (*domain.TrendReport, error) {
	if g.cache != nil {
		report, ok, err := g.cache.GetLatestReport(ctx)
		switch {
		case err != nil:
			logger.FromContext(ctx).Warn("trend report cache read failed", "error", err)
		case ok:
			metrics.RecordCache(cacheName, true)
			return report, nil
		default:
			metrics.RecordCache(cacheName, false)
		}
	}

	report, err := g.store.FindLatestTrendReport(ctx)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to find latest trend report", "gateway", "TrendReportGateway", "FindLatestReport",
			domain.NewRepositoryError("find latest trend report", err), nil)
	}

	if report != nil && g.cache != nil {
		if _, err := g.cache.SetLatestReport(ctx, report, g.ttl); err != nil {
			logger.FromContext(ctx).Warn("failed to cache trend report", "error", err)
		}
	}
	return report, nil
}
