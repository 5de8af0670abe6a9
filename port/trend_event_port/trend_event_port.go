package trend_event_port

//go:generate go run go.uber.org/mock/mockgen -source=trend_event_port.go -destination=../../mocks/mock_trend_event_port.go -package=mocks

import (
	"context"

	"techpulse/domain"
)

// PublishTrendReportPort announces a freshly computed report to downstream consumers.
type PublishTrendReportPort interface {
	PublishTrendReport(ctx context.Context, report *domain.TrendReport) error
}
