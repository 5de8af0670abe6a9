package trend_event_gateway

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"techpulse/domain"
	"techpulse/driver/publisher_driver"
	"techpulse/port/trend_event_port"
	"techpulse/utils/errors"
	"techpulse/utils/logger"
)

var _ trend_event_port.PublishTrendReportPort = (*TrendEventGateway)(nil)

// TrendEventGateway fans a report out to every configured publisher.
type TrendEventGateway struct {
	publishers []publisher_driver.Publisher
	timeout    time.Duration
	now        func() time.Time
}

func NewTrendEventGateway(timeout time.Duration, publishers ...publisher_driver.Publisher) *TrendEventGateway {
	return &TrendEventGateway{
		publishers: publishers,
		timeout:    timeout,
		now:        time.Now,
	}
}

// PublishTrendReport delivers the same event to all publishers concurrently.
// A failing publisher does not stop the others; failures are joined.
func (g *TrendEventGateway) PublishTrendReport(ctx context.Context, report *domain.TrendReport) error {
	if report == nil {
		return errors.NewValidationContextError("trend report is required", "gateway", "TrendEventGateway", "PublishTrendReport", domain.ErrValidation, nil)
	}
	if len(g.publishers) == 0 {
		return nil
	}

	evt := publisher_driver.NewTrendReportEvent(report, g.now())
	errs := make([]error, len(g.publishers))

	var wg sync.WaitGroup
	for i, pub := range g.publishers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pubCtx := ctx
			if g.timeout > 0 {
				var cancel context.CancelFunc
				pubCtx, cancel = context.WithTimeout(ctx, g.timeout)
				defer cancel()
			}
			if err := pub.Publish(pubCtx, evt); err != nil {
				logger.FromContext(ctx).Warn("publisher failed",
					"publisher", pub.ID(),
					"event_id", evt.EventID,
					"error", err)
				errs[i] = fmt.Errorf("%s: %w", pub.ID(), err)
				return
			}
			logger.FromContext(ctx).Debug("trend report published", "publisher", pub.ID(), "event_id", evt.EventID)
		}()
	}
	wg.Wait()

	if err := stderrors.Join(errs...); err != nil {
		return errors.NewExternalAPIContextError("failed to publish trend report", "gateway", "TrendEventGateway", "PublishTrendReport", err,
			map[string]any{"event_id": evt.EventID, "publishers": len(g.publishers)})
	}
	return nil
}

func (g *TrendEventGateway) Close() {
	publisher_driver.CloseAll(g.publishers)
}
