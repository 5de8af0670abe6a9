// Package publisher_driver delivers trend report events to the sinks listed
// in the publishers file.
package publisher_driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"techpulse/config"
	"techpulse/domain"
)

const EventTrendReportCreated = "trend_report.created"

// TrendReportEvent is the envelope every sink receives.
type TrendReportEvent struct {
	EventID    string              `json:"event_id"`
	EventType  string              `json:"event_type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Report     *domain.TrendReport `json:"report"`
}

func NewTrendReportEvent(report *domain.TrendReport, now time.Time) TrendReportEvent {
	return TrendReportEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTrendReportCreated,
		OccurredAt: now.UTC(),
		Report:     report,
	}
}

// attributes are attached to queue messages so consumers can filter without
// decoding the body.
func (e TrendReportEvent) attributes() map[string]string {
	attrs := map[string]string{
		"event_type": e.EventType,
		"event_id":   e.EventID,
	}
	if e.Report != nil {
		attrs["report_timestamp"] = strconv.FormatInt(e.Report.Timestamp, 10)
	}
	return attrs
}

type Publisher interface {
	ID() string
	Publish(ctx context.Context, evt TrendReportEvent) error
	Close() error
}

type builder func(ctx context.Context, cfg config.PublisherConfig) (Publisher, error)

var builders = map[string]builder{
	config.PublisherHTTP:        newHTTPPublisher,
	config.PublisherSQS:         newSQSPublisher,
	config.PublisherSNS:         newSNSPublisher,
	config.PublisherPubSub:      newPubSubPublisher,
	config.PublisherRedisStream: newRedisStreamPublisher,
}

// BuildAll instantiates a publisher per config. Publishers built before a
// failure are closed.
func BuildAll(ctx context.Context, cfgs []config.PublisherConfig) ([]Publisher, error) {
	pubs := make([]Publisher, 0, len(cfgs))
	for _, cfg := range cfgs {
		build, ok := builders[cfg.Type]
		if !ok {
			CloseAll(pubs)
			return nil, fmt.Errorf("no publisher registered for type %q", cfg.Type)
		}
		pub, err := build(ctx, cfg)
		if err != nil {
			CloseAll(pubs)
			return nil, fmt.Errorf("build publisher %q: %w", cfg.ID, err)
		}
		pubs = append(pubs, pub)
	}
	return pubs, nil
}

func CloseAll(pubs []Publisher) {
	for _, p := range pubs {
		_ = p.Close()
	}
}
