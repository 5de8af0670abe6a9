package timeline_port

//go:generate go run go.uber.org/mock/mockgen -source=timeline_port.go -destination=../../mocks/mock_timeline_port.go -package=mocks

import (
	"context"

	"techpulse/domain"
)

// TimelineRepository upserts events by id and lists them newest date first.
type TimelineRepository interface {
	SaveEvent(ctx context.Context, event *domain.TimelineEvent) error
	ListEvents(ctx context.Context) ([]*domain.TimelineEvent, error)
}
