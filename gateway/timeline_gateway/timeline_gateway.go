package timeline_gateway

import (
	"context"

	"techpulse/domain"
	"techpulse/port/timeline_port"
	"techpulse/utils/errors"
)

var _ timeline_port.TimelineRepository = (*TimelineGateway)(nil)

type TimelineStore interface {
	SaveTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error
	ListTimelineEvents(ctx context.Context) ([]*domain.TimelineEvent, error)
}

type TimelineGateway struct {
	store TimelineStore
}

func NewTimelineGateway(store TimelineStore) *TimelineGateway {
	return &TimelineGateway{store: store}
}

func (g *TimelineGateway) SaveEvent(ctx context.Context, event *domain.TimelineEvent) error {
	if err := g.store.SaveTimelineEvent(ctx, event); err != nil {
		return errors.NewDatabaseContextError("failed to save timeline event", "gateway", "TimelineGateway", "SaveEvent",
			domain.NewRepositoryError("save timeline event", err),
			map[string]any{"event_id": event.ID})
	}
	return nil
}

func (g *TimelineGateway) ListEvents(ctx context.Context) ([]*domain.TimelineEvent, error) {
	events, err := g.store.ListTimelineEvents(ctx)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to list timeline events", "gateway", "TimelineGateway", "ListEvents",
			domain.NewRepositoryError("list timeline events", err), nil)
	}
	return events, nil
}
