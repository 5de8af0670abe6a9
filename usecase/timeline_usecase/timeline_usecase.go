package timeline_usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"techpulse/domain"
	"techpulse/port/timeline_port"
	"techpulse/utils/logger"
)

type TimelineEventInput struct {
	ID              string
	Title           string
	Date            string
	Description     string
	Category        string
	ImportanceScore float64
}

type TimelineUsecase struct {
	repo timeline_port.TimelineRepository
}

func NewTimelineUsecase(repo timeline_port.TimelineRepository) *TimelineUsecase {
	return &TimelineUsecase{repo: repo}
}

// Register validates and upserts an event. A missing id is generated.
func (u *TimelineUsecase) Register(ctx context.Context, input TimelineEventInput) (*domain.TimelineEvent, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	event, err := domain.NewTimelineEvent(id, input.Title, input.Date, input.Description, input.Category, input.ImportanceScore)
	if err != nil {
		logger.Logger.WarnContext(ctx, "rejected timeline event", "id", id, "error", err)
		return nil, err
	}

	if err := u.repo.SaveEvent(ctx, event); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to save timeline event", "id", id, "error", err)
		return nil, fmt.Errorf("save timeline event: %w", err)
	}

	logger.Logger.InfoContext(ctx, "timeline event saved", "id", id, "date", event.DateString())
	return event, nil
}

// List returns every event, newest date first.
func (u *TimelineUsecase) List(ctx context.Context) ([]*domain.TimelineEvent, error) {
	events, err := u.repo.ListEvents(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to list timeline events", "error", err)
		return nil, fmt.Errorf("list timeline events: %w", err)
	}
	return events, nil
}
