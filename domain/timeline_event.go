package domain

import (
	"strings"
	"time"
)

const TimelineDateLayout = "2006-01-02"

// TimelineEvent is a curated milestone shown on the chronological timeline.
type TimelineEvent struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Date            time.Time `json:"-"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	ImportanceScore float64   `json:"importance_score"`
}

func NewTimelineEvent(id, title, date, description, category string, importance float64) (*TimelineEvent, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newValidationError("id", "timeline event id cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, newValidationError("title", "timeline event title cannot be empty")
	}
	parsed, err := time.Parse(TimelineDateLayout, date)
	if err != nil {
		return nil, newValidationError("date", "expected YYYY-MM-DD, got %q", date)
	}
	return &TimelineEvent{
		ID:              id,
		Title:           title,
		Date:            parsed,
		Description:     description,
		Category:        category,
		ImportanceScore: importance,
	}, nil
}

// DateString formats Date as YYYY-MM-DD.
func (e *TimelineEvent) DateString() string {
	return e.Date.Format(TimelineDateLayout)
}
