package techpulse_db

import (
	"context"
	"fmt"
	"time"

	"techpulse/domain"
)

const upsertTimelineEventQuery = `
	INSERT INTO timeline_events (id, title, date, description, category, importance_score)
	VALUES ($1, $2, $3::date, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE
	SET title = EXCLUDED.title,
	    date = EXCLUDED.date,
	    description = EXCLUDED.description,
	    category = EXCLUDED.category,
	    importance_score = EXCLUDED.importance_score
`

const listTimelineEventsQuery = `
	SELECT id, title, to_char(date, 'YYYY-MM-DD'), description, category, importance_score
	FROM timeline_events
	ORDER BY date DESC, id ASC
`

func (r *TechPulseDB) SaveTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error {
	if r == nil || r.pool == nil {
		return errNoConnection
	}
	_, err := r.pool.Exec(ctx, upsertTimelineEventQuery,
		event.ID, event.Title, event.DateString(), event.Description, event.Category, event.ImportanceScore)
	if err != nil {
		return fmt.Errorf("failed to upsert timeline event: %w", err)
	}
	return nil
}

func (r *TechPulseDB) ListTimelineEvents(ctx context.Context) ([]*domain.TimelineEvent, error) {
	if r == nil || r.pool == nil {
		return nil, errNoConnection
	}

	rows, err := r.pool.Query(ctx, listTimelineEventsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}
	defer rows.Close()

	events := []*domain.TimelineEvent{}
	for rows.Next() {
		var (
			e    domain.TimelineEvent
			date string
		)
		if err := rows.Scan(&e.ID, &e.Title, &date, &e.Description, &e.Category, &e.ImportanceScore); err != nil {
			return nil, fmt.Errorf("failed to scan timeline event: %w", err)
		}
		if e.Date, err = time.Parse(domain.TimelineDateLayout, date); err != nil {
			return nil, fmt.Errorf("decode date for %s: %w", e.ID, err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeline events: %w", err)
	}
	return events, nil
}
