package sqlite_db

import (
	"context"
	"fmt"
	"time"

	"techpulse/domain"
)

func (s *SQLiteDB) SaveTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO timeline_events (id, title, date, description, category, importance_score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.Title, event.DateString(), event.Description, event.Category, event.ImportanceScore)
	return err
}

func (s *SQLiteDB) ListTimelineEvents(ctx context.Context) ([]*domain.TimelineEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, date, description, category, importance_score
		 FROM timeline_events ORDER BY date DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.TimelineEvent{}
	for rows.Next() {
		var (
			e    domain.TimelineEvent
			date string
		)
		if err := rows.Scan(&e.ID, &e.Title, &date, &e.Description, &e.Category, &e.ImportanceScore); err != nil {
			return nil, err
		}
		if e.Date, err = time.Parse(domain.TimelineDateLayout, date); err != nil {
			return nil, fmt.Errorf("decode date for %s: %w", e.ID, err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
