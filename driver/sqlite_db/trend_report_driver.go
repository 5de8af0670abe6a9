package sqlite_db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"techpulse/domain"
)

func (s *SQLiteDB) SaveTrendReport(ctx context.Context, report *domain.TrendReport) error {
	data, err := json.Marshal(report.Trends)
	if err != nil {
		return fmt.Errorf("marshal trends: %w", err)
	}
	metadata, err := json.Marshal(report.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO trends (timestamp, data, metadata) VALUES (?, ?, ?)`,
		report.Timestamp, string(data), string(metadata))
	return err
}

// FindLatestTrendReport orders by timestamp, then by insertion id so the
// report saved last wins a tie.
func (s *SQLiteDB) FindLatestTrendReport(ctx context.Context) (*domain.TrendReport, error) {
	var (
		report         domain.TrendReport
		data, metadata string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT timestamp, data, metadata FROM trends ORDER BY timestamp DESC, id DESC LIMIT 1`,
	).Scan(&report.Timestamp, &data, &metadata)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(data), &report.Trends); err != nil {
		return nil, fmt.Errorf("decode trends: %w", err)
	}
	if err := json.Unmarshal([]byte(metadata), &report.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &report, nil
}
