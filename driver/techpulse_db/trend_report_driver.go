package techpulse_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"techpulse/domain"
)

const insertTrendReportQuery = `INSERT INTO trends (timestamp, data, metadata) VALUES ($1, $2::jsonb, $3::jsonb)`

// Ties on timestamp go to the row inserted last.
const findLatestTrendReportQuery = `SELECT timestamp, data::text, metadata::text FROM trends ORDER BY timestamp DESC, id DESC LIMIT 1`

func (r *TechPulseDB) SaveTrendReport(ctx context.Context, report *domain.TrendReport) error {
	if r == nil || r.pool == nil {
		return errNoConnection
	}

	data, err := json.Marshal(report.Trends)
	if err != nil {
		return fmt.Errorf("marshal trends: %w", err)
	}
	metadata, err := json.Marshal(report.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if _, err := r.pool.Exec(ctx, insertTrendReportQuery, report.Timestamp, string(data), string(metadata)); err != nil {
		return fmt.Errorf("failed to insert trend report: %w", err)
	}
	return nil
}

func (r *TechPulseDB) FindLatestTrendReport(ctx context.Context) (*domain.TrendReport, error) {
	if r == nil || r.pool == nil {
		return nil, errNoConnection
	}

	var (
		report         domain.TrendReport
		data, metadata string
	)
	err := r.pool.QueryRow(ctx, findLatestTrendReportQuery).Scan(&report.Timestamp, &data, &metadata)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest trend report: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &report.Trends); err != nil {
		return nil, fmt.Errorf("decode trends: %w", err)
	}
	if err := json.Unmarshal([]byte(metadata), &report.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &report, nil
}
