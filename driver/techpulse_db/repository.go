// Package techpulse_db is the PostgreSQL storage driver.
package techpulse_db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"techpulse/utils/logger"
)

var errNoConnection = errors.New("database connection not available")

// PgxIface is the subset of *pgxpool.Pool the driver uses.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type TechPulseDB struct {
	pool PgxIface
}

func NewTechPulseDB(pool PgxIface) *TechPulseDB {
	return &TechPulseDB{pool: pool}
}

// Connect opens a pool for databaseURL, verifies it and creates missing tables.
func Connect(ctx context.Context, databaseURL string, maxConns int32) (*TechPulseDB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		logger.Logger.Error("failed to parse database config", "error", err)
		return nil, err
	}
	if maxConns > 0 {
		config.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Logger.Error("failed to connect to database", "error", err)
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.Error("failed to ping database", "error", err)
		return nil, err
	}

	db := NewTechPulseDB(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("connected to database", "database", config.ConnConfig.Database, "max_conns", config.MaxConns)
	return db, nil
}

func (r *TechPulseDB) Close() error {
	if r != nil && r.pool != nil {
		r.pool.Close()
	}
	return nil
}

func (r *TechPulseDB) Ping(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return errNoConnection
	}
	return r.pool.Ping(ctx)
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		source TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		author TEXT NOT NULL,
		timestamp BIGINT NOT NULL,
		tags JSONB NOT NULL DEFAULT '[]',
		comment_count BIGINT NOT NULL DEFAULT 0,
		is_hot_on_source BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_timestamp ON articles (timestamp DESC, id ASC)`,
	`CREATE TABLE IF NOT EXISTS trends (
		id BIGSERIAL PRIMARY KEY,
		timestamp BIGINT NOT NULL,
		data JSONB NOT NULL,
		metadata JSONB NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trends_timestamp ON trends (timestamp)`,
	`CREATE TABLE IF NOT EXISTS timeline_events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		date DATE NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		importance_score DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		interests JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

func (r *TechPulseDB) EnsureSchema(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return errNoConnection
	}
	for _, stmt := range schemaStatements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
