// Package sqlite_db stores techpulse data in an embedded SQLite database.
package sqlite_db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"techpulse/utils/logger"
)

type SQLiteDB struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One connection serializes writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}

	s := &SQLiteDB{db: db}
	if err := s.initTables(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	logger.Logger.Info("sqlite database ready", "path", path)
	return s, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteDB) initTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			source TEXT NOT NULL,
			score REAL NOT NULL,
			author TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			tags TEXT NOT NULL, -- JSON array
			comment_count INTEGER NOT NULL,
			is_hot_on_source INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_timestamp ON articles (timestamp DESC, id ASC)`,
		`CREATE TABLE IF NOT EXISTS trends (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			data TEXT NOT NULL, -- JSON array of trends
			metadata TEXT NOT NULL -- JSON object
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trends_timestamp ON trends (timestamp)`,
		`CREATE TABLE IF NOT EXISTS timeline_events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			date TEXT NOT NULL, -- YYYY-MM-DD
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			importance_score REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_profiles (
			id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			interests TEXT NOT NULL, -- JSON array
			created_at TEXT NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
