package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS query_history (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	scope   TEXT NOT NULL,
	query   TEXT NOT NULL,
	results INTEGER NOT NULL,
	at      TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS clip_history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	scope      TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	url        TEXT NOT NULL,
	at         TIMESTAMP NOT NULL
);
`

// HistoryStore records issued queries and resolved clips locally.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore creates a SQLite history store at path. If path is
// empty, defaults to ~/.vquery/data/history.db.
func NewHistoryStore(path string) (*HistoryStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".vquery", "data", "history.db")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &HistoryStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// RecordQuery appends one query record.
func (s *HistoryStore) RecordQuery(ctx context.Context, rec domain.QueryRecord) error {
	at := rec.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO query_history (scope, query, results, at) VALUES (?, ?, ?, ?)",
		rec.Scope, rec.Query, rec.Results, at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording query: %w", err)
	}
	return nil
}

// RecentQueries returns the most recent query records, newest first.
func (s *HistoryStore) RecentQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, scope, query, results, at FROM query_history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}
	defer rows.Close()

	var records []domain.QueryRecord
	for rows.Next() {
		var rec domain.QueryRecord
		if err := rows.Scan(&rec.ID, &rec.Scope, &rec.Query, &rec.Results, &rec.At); err != nil {
			return nil, fmt.Errorf("scanning query record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// RecordClip appends one clip record.
func (s *HistoryStore) RecordClip(ctx context.Context, rec domain.ClipRecord) error {
	at := rec.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO clip_history (scope, start_time, end_time, url, at) VALUES (?, ?, ?, ?, ?)",
		rec.Scope, rec.Start, rec.End, rec.URL, at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording clip: %w", err)
	}
	return nil
}

// RecentClips returns the most recent clip records, newest first.
func (s *HistoryStore) RecentClips(ctx context.Context, limit int) ([]domain.ClipRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, scope, start_time, end_time, url, at FROM clip_history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing clips: %w", err)
	}
	defer rows.Close()

	var records []domain.ClipRecord
	for rows.Next() {
		var rec domain.ClipRecord
		if err := rows.Scan(&rec.ID, &rec.Scope, &rec.Start, &rec.End, &rec.URL, &rec.At); err != nil {
			return nil, fmt.Errorf("scanning clip record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
