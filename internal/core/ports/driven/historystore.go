package driven

import (
	"context"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// HistoryStore records queries and clip resolutions locally.
// Backed by SQLite.
type HistoryStore interface {
	// RecordQuery appends a query record.
	RecordQuery(ctx context.Context, rec domain.QueryRecord) error

	// RecentQueries returns the most recent query records, newest first.
	RecentQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error)

	// RecordClip appends a clip resolution record.
	RecordClip(ctx context.Context, rec domain.ClipRecord) error

	// RecentClips returns the most recent clip records, newest first.
	RecentClips(ctx context.Context, limit int) ([]domain.ClipRecord, error)

	// Close releases the underlying database.
	Close() error
}
