package driving

import (
	"context"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// HistoryService exposes locally recorded queries and clip resolutions.
type HistoryService interface {
	// RecentQueries returns the most recent query records, newest first.
	RecentQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error)

	// RecentClips returns the most recent clip records, newest first.
	RecentClips(ctx context.Context, limit int) ([]domain.ClipRecord, error)
}
