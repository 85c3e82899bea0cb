package driving

import (
	"context"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// QueryService runs semantic queries and derives follow-up suggestions.
type QueryService interface {
	// Search queries the scope. Blank or whitespace-only text is a no-op:
	// no request is issued and an empty result set is returned. Results
	// are in backend order (descending score) and never re-sorted.
	Search(ctx context.Context, scope domain.ClipScope, query string) ([]domain.Segment, error)

	// Suggestions derives follow-up queries from a result set.
	Suggestions(segments []domain.Segment) []string

	// ClearIndex discards the legacy single-project index.
	ClearIndex(ctx context.Context) error
}
