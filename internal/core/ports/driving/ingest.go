package driving

import (
	"context"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// IngestService drives a video from submitted to queryable.
type IngestService interface {
	// Submit validates and dispatches a source, blocking until the backend
	// answers. Only one submission may be in flight at a time; concurrent
	// calls fail with domain.ErrIngestInProgress. On failure the controller
	// returns to idle and LastInput is preserved for retry.
	Submit(ctx context.Context, source domain.IngestSource) (domain.IngestReceipt, error)

	// State returns the current lifecycle state.
	State() domain.IngestState

	// LastInput returns the most recently submitted source text.
	LastInput() string

	// LastErr returns the error from the most recent failed submission.
	LastErr() error
}
