package driven

import (
	"context"
	"io"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// IngestAPI submits videos to the backend for download, analysis and
// indexing. Both calls are long-running: the backend answers only once the
// whole pipeline has finished, and offers no progress callback.
type IngestAPI interface {
	// ProcessURL submits a remote video URL for indexing.
	ProcessURL(ctx context.Context, url string) (domain.IngestReceipt, error)

	// UploadFile uploads a local video file for indexing.
	UploadFile(ctx context.Context, path string) (domain.IngestReceipt, error)
}

// ProjectAPI is the remote project catalog. Every call is a fresh network
// round-trip; nothing is cached at this boundary.
type ProjectAPI interface {
	// ListProjects returns all projects in backend order.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// GetProject retrieves one project.
	// Returns domain.ErrNotFound for unknown ids.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// DeleteProject removes a project and its index.
	DeleteProject(ctx context.Context, id string) error
}

// QueryAPI runs semantic queries against an indexed video.
type QueryAPI interface {
	// Query returns segments matching the text, pre-sorted by descending
	// score. The order is significant and must be preserved.
	Query(ctx context.Context, scope domain.ClipScope, query string) ([]domain.Segment, error)

	// DeleteIndex discards the search index (legacy single-project mode).
	DeleteIndex(ctx context.Context) error
}

// ClipAPI materialises sub-clips of indexed videos on demand.
type ClipAPI interface {
	// CreateClip asks the backend to extract the keyed time range and
	// returns the absolute URL of the resulting media resource.
	CreateClip(ctx context.Context, key domain.ClipKey) (string, error)

	// FetchClip streams the resolved clip body to w.
	FetchClip(ctx context.Context, url string, w io.Writer) error
}
