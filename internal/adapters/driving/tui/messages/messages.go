// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/vquery/vquery-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLibrary is the project library and ingestion input view.
	ViewLibrary ViewType = iota
	// ViewIngest is the ingestion progress view.
	ViewIngest
	// ViewDetail is the per-project query and results view.
	ViewDetail
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLibrary:
		return "library"
	case ViewIngest:
		return "ingest"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ProjectsLoaded carries the project catalog from the backend.
type ProjectsLoaded struct {
	Projects []domain.Project
	Err      error
}

// ProjectSelected signals a project was chosen from the library.
type ProjectSelected struct {
	Project domain.Project
}

// ProjectLoaded carries one fetched project for the detail view.
type ProjectLoaded struct {
	Project *domain.Project
	Err     error
}

// ProjectDeleted signals a project deletion finished.
type ProjectDeleted struct {
	ID  string
	Err error
}

// SubmitRequested asks the app to start ingesting a source.
type SubmitRequested struct {
	Source domain.IngestSource
}

// IngestFinished carries the outcome of a blocking submission.
type IngestFinished struct {
	Receipt domain.IngestReceipt
	Err     error
}

// PhaseTicked advances the cosmetic ingestion progress display.
type PhaseTicked struct{}

// QueryCompleted carries query results back to the model. Token ties the
// response to the request that issued it so stale responses can be
// discarded.
type QueryCompleted struct {
	Token    string
	Segments []domain.Segment
	Err      error
}

// ClipResolved carries a resolved clip URL for the player.
type ClipResolved struct {
	Key domain.ClipKey
	URL string
	Err error
}

// ClipDownloaded signals a clip download finished.
type ClipDownloaded struct {
	Key  domain.ClipKey
	Path string
	Err  error
}

// RetryElapsed fires when a clip resolution has been pending long enough
// to offer a manual retry.
type RetryElapsed struct {
	Key domain.ClipKey
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
