// Package tui provides an interactive terminal user interface for vquery.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ingest drives video submission.
	Ingest driving.IngestService

	// Project manages the remote project catalog.
	Project driving.ProjectService

	// Query runs semantic queries and derives suggestions.
	Query driving.QueryService

	// Clip resolves segment time ranges to playable clips.
	Clip driving.ClipService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	ingest driving.IngestService,
	project driving.ProjectService,
	query driving.QueryService,
	clip driving.ClipService,
) *Ports {
	return &Ports{
		Ingest:  ingest,
		Project: project,
		Query:   query,
		Clip:    clip,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	if p.Project == nil {
		return ErrMissingProjectService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Clip == nil {
		return ErrMissingClipService
	}
	return nil
}
