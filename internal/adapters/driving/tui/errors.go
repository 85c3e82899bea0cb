package tui

import "errors"

// ErrMissingIngestService is returned when the ingest service is not provided.
var ErrMissingIngestService = errors.New("tui: ingest service is required")

// ErrMissingProjectService is returned when the project service is not provided.
var ErrMissingProjectService = errors.New("tui: project service is required")

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// ErrMissingClipService is returned when the clip service is not provided.
var ErrMissingClipService = errors.New("tui: clip service is required")
