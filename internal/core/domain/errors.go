package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// Input rejected with this error never reaches the network layer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIngestInProgress indicates an ingestion is already running.
	// A new submission cannot start while one is awaiting the backend.
	ErrIngestInProgress = errors.New("ingestion in progress")

	// ErrNoScope indicates an operation requires a project or legacy
	// filename scope and none was provided.
	ErrNoScope = errors.New("no project or filename scope")

	// ErrBackendUnavailable indicates the backend client is not configured.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
