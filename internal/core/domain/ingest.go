package domain

// IngestState is the lifecycle state of one ingestion attempt.
type IngestState int

const (
	// IngestIdle means no ingestion is in progress.
	IngestIdle IngestState = iota

	// IngestSubmitting means a validated source is being dispatched.
	IngestSubmitting

	// IngestAwaitingBackend means the request is in flight. The backend
	// call is synchronous from the client's view and cannot be aborted.
	IngestAwaitingBackend

	// IngestDone means the backend answered with a project identity.
	IngestDone

	// IngestFailed means the backend or transport failed. The controller
	// returns to idle, preserving the last input for retry.
	IngestFailed
)

// String returns the string representation of the ingest state.
func (s IngestState) String() string {
	switch s {
	case IngestIdle:
		return "idle"
	case IngestSubmitting:
		return "submitting"
	case IngestAwaitingBackend:
		return "awaiting_backend"
	case IngestDone:
		return "done"
	case IngestFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IngestPhase is one step of the cosmetic progress sequence shown while a
// submission is awaiting the backend. Phases advance on a fixed wall-clock
// interval independent of real backend progress, which is never exposed.
type IngestPhase int

const (
	PhaseRetrieving IngestPhase = iota
	PhaseOptimizing
	PhaseAnalyzing
	PhaseIndexing
)

// Next advances to the following phase. The sequence is monotonic and
// freezes on the final phase; it never wraps or goes backward.
func (p IngestPhase) Next() IngestPhase {
	if p >= PhaseIndexing {
		return PhaseIndexing
	}
	return p + 1
}

// Label returns the display label for the phase.
func (p IngestPhase) Label() string {
	switch p {
	case PhaseRetrieving:
		return "Retrieving source"
	case PhaseOptimizing:
		return "Optimizing proxy"
	case PhaseAnalyzing:
		return "AI Analysis"
	case PhaseIndexing:
		return "Vector Indexing"
	default:
		return "Working"
	}
}

// Activity returns the short activity hint shown next to the active phase.
func (p IngestPhase) Activity() string {
	switch p {
	case PhaseRetrieving:
		return "Fetching..."
	case PhaseOptimizing:
		return "Compressing..."
	case PhaseAnalyzing:
		return "Thinking..."
	case PhaseIndexing:
		return "Finalizing..."
	default:
		return "..."
	}
}

// Phases returns the full cosmetic progress sequence in order.
func Phases() []IngestPhase {
	return []IngestPhase{PhaseRetrieving, PhaseOptimizing, PhaseAnalyzing, PhaseIndexing}
}

// IngestSource is a validated video source: a remote URL or a local file.
// Exactly one field is set.
type IngestSource struct {
	URL      string
	FilePath string
}

// Valid reports whether exactly one source field is set.
func (s IngestSource) Valid() bool {
	return (s.URL == "") != (s.FilePath == "")
}

// String returns the source for display and logging.
func (s IngestSource) String() string {
	if s.URL != "" {
		return s.URL
	}
	return s.FilePath
}

// IngestReceipt is the backend's answer to a submission, resolved once at
// the API client boundary. Multi-project backends answer with a project
// identity; legacy single-project backends answer with a message and the
// indexed filename.
type IngestReceipt struct {
	ProjectID string
	Message   string
	Filename  string
}

// Legacy reports whether the receipt came from a legacy backend.
func (r IngestReceipt) Legacy() bool {
	return r.ProjectID == "" && r.Filename != ""
}

// Scope returns the queryable scope the submission produced.
func (r IngestReceipt) Scope() ClipScope {
	if r.ProjectID != "" {
		return ClipScope{ProjectID: r.ProjectID}
	}
	return ClipScope{Filename: r.Filename}
}
