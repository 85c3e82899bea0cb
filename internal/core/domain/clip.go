package domain

import "fmt"

// ClipScope identifies which index a clip is extracted from: a project in
// multi-project mode, or a bare filename in legacy single-project mode.
// Exactly one field is set.
type ClipScope struct {
	ProjectID string
	Filename  string
}

// Legacy reports whether the scope is a legacy filename scope.
func (s ClipScope) Legacy() bool {
	return s.ProjectID == "" && s.Filename != ""
}

// Empty reports whether no scope is set.
func (s ClipScope) Empty() bool {
	return s.ProjectID == "" && s.Filename == ""
}

// String returns the scope identifier for display and logging.
func (s ClipScope) String() string {
	if s.ProjectID != "" {
		return s.ProjectID
	}
	return s.Filename
}

// ClipKey identifies a derived clip: a scope plus a time range.
// Clips are cache entries keyed by this value, not independent entities.
type ClipKey struct {
	Scope ClipScope
	Start string
	End   string
}

// DownloadFilename returns the deterministic save-as filename for the clip.
func (k ClipKey) DownloadFilename() string {
	return fmt.Sprintf("clip_%s_%s.mp4", k.Start, k.End)
}

// ClipState is the lifecycle state of a clip cache entry.
type ClipState int

const (
	// ClipPending means an extraction request is in flight.
	ClipPending ClipState = iota

	// ClipReady means the clip URL is resolved and cached.
	ClipReady

	// ClipFailed means the last extraction attempt failed. Failed entries
	// are evicted so a later resolve retries instead of replaying the error.
	ClipFailed
)

// String returns the string representation of the clip state.
func (s ClipState) String() string {
	switch s {
	case ClipPending:
		return "pending"
	case ClipReady:
		return "ready"
	case ClipFailed:
		return "failed"
	default:
		return "unknown"
	}
}
