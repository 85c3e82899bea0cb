package domain

import "strings"

// Segment is a scored, time-bounded match returned by a semantic query.
// Segments are immutable value objects created fresh on every query
// response. The backend returns them pre-sorted by descending score and
// the client preserves that order.
type Segment struct {
	// ID is unique within a single query response, not globally stable.
	ID string `json:"id"`

	// Start and End bound the matched time range. Timestamps are
	// backend-defined strings and treated as opaque by the client.
	Start string `json:"start_time"`
	End   string `json:"end_time"`

	// Score is the relevance score; higher is better.
	Score float64 `json:"score"`

	// Description is the free-text description of the segment.
	Description string `json:"description"`

	// Keywords are the ordered key elements detected in the segment.
	Keywords []string `json:"keywords"`

	// Thumbnail is an optional thumbnail reference.
	Thumbnail string `json:"thumbnail,omitempty"`

	// ProjectID is the owning project, when the backend runs in
	// multi-project mode.
	ProjectID string `json:"project_id,omitempty"`

	// Filename is the owning source file, for legacy single-project mode.
	Filename string `json:"filename,omitempty"`
}

// Scope returns the clip scope for this segment, preferring the project
// identifier over the legacy filename.
func (s Segment) Scope() ClipScope {
	if s.ProjectID != "" {
		return ClipScope{ProjectID: s.ProjectID}
	}
	return ClipScope{Filename: s.Filename}
}

// ClipKey returns the cache key for this segment's time range.
func (s Segment) ClipKey() ClipKey {
	return ClipKey{Scope: s.Scope(), Start: s.Start, End: s.End}
}

// TimeRange formats the segment bounds for display.
func (s Segment) TimeRange() string {
	return s.Start + " - " + s.End
}

// PrimaryKeyword returns the first non-blank keyword, or a fallback title.
func (s Segment) PrimaryKeyword() string {
	for _, k := range s.Keywords {
		if t := strings.TrimSpace(k); t != "" {
			return t
		}
	}
	return "Clip Segment"
}
