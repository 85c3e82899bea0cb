package domain

import "time"

// QueryRecord is one locally recorded query submission.
type QueryRecord struct {
	ID      int64
	Scope   string
	Query   string
	Results int
	At      time.Time
}

// ClipRecord is one locally recorded clip resolution.
type ClipRecord struct {
	ID    int64
	Scope string
	Start string
	End   string
	URL   string
	At    time.Time
}
