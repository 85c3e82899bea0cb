package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultSuggestionTemplate formats a keyword into a follow-up query.
const DefaultSuggestionTemplate = "Show me %s"

// DefaultSuggestionCount is the default cap on derived suggestions.
const DefaultSuggestionCount = 5

// QuerySession is the transient state of querying one scope: current query
// text, result list, in-flight flag and last error. Responses are applied
// through explicit request tokens so that only the response to the most
// recently issued request ever reaches visible state (last-write-wins).
// The session resets whenever the active scope changes or the index is
// deleted.
type QuerySession struct {
	// Query is the text of the most recently issued query.
	Query string

	// Results is the current result list, in backend order.
	Results []Segment

	// InFlight reports whether a request is outstanding.
	InFlight bool

	// LastErr is the error from the most recent completed request.
	LastErr error

	// token identifies the most recently issued request.
	token string
}

// Begin records a new outstanding request and returns its token. Any
// response carrying an older token will be discarded by Apply.
func (s *QuerySession) Begin(query string) string {
	s.Query = query
	s.InFlight = true
	s.token = uuid.NewString()
	return s.token
}

// Apply installs a response if and only if its token matches the most
// recently issued request. It returns false for stale responses, which
// leave the session untouched. On error the prior result set is cleared:
// stale results are never shown alongside an error.
func (s *QuerySession) Apply(token string, results []Segment, err error) bool {
	if token != s.token {
		return false
	}
	s.InFlight = false
	if err != nil {
		s.Results = nil
		s.LastErr = err
		return true
	}
	s.Results = results
	s.LastErr = nil
	return true
}

// Reset clears the session. Pending responses become stale.
func (s *QuerySession) Reset() {
	s.Query = ""
	s.Results = nil
	s.InFlight = false
	s.LastErr = nil
	s.token = ""
}

// SuggestQueries derives follow-up query suggestions from a result set:
// the distinct keywords across all segments in first-occurrence order,
// lower-cased, formatted with the template and capped at k. An empty
// result set yields no suggestions.
func SuggestQueries(segments []Segment, k int, template string) []string {
	if len(segments) == 0 {
		return nil
	}
	if k <= 0 {
		k = DefaultSuggestionCount
	}
	if template == "" {
		template = DefaultSuggestionTemplate
	}

	seen := make(map[string]bool)
	suggestions := make([]string, 0, k)
	for _, seg := range segments {
		for _, kw := range seg.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			suggestions = append(suggestions, fmt.Sprintf(template, kw))
			if len(suggestions) >= k {
				return suggestions
			}
		}
	}
	return suggestions
}
