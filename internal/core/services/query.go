package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driven"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
	"github.com/vquery/vquery-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService runs semantic queries against the backend and derives
// follow-up suggestions from result keywords.
type QueryService struct {
	api      driven.QueryAPI
	history  driven.HistoryStore
	count    int
	template string
}

// NewQueryService creates a new query service. The history store is
// optional; when set, every issued query is recorded locally.
func NewQueryService(api driven.QueryAPI, history driven.HistoryStore, count int, template string) *QueryService {
	return &QueryService{api: api, history: history, count: count, template: template}
}

// Search queries the scope. Blank input never reaches the network.
func (s *QueryService) Search(ctx context.Context, scope domain.ClipScope, query string) ([]domain.Segment, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Blank query, no request issued")
		return []domain.Segment{}, nil
	}
	if s.api == nil {
		return nil, domain.ErrBackendUnavailable
	}

	logger.Section("Query Execution")
	logger.Debug("Scope: %s, Query: %q", scope, query)

	segments, err := s.api.Query(ctx, scope, query)
	if err != nil {
		logger.Warn("Query failed: %v", err)
		return nil, fmt.Errorf("query: %w", err)
	}
	logger.Info("Query returned %d segments", len(segments))

	s.record(ctx, scope, query, len(segments))
	return segments, nil
}

// Suggestions derives follow-up queries from a result set.
func (s *QueryService) Suggestions(segments []domain.Segment) []string {
	return domain.SuggestQueries(segments, s.count, s.template)
}

// ClearIndex discards the legacy single-project index.
func (s *QueryService) ClearIndex(ctx context.Context) error {
	if s.api == nil {
		return domain.ErrBackendUnavailable
	}
	if err := s.api.DeleteIndex(ctx); err != nil {
		return fmt.Errorf("delete index: %w", err)
	}
	logger.Info("Index deleted")
	return nil
}

// record writes the query to local history. Best-effort: failures are
// logged, never surfaced.
func (s *QueryService) record(ctx context.Context, scope domain.ClipScope, query string, results int) {
	if s.history == nil {
		return
	}
	rec := domain.QueryRecord{
		Scope:   scope.String(),
		Query:   query,
		Results: results,
		At:      time.Now(),
	}
	if err := s.history.RecordQuery(ctx, rec); err != nil {
		logger.Warn("Recording query history: %v", err)
	}
}
