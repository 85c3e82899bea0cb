package services

import (
	"context"
	"fmt"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driven"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes the local query and clip history.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// RecentQueries returns the most recent query records, newest first.
func (s *HistoryService) RecentQueries(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("history: %w", domain.ErrBackendUnavailable)
	}
	return s.store.RecentQueries(ctx, limit)
}

// RecentClips returns the most recent clip records, newest first.
func (s *HistoryService) RecentClips(ctx context.Context, limit int) ([]domain.ClipRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("history: %w", domain.ErrBackendUnavailable)
	}
	return s.store.RecentClips(ctx, limit)
}
