package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driven"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
	"github.com/vquery/vquery-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService drives the submission state machine:
// idle -> submitting -> awaiting_backend -> done, or -> failed -> idle.
// Transitions are strictly sequential per attempt; there is no cancel
// transition because the backend call cannot be aborted once dispatched.
type IngestService struct {
	api driven.IngestAPI

	mu        sync.Mutex
	state     domain.IngestState
	lastInput string
	lastErr   error
}

// NewIngestService creates a new ingestion controller.
func NewIngestService(api driven.IngestAPI) *IngestService {
	return &IngestService{api: api, state: domain.IngestIdle}
}

// Submit validates and dispatches a source, blocking until the backend
// answers with a receipt or an error.
func (s *IngestService) Submit(ctx context.Context, source domain.IngestSource) (domain.IngestReceipt, error) {
	if s.api == nil {
		return domain.IngestReceipt{}, domain.ErrBackendUnavailable
	}
	if err := validateSource(source); err != nil {
		return domain.IngestReceipt{}, err
	}

	s.mu.Lock()
	if s.state != domain.IngestIdle {
		s.mu.Unlock()
		return domain.IngestReceipt{}, domain.ErrIngestInProgress
	}
	s.state = domain.IngestSubmitting
	s.lastInput = source.String()
	s.lastErr = nil
	s.mu.Unlock()

	logger.Section("Ingest Submission")
	logger.Info("Submitting %s", source)

	s.setState(domain.IngestAwaitingBackend)

	var receipt domain.IngestReceipt
	var err error
	if source.URL != "" {
		receipt, err = s.api.ProcessURL(ctx, source.URL)
	} else {
		receipt, err = s.api.UploadFile(ctx, source.FilePath)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.Warn("Ingest failed: %v", err)
		s.lastErr = err
		// Failure passes through failed and returns to idle so the user
		// can immediately retry. The last input stays available.
		s.state = domain.IngestIdle
		return domain.IngestReceipt{}, fmt.Errorf("submit %s: %w", source, err)
	}

	logger.Info("Ingest complete: scope=%s legacy=%t", receipt.Scope(), receipt.Legacy())
	// Done hands off to the caller (navigation) and resets for the next
	// ingestion.
	s.state = domain.IngestIdle
	return receipt, nil
}

// State returns the current lifecycle state.
func (s *IngestService) State() domain.IngestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastInput returns the most recently submitted source text.
func (s *IngestService) LastInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastInput
}

// LastErr returns the error from the most recent failed submission.
func (s *IngestService) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *IngestService) setState(state domain.IngestState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// validateSource rejects malformed sources before any network call.
func validateSource(source domain.IngestSource) error {
	if !source.Valid() {
		return fmt.Errorf("%w: exactly one of URL or file path required", domain.ErrInvalidInput)
	}
	if source.URL != "" && !domain.IsVideoURL(source.URL) {
		return fmt.Errorf("%w: not a recognised video URL: %s", domain.ErrInvalidInput, source.URL)
	}
	if source.FilePath != "" && !domain.IsVideoFile(source.FilePath) {
		return fmt.Errorf("%w: not a recognised video file: %s", domain.ErrInvalidInput, source.FilePath)
	}
	return nil
}
