package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driven"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
	"github.com/vquery/vquery-cli/internal/logger"
)

// Ensure ClipService implements the interface.
var _ driving.ClipService = (*ClipService)(nil)

// clipEntry is one cache slot. The done channel closes when resolution
// finishes; url and err are written exactly once before the close, so
// waiters may read them after done is closed without further locking.
type clipEntry struct {
	done chan struct{}
	url  string
	err  error
}

// ClipService memoises clip extraction per (scope, start, end) key.
// Resolutions for different keys run independently; resolutions for the
// same key coalesce into one backend request. Ready entries live for the
// session unless the owning scope is invalidated; failed entries are
// evicted so the next attempt retries.
type ClipService struct {
	api         driven.ClipAPI
	history     driven.HistoryStore
	limiter     *rate.Limiter
	downloadDir string

	mu      sync.Mutex
	entries map[domain.ClipKey]*clipEntry
}

// NewClipService creates a new clip resolver. requestsPerSecond bounds the
// rate of extraction requests sent to the backend; zero disables limiting.
// The history store is optional.
func NewClipService(api driven.ClipAPI, history driven.HistoryStore, downloadDir string, requestsPerSecond float64) *ClipService {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	if downloadDir == "" {
		downloadDir = "."
	}
	return &ClipService{
		api:         api,
		history:     history,
		limiter:     limiter,
		downloadDir: downloadDir,
		entries:     make(map[domain.ClipKey]*clipEntry),
	}
}

// Resolve returns the absolute clip URL for the key.
func (s *ClipService) Resolve(ctx context.Context, key domain.ClipKey) (string, error) {
	if s.api == nil {
		return "", domain.ErrBackendUnavailable
	}
	if key.Scope.Empty() {
		return "", domain.ErrNoScope
	}

	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		s.mu.Unlock()
		// Ready or in flight: share the existing resolution.
		select {
		case <-e.done:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		return e.url, e.err
	}

	e := &clipEntry{done: make(chan struct{})}
	s.entries[key] = e
	s.mu.Unlock()

	e.url, e.err = s.extract(ctx, key)
	if e.err != nil {
		// Evict so a later resolve retries instead of replaying the
		// failure. Current waiters still observe it through the entry.
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && cur == e {
			delete(s.entries, key)
		}
		s.mu.Unlock()
	}
	close(e.done)

	return e.url, e.err
}

// extract performs the backend extraction for one key.
func (s *ClipService) extract(ctx context.Context, key domain.ClipKey) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("clip rate limit: %w", err)
		}
	}

	logger.Debug("Extracting clip %s [%s - %s]", key.Scope, key.Start, key.End)
	url, err := s.api.CreateClip(ctx, key)
	if err != nil {
		return "", fmt.Errorf("create clip: %w", err)
	}

	s.record(ctx, key, url)
	return url, nil
}

// Download resolves the key and saves the clip body locally.
func (s *ClipService) Download(ctx context.Context, key domain.ClipKey) (string, error) {
	url, err := s.Resolve(ctx, key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("download dir: %w", err)
	}
	path := filepath.Join(s.downloadDir, key.DownloadFilename())

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.api.FetchClip(ctx, url, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("download clip: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	logger.Info("Downloaded clip to %s", path)
	return path, nil
}

// Peek reports the cache state for a key without side effects.
func (s *ClipService) Peek(key domain.ClipKey) (domain.ClipState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return domain.ClipFailed, false
	}
	select {
	case <-e.done:
		return domain.ClipReady, true
	default:
		return domain.ClipPending, true
	}
}

// InvalidateScope evicts all entries belonging to a scope.
func (s *ClipService) InvalidateScope(scope domain.ClipScope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if key.Scope == scope {
			delete(s.entries, key)
		}
	}
	logger.Debug("Invalidated clip cache for scope %s", scope)
}

// record writes the resolution to local history. Best-effort.
func (s *ClipService) record(ctx context.Context, key domain.ClipKey, url string) {
	if s.history == nil {
		return
	}
	rec := domain.ClipRecord{
		Scope: key.Scope.String(),
		Start: key.Start,
		End:   key.End,
		URL:   url,
		At:    time.Now(),
	}
	if err := s.history.RecordClip(ctx, rec); err != nil {
		logger.Warn("Recording clip history: %v", err)
	}
}
