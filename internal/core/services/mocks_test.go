package services

import (
	"context"
	"io"
	"sync"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// stubBackend is a hand-rolled test double for the driven backend ports.
// Call counts are guarded so coalescing tests can hammer it concurrently.
type stubBackend struct {
	mu sync.Mutex

	processCalls int
	uploadCalls  int
	listCalls    int
	deleteCalls  int
	queryCalls   int
	clipCalls    int
	fetchCalls   int
	indexDeletes int

	receipt  domain.IngestReceipt
	projects []domain.Project
	project  *domain.Project
	segments []domain.Segment
	clipURL  string
	clipBody string

	processErr error
	uploadErr  error
	listErr    error
	getErr     error
	deleteErr  error
	queryErr   error
	clipErr    error
	fetchErr   error

	// block, when set, is closed by the test to release in-flight
	// CreateClip calls.
	block chan struct{}

	lastQuery string
	lastScope domain.ClipScope
	lastKey   domain.ClipKey
}

func (b *stubBackend) ProcessURL(_ context.Context, _ string) (domain.IngestReceipt, error) {
	b.mu.Lock()
	b.processCalls++
	b.mu.Unlock()
	return b.receipt, b.processErr
}

func (b *stubBackend) UploadFile(_ context.Context, _ string) (domain.IngestReceipt, error) {
	b.mu.Lock()
	b.uploadCalls++
	b.mu.Unlock()
	return b.receipt, b.uploadErr
}

func (b *stubBackend) ListProjects(_ context.Context) ([]domain.Project, error) {
	b.mu.Lock()
	b.listCalls++
	b.mu.Unlock()
	return b.projects, b.listErr
}

func (b *stubBackend) GetProject(_ context.Context, _ string) (*domain.Project, error) {
	return b.project, b.getErr
}

func (b *stubBackend) DeleteProject(_ context.Context, _ string) error {
	b.mu.Lock()
	b.deleteCalls++
	b.mu.Unlock()
	return b.deleteErr
}

func (b *stubBackend) Query(_ context.Context, scope domain.ClipScope, query string) ([]domain.Segment, error) {
	b.mu.Lock()
	b.queryCalls++
	b.lastScope = scope
	b.lastQuery = query
	b.mu.Unlock()
	return b.segments, b.queryErr
}

func (b *stubBackend) DeleteIndex(_ context.Context) error {
	b.mu.Lock()
	b.indexDeletes++
	b.mu.Unlock()
	return nil
}

func (b *stubBackend) CreateClip(_ context.Context, key domain.ClipKey) (string, error) {
	b.mu.Lock()
	b.clipCalls++
	b.lastKey = key
	block := b.block
	b.mu.Unlock()
	if block != nil {
		<-block
	}
	return b.clipURL, b.clipErr
}

func (b *stubBackend) FetchClip(_ context.Context, _ string, w io.Writer) error {
	b.mu.Lock()
	b.fetchCalls++
	b.mu.Unlock()
	if b.fetchErr != nil {
		return b.fetchErr
	}
	_, err := io.WriteString(w, b.clipBody)
	return err
}

func (b *stubBackend) ClipCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clipCalls
}

func (b *stubBackend) QueryCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queryCalls
}

// stubHistory records history calls in memory.
type stubHistory struct {
	mu      sync.Mutex
	queries []domain.QueryRecord
	clips   []domain.ClipRecord
}

func (h *stubHistory) RecordQuery(_ context.Context, rec domain.QueryRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queries = append(h.queries, rec)
	return nil
}

func (h *stubHistory) RecentQueries(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if limit > len(h.queries) {
		limit = len(h.queries)
	}
	return h.queries[:limit], nil
}

func (h *stubHistory) RecordClip(_ context.Context, rec domain.ClipRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clips = append(h.clips, rec)
	return nil
}

func (h *stubHistory) RecentClips(_ context.Context, limit int) ([]domain.ClipRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if limit > len(h.clips) {
		limit = len(h.clips)
	}
	return h.clips[:limit], nil
}

func (h *stubHistory) Close() error { return nil }
