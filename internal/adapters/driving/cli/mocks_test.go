package cli

import (
	"context"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// mockIngestService returns a fixed receipt.
type mockIngestService struct {
	receipt domain.IngestReceipt
	err     error
	last    domain.IngestSource
}

func (m *mockIngestService) Submit(_ context.Context, source domain.IngestSource) (domain.IngestReceipt, error) {
	m.last = source
	return m.receipt, m.err
}

func (m *mockIngestService) State() domain.IngestState { return domain.IngestIdle }
func (m *mockIngestService) LastInput() string         { return m.last.String() }
func (m *mockIngestService) LastErr() error            { return m.err }

// mockProjectService serves a fixed catalog.
type mockProjectService struct {
	projects []domain.Project
	getErr   error
	deleted  []string
}

func (m *mockProjectService) List(_ context.Context) ([]domain.Project, error) {
	return m.projects, nil
}

func (m *mockProjectService) Get(_ context.Context, id string) (*domain.Project, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.projects {
		if m.projects[i].ID == id {
			return &m.projects[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockProjectService) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// mockQueryService returns fixed segments.
type mockQueryService struct {
	segments  []domain.Segment
	err       error
	lastScope domain.ClipScope
	cleared   bool
}

func (m *mockQueryService) Search(_ context.Context, scope domain.ClipScope, query string) ([]domain.Segment, error) {
	m.lastScope = scope
	if m.err != nil {
		return nil, m.err
	}
	return m.segments, nil
}

func (m *mockQueryService) Suggestions(segments []domain.Segment) []string {
	return domain.SuggestQueries(segments, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)
}

func (m *mockQueryService) ClearIndex(_ context.Context) error {
	m.cleared = true
	return nil
}

// mockClipService resolves every key to one URL.
type mockClipService struct {
	url  string
	path string
	err  error
}

func (m *mockClipService) Resolve(_ context.Context, _ domain.ClipKey) (string, error) {
	return m.url, m.err
}

func (m *mockClipService) Download(_ context.Context, _ domain.ClipKey) (string, error) {
	return m.path, m.err
}

func (m *mockClipService) Peek(_ domain.ClipKey) (domain.ClipState, bool) {
	return domain.ClipReady, m.url != ""
}

func (m *mockClipService) InvalidateScope(_ domain.ClipScope) {}

// mockHistoryService serves fixed records.
type mockHistoryService struct {
	queries []domain.QueryRecord
	clips   []domain.ClipRecord
}

func (m *mockHistoryService) RecentQueries(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	if limit > len(m.queries) {
		limit = len(m.queries)
	}
	return m.queries[:limit], nil
}

func (m *mockHistoryService) RecentClips(_ context.Context, limit int) ([]domain.ClipRecord, error) {
	if limit > len(m.clips) {
		limit = len(m.clips)
	}
	return m.clips[:limit], nil
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldIngest := ingestService
	oldProject := projectService
	oldQuery := queryService
	oldClip := clipService
	oldHistory := historyService

	Configure(Services{
		Ingest: &mockIngestService{
			receipt: domain.IngestReceipt{ProjectID: "proj-1"},
		},
		Project: &mockProjectService{
			projects: []domain.Project{
				{ID: "proj-1", Name: "Surf Session", Status: domain.ProjectReady, CreatedAt: "2026-08-01"},
			},
		},
		Query: &mockQueryService{
			segments: []domain.Segment{
				{
					ID:          "seg-0",
					Start:       "00:00:05",
					End:         "00:00:12",
					Score:       0.91,
					Description: "Large waves crash on the rocks.",
					Keywords:    []string{"Waves", "Ocean"},
					ProjectID:   "proj-1",
				},
			},
		},
		Clip: &mockClipService{
			url:  "http://127.0.0.1:5000/clips/c.mp4",
			path: "/tmp/clip_00:00:05_00:00:12.mp4",
		},
		History: &mockHistoryService{},
	})

	return func() {
		Configure(Services{
			Ingest:  oldIngest,
			Project: oldProject,
			Query:   oldQuery,
			Clip:    oldClip,
			History: oldHistory,
		})
	}
}
