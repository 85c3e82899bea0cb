package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// MockIngestService implements driving.IngestService for testing.
type MockIngestService struct {
	SubmitFunc    func(ctx context.Context, source domain.IngestSource) (domain.IngestReceipt, error)
	StateFunc     func() domain.IngestState
	LastInputFunc func() string
	LastErrFunc   func() error
}

func (m *MockIngestService) Submit(
	ctx context.Context, source domain.IngestSource,
) (domain.IngestReceipt, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, source)
	}
	return domain.IngestReceipt{}, nil
}

func (m *MockIngestService) State() domain.IngestState {
	if m.StateFunc != nil {
		return m.StateFunc()
	}
	return domain.IngestIdle
}

func (m *MockIngestService) LastInput() string {
	if m.LastInputFunc != nil {
		return m.LastInputFunc()
	}
	return ""
}

func (m *MockIngestService) LastErr() error {
	if m.LastErrFunc != nil {
		return m.LastErrFunc()
	}
	return nil
}

// MockProjectService implements driving.ProjectService for testing.
type MockProjectService struct {
	ListFunc   func(ctx context.Context) ([]domain.Project, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Project, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &domain.Project{ID: id}, nil
}

func (m *MockProjectService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockQueryService implements driving.QueryService for testing.
type MockQueryService struct {
	SearchFunc      func(ctx context.Context, scope domain.ClipScope, query string) ([]domain.Segment, error)
	SuggestionsFunc func(segments []domain.Segment) []string
	ClearIndexFunc  func(ctx context.Context) error
}

func (m *MockQueryService) Search(
	ctx context.Context, scope domain.ClipScope, query string,
) ([]domain.Segment, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, scope, query)
	}
	return nil, nil
}

func (m *MockQueryService) Suggestions(segments []domain.Segment) []string {
	if m.SuggestionsFunc != nil {
		return m.SuggestionsFunc(segments)
	}
	return nil
}

func (m *MockQueryService) ClearIndex(ctx context.Context) error {
	if m.ClearIndexFunc != nil {
		return m.ClearIndexFunc(ctx)
	}
	return nil
}

// MockClipService implements driving.ClipService for testing.
type MockClipService struct {
	ResolveFunc         func(ctx context.Context, key domain.ClipKey) (string, error)
	DownloadFunc        func(ctx context.Context, key domain.ClipKey) (string, error)
	PeekFunc            func(key domain.ClipKey) (domain.ClipState, bool)
	InvalidateScopeFunc func(scope domain.ClipScope)
}

func (m *MockClipService) Resolve(ctx context.Context, key domain.ClipKey) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, key)
	}
	return "", nil
}

func (m *MockClipService) Download(ctx context.Context, key domain.ClipKey) (string, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, key)
	}
	return "", nil
}

func (m *MockClipService) Peek(key domain.ClipKey) (domain.ClipState, bool) {
	if m.PeekFunc != nil {
		return m.PeekFunc(key)
	}
	return domain.ClipPending, false
}

func (m *MockClipService) InvalidateScope(scope domain.ClipScope) {
	if m.InvalidateScopeFunc != nil {
		m.InvalidateScopeFunc(scope)
	}
}

func TestNewPorts(t *testing.T) {
	ingest := &MockIngestService{}
	project := &MockProjectService{}
	query := &MockQueryService{}
	clip := &MockClipService{}

	ports := NewPorts(ingest, project, query, clip)

	assert.Equal(t, ingest, ports.Ingest)
	assert.Equal(t, project, ports.Project)
	assert.Equal(t, query, ports.Query)
	assert.Equal(t, clip, ports.Clip)
}

func TestPorts_Validate_Success(t *testing.T) {
	ports := NewPorts(&MockIngestService{}, &MockProjectService{}, &MockQueryService{}, &MockClipService{})

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingServices(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name: "missing ingest",
			ports: &Ports{
				Project: &MockProjectService{}, Query: &MockQueryService{}, Clip: &MockClipService{},
			},
			wantErr: ErrMissingIngestService,
		},
		{
			name: "missing project",
			ports: &Ports{
				Ingest: &MockIngestService{}, Query: &MockQueryService{}, Clip: &MockClipService{},
			},
			wantErr: ErrMissingProjectService,
		},
		{
			name: "missing query",
			ports: &Ports{
				Ingest: &MockIngestService{}, Project: &MockProjectService{}, Clip: &MockClipService{},
			},
			wantErr: ErrMissingQueryService,
		},
		{
			name: "missing clip",
			ports: &Ports{
				Ingest: &MockIngestService{}, Project: &MockProjectService{}, Query: &MockQueryService{},
			},
			wantErr: ErrMissingClipService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ports.Validate(), tt.wantErr)
		})
	}
}
