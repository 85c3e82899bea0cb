package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/messages"
	"github.com/vquery/vquery-cli/internal/core/domain"
)

// MockIngestService implements driving.IngestService for testing.
type MockIngestService struct {
	SubmitFunc func(ctx context.Context, source domain.IngestSource) (domain.IngestReceipt, error)
}

func (m *MockIngestService) Submit(
	ctx context.Context, source domain.IngestSource,
) (domain.IngestReceipt, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, source)
	}
	return domain.IngestReceipt{}, nil
}

func (m *MockIngestService) State() domain.IngestState { return domain.IngestIdle }
func (m *MockIngestService) LastInput() string         { return "" }
func (m *MockIngestService) LastErr() error            { return nil }

func newTestView(mock *MockIngestService) *View {
	v := NewView(nil, mock, 10*time.Millisecond)
	v.SetDimensions(80, 24)
	return v
}

func TestNewView_Defaults(t *testing.T) {
	view := NewView(nil, &MockIngestService{}, 0)

	require.NotNil(t, view)
	assert.Equal(t, 5*time.Second, view.interval)
	assert.False(t, view.Running())
}

func TestView_Start_DispatchesSubmission(t *testing.T) {
	var got domain.IngestSource
	mock := &MockIngestService{
		SubmitFunc: func(ctx context.Context, source domain.IngestSource) (domain.IngestReceipt, error) {
			got = source
			return domain.IngestReceipt{ProjectID: "proj-1"}, nil
		},
	}
	view := newTestView(mock)

	source := domain.IngestSource{URL: "https://youtube.com/watch?v=abc"}
	cmd := view.Start(source)

	require.NotNil(t, cmd)
	assert.True(t, view.Running())
	assert.Equal(t, domain.PhaseRetrieving, view.Phase())

	msg := view.submit(source)()
	finished, ok := msg.(messages.IngestFinished)
	require.True(t, ok)
	assert.NoError(t, finished.Err)
	assert.Equal(t, "proj-1", finished.Receipt.ProjectID)
	assert.Equal(t, source, got)
}

func TestView_PhaseTicked_Advances(t *testing.T) {
	view := newTestView(&MockIngestService{})
	view.Start(domain.IngestSource{URL: "https://youtube.com/watch?v=abc"})

	_, cmd := view.Update(messages.PhaseTicked{})
	assert.Equal(t, domain.PhaseOptimizing, view.Phase())
	assert.NotNil(t, cmd, "intermediate phases schedule another tick")

	view.Update(messages.PhaseTicked{})
	assert.Equal(t, domain.PhaseAnalyzing, view.Phase())

	_, cmd = view.Update(messages.PhaseTicked{})
	assert.Equal(t, domain.PhaseIndexing, view.Phase())
	assert.Nil(t, cmd, "final phase holds without further ticks")
}

func TestView_PhaseTicked_FreezesOnFinalPhase(t *testing.T) {
	view := newTestView(&MockIngestService{})
	view.Start(domain.IngestSource{URL: "https://youtube.com/watch?v=abc"})

	for i := 0; i < 6; i++ {
		view.Update(messages.PhaseTicked{})
	}

	assert.Equal(t, domain.PhaseIndexing, view.Phase())
}

func TestView_PhaseTicked_IgnoredWhenIdle(t *testing.T) {
	view := newTestView(&MockIngestService{})

	_, cmd := view.Update(messages.PhaseTicked{})

	assert.Nil(t, cmd)
	assert.Equal(t, domain.PhaseRetrieving, view.Phase())
}

func TestView_IngestFinished_StopsRun(t *testing.T) {
	view := newTestView(&MockIngestService{})
	view.Start(domain.IngestSource{URL: "https://youtube.com/watch?v=abc"})

	view.Update(messages.IngestFinished{Receipt: domain.IngestReceipt{ProjectID: "proj-1"}})

	assert.False(t, view.Running())
	assert.NoError(t, view.Err())
}

func TestView_IngestFinished_Error(t *testing.T) {
	view := newTestView(&MockIngestService{})
	view.Start(domain.IngestSource{URL: "https://youtube.com/watch?v=abc"})

	view.Update(messages.IngestFinished{Err: errors.New("backend down")})

	assert.False(t, view.Running())
	assert.EqualError(t, view.Err(), "backend down")
}

func TestView_View_ShowsPhases(t *testing.T) {
	view := newTestView(&MockIngestService{})
	view.Start(domain.IngestSource{URL: "https://youtube.com/watch?v=abc"})
	view.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := view.View()

	assert.Contains(t, out, "Indexing")
	assert.Contains(t, out, "https://youtube.com/watch?v=abc")
	for _, phase := range domain.Phases() {
		assert.Contains(t, out, phase.Label())
	}
	assert.Contains(t, out, domain.PhaseRetrieving.Activity())
}

func TestView_View_ErrorState(t *testing.T) {
	view := newTestView(&MockIngestService{})
	view.Start(domain.IngestSource{URL: "https://youtube.com/watch?v=abc"})
	view.Update(messages.IngestFinished{Err: errors.New("backend down")})

	out := view.View()

	assert.Contains(t, out, "backend down")
}

func TestView_Reset(t *testing.T) {
	view := newTestView(&MockIngestService{})
	view.Start(domain.IngestSource{URL: "https://youtube.com/watch?v=abc"})
	view.Update(messages.PhaseTicked{})

	view.Reset()

	assert.False(t, view.Running())
	assert.Equal(t, domain.PhaseRetrieving, view.Phase())
	assert.Empty(t, view.Source().String())
}
