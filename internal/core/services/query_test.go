package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

func TestQueryService_Search(t *testing.T) {
	backend := &stubBackend{segments: []domain.Segment{
		{ID: "seg-0", Start: "00:00:05", End: "00:00:12", Score: 0.91, Keywords: []string{"Surfing"}},
	}}
	svc := NewQueryService(backend, nil, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	scope := domain.ClipScope{ProjectID: "proj-1"}
	segments, err := svc.Search(context.Background(), scope, "waves crashing")
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "waves crashing", backend.lastQuery)
	assert.Equal(t, scope, backend.lastScope)
}

// Blank or whitespace-only input must not produce a network request.
func TestQueryService_BlankQueryIsNoOp(t *testing.T) {
	backend := &stubBackend{}
	svc := NewQueryService(backend, nil, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	for _, query := range []string{"", "   ", "\t\n"} {
		segments, err := svc.Search(context.Background(), domain.ClipScope{ProjectID: "proj-1"}, query)
		require.NoError(t, err)
		assert.Empty(t, segments)
	}
	assert.Equal(t, 0, backend.QueryCalls())
}

func TestQueryService_SearchTrimsQuery(t *testing.T) {
	backend := &stubBackend{}
	svc := NewQueryService(backend, nil, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	_, err := svc.Search(context.Background(), domain.ClipScope{ProjectID: "proj-1"}, "  sunset  ")
	require.NoError(t, err)
	assert.Equal(t, "sunset", backend.lastQuery)
}

func TestQueryService_SearchError(t *testing.T) {
	backend := &stubBackend{queryErr: errors.New("model overloaded")}
	svc := NewQueryService(backend, nil, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	_, err := svc.Search(context.Background(), domain.ClipScope{ProjectID: "proj-1"}, "sunset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}

func TestQueryService_SearchRecordsHistory(t *testing.T) {
	history := &stubHistory{}
	backend := &stubBackend{segments: []domain.Segment{{ID: "seg-0"}, {ID: "seg-1"}}}
	svc := NewQueryService(backend, history, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	_, err := svc.Search(context.Background(), domain.ClipScope{ProjectID: "proj-1"}, "two hits")
	require.NoError(t, err)

	require.Len(t, history.queries, 1)
	assert.Equal(t, "proj-1", history.queries[0].Scope)
	assert.Equal(t, "two hits", history.queries[0].Query)
	assert.Equal(t, 2, history.queries[0].Results)
}

func TestQueryService_FailedSearchNotRecorded(t *testing.T) {
	history := &stubHistory{}
	backend := &stubBackend{queryErr: errors.New("boom")}
	svc := NewQueryService(backend, history, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	_, err := svc.Search(context.Background(), domain.ClipScope{ProjectID: "proj-1"}, "sunset")
	require.Error(t, err)
	assert.Empty(t, history.queries)
}

func TestQueryService_Suggestions(t *testing.T) {
	svc := NewQueryService(&stubBackend{}, nil, 3, domain.DefaultSuggestionTemplate)

	segments := []domain.Segment{
		{Keywords: []string{"Surfing", "Ocean"}},
		{Keywords: []string{"ocean", "Sunset", "Beach"}},
	}
	suggestions := svc.Suggestions(segments)
	assert.Equal(t, []string{"Show me surfing", "Show me ocean", "Show me sunset"}, suggestions)
}

func TestQueryService_ClearIndex(t *testing.T) {
	backend := &stubBackend{}
	svc := NewQueryService(backend, nil, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	require.NoError(t, svc.ClearIndex(context.Background()))
	assert.Equal(t, 1, backend.indexDeletes)
}

func TestQueryService_NoBackend(t *testing.T) {
	svc := NewQueryService(nil, nil, domain.DefaultSuggestionCount, domain.DefaultSuggestionTemplate)

	_, err := svc.Search(context.Background(), domain.ClipScope{ProjectID: "proj-1"}, "sunset")
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.ErrorIs(t, svc.ClearIndex(context.Background()), domain.ErrBackendUnavailable)
}
