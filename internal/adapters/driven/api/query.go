package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/logger"
)

type queryRequest struct {
	ProjectID string `json:"project_id,omitempty"`
	Query     string `json:"query"`
}

// segmentPayload tolerates both backend generations: the current server
// sends "keywords" and a segment id, the legacy one sends "key_elements"
// and no id.
type segmentPayload struct {
	ID          string   `json:"id"`
	Start       string   `json:"start_time"`
	End         string   `json:"end_time"`
	Score       float64  `json:"score"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	KeyElements []string `json:"key_elements"`
	Thumbnail   string   `json:"thumbnail"`
	ProjectID   string   `json:"project_id"`
	Filename    string   `json:"filename"`
}

func (p segmentPayload) segment(position int) domain.Segment {
	keywords := p.Keywords
	if len(keywords) == 0 {
		keywords = p.KeyElements
	}
	id := p.ID
	if id == "" {
		id = fmt.Sprintf("seg-%d", position)
	}
	return domain.Segment{
		ID:          id,
		Start:       p.Start,
		End:         p.End,
		Score:       p.Score,
		Description: p.Description,
		Keywords:    keywords,
		Thumbnail:   p.Thumbnail,
		ProjectID:   p.ProjectID,
		Filename:    p.Filename,
	}
}

// Query runs a semantic query against the scope. The backend returns
// segments pre-sorted by descending score; the order is preserved.
func (c *Client) Query(ctx context.Context, scope domain.ClipScope, query string) ([]domain.Segment, error) {
	request := queryRequest{ProjectID: scope.ProjectID, Query: query}

	var payloads []segmentPayload
	if err := c.call(ctx, http.MethodPost, "/query", request, &payloads); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	segments := make([]domain.Segment, len(payloads))
	for i, p := range payloads {
		segments[i] = p.segment(i)
	}
	logger.Debug("Query %q matched %d segments", query, len(segments))
	return segments, nil
}

// DeleteIndex discards the legacy single-project search index.
func (c *Client) DeleteIndex(ctx context.Context) error {
	if err := c.call(ctx, http.MethodPost, "/delete-index", nil, nil); err != nil {
		return fmt.Errorf("delete index: %w", err)
	}
	return nil
}
