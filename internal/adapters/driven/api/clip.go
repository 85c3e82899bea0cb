package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/logger"
)

type clipRequest struct {
	ProjectID string `json:"project_id,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Start     string `json:"start_time"`
	End       string `json:"end_time"`
}

// CreateClip asks the backend to extract the keyed time range. The
// backend answers with a path relative to its origin; the absolute URL
// is returned.
func (c *Client) CreateClip(ctx context.Context, key domain.ClipKey) (string, error) {
	request := clipRequest{
		ProjectID: key.Scope.ProjectID,
		Filename:  key.Scope.Filename,
		Start:     key.Start,
		End:       key.End,
	}

	var resp struct {
		ClipURL string `json:"clip_url"`
	}
	if err := c.call(ctx, http.MethodPost, "/clip", request, &resp); err != nil {
		return "", fmt.Errorf("create clip: %w", err)
	}

	rel, err := url.Parse(resp.ClipURL)
	if err != nil {
		return "", fmt.Errorf("parse clip url %q: %w", resp.ClipURL, err)
	}
	absolute := c.origin.ResolveReference(rel).String()
	logger.Debug("Clip ready at %s", absolute)
	return absolute, nil
}

// FetchClip streams the clip body at url to w.
func (c *Client) FetchClip(ctx context.Context, clipURL string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, clipURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read clip body: %w", err)
	}
	return nil
}
