// Package api implements the driven backend ports over the HTTP JSON
// surface of the indexing server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vquery/vquery-cli/internal/core/ports/driven"
)

// Ensure Client implements the driven backend ports.
var (
	_ driven.IngestAPI  = (*Client)(nil)
	_ driven.ProjectAPI = (*Client)(nil)
	_ driven.QueryAPI   = (*Client)(nil)
	_ driven.ClipAPI    = (*Client)(nil)
)

// Client talks to one backend origin. Ingestion calls block until the
// backend has finished its whole pipeline, so the client carries no
// global timeout; callers bound requests through the context.
type Client struct {
	origin     *url.URL
	httpClient *http.Client
}

// NewClient creates a client for the given origin, e.g.
// "http://127.0.0.1:5000".
func NewClient(origin string) (*Client, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse api origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api origin %q missing scheme or host", origin)
	}
	return &Client{
		origin:     u,
		httpClient: &http.Client{},
	}, nil
}

// endpoint resolves a path against the configured origin.
func (c *Client) endpoint(path string) string {
	return c.origin.JoinPath(path).String()
}

// call performs one JSON round-trip. A nil body sends no payload; a nil
// out discards the response body after the status check.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// do sends the request and decodes a JSON response into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
