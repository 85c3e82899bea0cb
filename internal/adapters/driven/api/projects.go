package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// ListProjects returns all projects in backend order.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.call(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetProject retrieves one project. Unknown ids surface as
// domain.ErrNotFound.
func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	if err := c.call(ctx, http.MethodGet, "/projects/"+id, nil, &project); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}

// DeleteProject removes a project and its index.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.call(ctx, http.MethodDelete, "/projects/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
