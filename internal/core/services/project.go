package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driven"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
	"github.com/vquery/vquery-cli/internal/logger"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService fronts the remote project catalog. It adds no caching:
// every call is a fresh round-trip, and the backend guarantees nothing
// stronger than last-write-wins.
type ProjectService struct {
	api   driven.ProjectAPI
	clips driving.ClipService
}

// NewProjectService creates a new project service. The clip service is
// optional; when set, deleting a project invalidates its cached clips.
func NewProjectService(api driven.ProjectAPI, clips driving.ClipService) *ProjectService {
	return &ProjectService{api: api, clips: clips}
}

// List returns all projects in backend order.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.api == nil {
		return nil, domain.ErrBackendUnavailable
	}
	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	logger.Debug("Listed %d projects", len(projects))
	return projects, nil
}

// Get retrieves one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if s.api == nil {
		return nil, domain.ErrBackendUnavailable
	}
	project, err := s.api.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return project, nil
}

// Delete removes a project and evicts its cached clips. A delete of an
// already-deleted project is logged and treated as success.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if s.api == nil {
		return domain.ErrBackendUnavailable
	}
	err := s.api.DeleteProject(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		logger.Warn("Delete of unknown project %s ignored", id)
	}
	if s.clips != nil {
		s.clips.InvalidateScope(domain.ClipScope{ProjectID: id})
	}
	return nil
}
