package driving

import (
	"context"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// ProjectService manages the remote project catalog.
type ProjectService interface {
	// List returns all projects in backend order.
	List(ctx context.Context) ([]domain.Project, error)

	// Get retrieves one project; domain.ErrNotFound for unknown ids.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// Delete removes a project. Deleting an already-deleted project is not
	// an error. Cached clips scoped to the project are invalidated.
	Delete(ctx context.Context, id string) error
}
