package driven

import "github.com/vquery/vquery-cli/internal/core/domain"

// ConfigStore loads and persists client configuration.
type ConfigStore interface {
	// Load reads the configuration, falling back to defaults when no file
	// exists. The returned config is normalised.
	Load() (*domain.Config, error)

	// Save writes the configuration.
	Save(cfg *domain.Config) error

	// Path returns the backing file path.
	Path() string
}
