package driving

import (
	"context"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

// ClipService resolves segment time ranges to playable clip URLs, caching
// per key so that repeated play/download interactions for the same range
// trigger at most one backend extraction.
type ClipService interface {
	// Resolve returns the absolute clip URL for the key. Concurrent calls
	// for the same key coalesce into one backend request; a ready entry is
	// served from cache without any network call. A failed attempt is not
	// cached: the next Resolve retries.
	Resolve(ctx context.Context, key domain.ClipKey) (string, error)

	// Download resolves the key and saves the clip body under the
	// configured download directory, returning the local path. It shares
	// the Resolve cache entry.
	Download(ctx context.Context, key domain.ClipKey) (string, error)

	// Peek reports the cache state for a key without side effects.
	Peek(key domain.ClipKey) (domain.ClipState, bool)

	// InvalidateScope evicts all cache entries belonging to a scope.
	// Called when the owning project is deleted.
	InvalidateScope(scope domain.ClipScope)
}
