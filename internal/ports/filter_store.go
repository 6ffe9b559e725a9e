package ports

import (
	"context"

	"github.com/bft-labs/bikeshare/internal/domain"
)

// FilterStore remembers the last filter that produced a successful load.
type FilterStore interface {
	// Load retrieves the last saved filter.
	// Returns domain.ErrNoHistory if nothing has been saved yet.
	Load(ctx context.Context) (domain.Filter, error)

	// Save persists the filter atomically.
	Save(ctx context.Context, f domain.Filter) error
}
