package catalog

import "context"

// Source lists the runtime versions available for installation. Concrete
// implementations are swapped per target (real HTTP client vs. test stub)
// without touching the dispatch core.
type Source interface {
	AvailableVersions(ctx context.Context) ([]string, error)
}
