package storage

import (
	"context"

	"github.com/Aalzard/DRUNKPENGUINS/rating"
)

// CatalogStorage persists the whole catalog under one well-known key.
// No partial or incremental API: load returns the full catalog (or
// ErrCatalogNotFound when nothing was ever stored), save overwrites it.
type CatalogStorage interface {
	Load(ctx context.Context) (*rating.Catalog, error)
	Save(ctx context.Context, catalog *rating.Catalog) error
}
