package catalog

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Repository is an upstream catalog source. It returns raw items; the use
// case enriches them.
type Repository interface {
	FetchAll(ctx context.Context) ([]model.CatalogItem, error)
	// Name identifies the source in cache keys and logs.
	Name() string
}
