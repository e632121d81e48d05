package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/search"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
)

type UseCase interface {
	// Load fetches the catalog once and enriches every item before
	// publishing the new set.
	Load(ctx context.Context) error
	// Reload drops any cached upstream copy and loads again.
	Reload(ctx context.Context) error
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.EnrichedItem, int, error)
	GetProduct(ctx context.Context, id string) (*model.EnrichedItem, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// Cache stores the raw upstream catalog between loads.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// SearchIndex is the full-text index over enriched products.
type SearchIndex interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc any) error
	Search(ctx context.Context, index string, query map[string]any) (*search.SearchResponse, error)
}
