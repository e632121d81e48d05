package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/enrichment"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/cache"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/logger"
)

const (
	indexName       = "storefront_products"
	defaultCacheTTL = 10 * time.Minute
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"title": { "type": "text" },
			"category": { "type": "keyword" },
			"description": { "type": "text" },
			"sku": { "type": "keyword" },
			"price": { "type": "double" },
			"inStock": { "type": "boolean" }
		}
	}
}`

type snapshot struct {
	items      []model.EnrichedItem
	byID       map[string]int
	categories []string
	// indexed is set once every item of this snapshot reached the search
	// index. Until then searches run in memory.
	indexed atomic.Bool
}

type catalogUseCase struct {
	repo     catalog.Repository
	cache    catalog.Cache
	es       catalog.SearchIndex
	cacheTTL time.Duration
	logger   logger.ZapLogger

	mu   sync.RWMutex
	snap *snapshot
}

// NewCatalogUseCase wires the catalog. cache and es may be nil; the use
// case then always fetches upstream and searches in memory.
func NewCatalogUseCase(repo catalog.Repository, cache catalog.Cache, es catalog.SearchIndex, cacheTTL time.Duration, log logger.ZapLogger) catalog.UseCase {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &catalogUseCase{
		repo:     repo,
		cache:    cache,
		es:       es,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

func (uc *catalogUseCase) cacheKey() string {
	return "catalog:raw:" + uc.repo.Name()
}

func (uc *catalogUseCase) Load(ctx context.Context) error {
	raw, err := uc.fetch(ctx)
	if err != nil {
		return err
	}

	items := enrichment.EnrichAll(raw)
	snap := &snapshot{
		items: items,
		byID:  make(map[string]int, len(items)),
	}
	seen := make(map[string]bool)
	for i, item := range items {
		snap.byID[item.ID.String()] = i
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			snap.categories = append(snap.categories, item.Category)
		}
	}

	uc.mu.Lock()
	uc.snap = snap
	uc.mu.Unlock()

	uc.logger.Info("Catalog loaded",
		zap.String("source", uc.repo.Name()),
		zap.Int("products", len(items)),
		zap.Int("categories", len(snap.categories)),
	)

	if uc.es != nil {
		go uc.syncToElastic(context.Background(), snap)
	}
	return nil
}

func (uc *catalogUseCase) Reload(ctx context.Context) error {
	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, uc.cacheKey()); err != nil {
			uc.logger.Warn("failed to invalidate catalog cache", zap.Error(err))
		}
	}
	return uc.Load(ctx)
}

// fetch returns the raw catalog from cache when present, else from the
// repository, refreshing the cache. Cache failures never fail the load.
func (uc *catalogUseCase) fetch(ctx context.Context) ([]model.CatalogItem, error) {
	key := uc.cacheKey()
	if uc.cache != nil {
		data, err := uc.cache.Get(ctx, key)
		switch {
		case err == nil:
			var items []model.CatalogItem
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
			uc.logger.Warn("discarding unreadable catalog cache entry", zap.String("key", key))
		case !errors.Is(err, cache.ErrMiss):
			uc.logger.Warn("catalog cache read failed", zap.Error(err))
		}
	}

	items, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", uc.repo.Name(), err)
	}

	if uc.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return items, nil
}

func (uc *catalogUseCase) syncToElastic(ctx context.Context, snap *snapshot) {
	if err := uc.es.CreateIndex(ctx, indexName, indexMapping); err != nil {
		uc.logger.Error("failed to create product index", zap.Error(err))
		return
	}
	failed := 0
	for _, item := range snap.items {
		if err := uc.es.Index(ctx, indexName, item.ID.String(), item); err != nil {
			failed++
			uc.logger.Error("failed to index product", zap.String("id", item.ID.String()), zap.Error(err))
		}
	}
	if failed > 0 {
		uc.logger.Warn("product index incomplete, search stays in memory",
			zap.Int("failed", failed),
			zap.Int("products", len(snap.items)),
		)
		return
	}
	snap.indexed.Store(true)
}

func (uc *catalogUseCase) current() (*snapshot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.snap == nil {
		return nil, catalog.ErrCatalogNotLoaded
	}
	return uc.snap, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*model.EnrichedItem, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}
	idx, ok := snap.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	item := snap.items[idx]
	return &item, nil
}

func (uc *catalogUseCase) ListCategories(ctx context.Context) ([]string, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), snap.categories...), nil
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.EnrichedItem, int, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, 0, err
	}
	var f dto.ProductFilters
	if filters != nil {
		f = *filters
	}
	f.Normalize()

	candidates := snap.items
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		candidates = uc.search(ctx, snap, q)
	}

	matched := make([]model.EnrichedItem, 0, len(candidates))
	for _, item := range candidates {
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if f.InStockOnly && !item.InStock {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	if f.PageSize > 0 {
		// compare before multiplying so huge pages cannot overflow
		start := total
		if f.Page-1 <= total/f.PageSize {
			start = min((f.Page-1)*f.PageSize, total)
		}
		end := total
		if f.PageSize < total-start {
			end = start + f.PageSize
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

// search asks the index once it holds the whole snapshot and falls back to
// substring matching when the index is missing, incomplete or failing.
// Results always come from snap so they reflect the loaded catalog.
func (uc *catalogUseCase) search(ctx context.Context, snap *snapshot, q string) []model.EnrichedItem {
	if uc.es != nil && snap.indexed.Load() {
		res, err := uc.es.Search(ctx, indexName, map[string]any{
			"query": map[string]any{
				"multi_match": map[string]any{
					"query":  q,
					"fields": []string{"title^3", "category", "description", "sku"},
				},
			},
			"size": len(snap.items),
		})
		if err == nil {
			out := make([]model.EnrichedItem, 0, len(res.Hits.Hits))
			for _, hit := range res.Hits.Hits {
				if idx, ok := snap.byID[hit.ID]; ok {
					out = append(out, snap.items[idx])
				}
			}
			return out
		}
		uc.logger.Error("ES search failed, falling back to memory", zap.Error(err))
	}

	needle := strings.ToLower(q)
	var out []model.EnrichedItem
	for _, item := range snap.items {
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) ||
			strings.Contains(strings.ToLower(item.SKU), needle) {
			out = append(out, item)
		}
	}
	return out
}
