package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartdto "github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	cartusecase "github.com/fekuna/omnipos-storefront-service/internal/cart/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	catalogusecase "github.com/fekuna/omnipos-storefront-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/i18n"
)

type staticRepo struct {
	items []model.CatalogItem
}

func (r *staticRepo) FetchAll(context.Context) ([]model.CatalogItem, error) {
	return r.items, nil
}

func (r *staticRepo) Name() string { return "static" }

type capturePublisher struct {
	mu     sync.Mutex
	events []model.AddToCartEvent
}

func (c *capturePublisher) PublishAddToCart(_ context.Context, event model.AddToCartEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func newServer(t *testing.T, load bool) (http.Handler, *capturePublisher) {
	t.Helper()
	repo := &staticRepo{items: []model.CatalogItem{
		{ID: "1", Category: "men's clothing", Title: "Backpack", Price: 109.95},
		{ID: "11", Category: "jewelery", Title: "Bracelet", Price: 9.99},
		{ID: "8", Category: "electronics", Title: "Hard Drive", Price: 64},
	}}
	catalogUC := catalogusecase.NewCatalogUseCase(repo, nil, nil, 0, zap.NewNop())
	if load {
		require.NoError(t, catalogUC.Load(context.Background()))
	}

	tr, err := i18n.New()
	require.NoError(t, err)
	pub := &capturePublisher{}
	cartUC := cartusecase.NewCartUseCase(catalogUC, pub, tr, zap.NewNop())

	return NewHandlers(catalogUC, cartUC, zap.NewNop()).Routes(), pub
}

func do(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	h, _ := newServer(t, false)
	w := do(t, h, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListProductsFilters(t *testing.T) {
	h, _ := newServer(t, true)

	w := do(t, h, http.MethodGet, "/v1/products?category=jewelery", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, productCacheControl, w.Header().Get("Cache-Control"))

	var out productListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	require.Equal(t, 1, out.Total)
	require.Equal(t, "FS-0011", out.Products[0].SKU)

	w = do(t, h, http.MethodGet, "/v1/products?inStock=true&pageSize=1&page=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out = productListResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	require.Equal(t, 2, out.Total)
	require.Len(t, out.Products, 1)
	require.Equal(t, model.ItemID("1"), out.Products[0].ID)
}

func TestListProductsBadQuery(t *testing.T) {
	h, _ := newServer(t, true)
	w := do(t, h, http.MethodGet, "/v1/products?page=two", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, h, http.MethodGet, "/v1/products?inStock=maybe", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogNotLoaded(t *testing.T) {
	h, _ := newServer(t, false)
	w := do(t, h, http.MethodGet, "/v1/categories", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetProduct(t *testing.T) {
	h, _ := newServer(t, true)

	w := do(t, h, http.MethodGet, "/v1/products/8", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item model.EnrichedItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&item))
	require.Equal(t, model.VariantTypeColor, item.VariantType)
	require.Equal(t, "8-spacegray", item.Variants[2].ID)

	w = do(t, h, http.MethodGet, "/v1/products/99", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategories(t *testing.T) {
	h, _ := newServer(t, true)
	w := do(t, h, http.MethodGet, "/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"categories":["men's clothing","jewelery","electronics"]}`, w.Body.String())
}

func TestResolveCardLocalized(t *testing.T) {
	h, _ := newServer(t, true)

	w := do(t, h, http.MethodPost, "/v1/cards/resolve", `{"productId":"11"}`,
		map[string]string{"Accept-Language": "id-ID,id;q=0.9"})
	require.Equal(t, http.StatusOK, w.Code)

	var state cartdto.CardState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	require.False(t, state.Available)
	require.True(t, state.AriaDisabled)
	require.Equal(t, "Stok Habis", state.ButtonLabel)
	require.Equal(t, "11-gold", state.Selection.VariantID)
}

func TestResolveCardErrors(t *testing.T) {
	h, _ := newServer(t, true)

	w := do(t, h, http.MethodPost, "/v1/cards/resolve", `{`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/v1/cards/resolve", `{}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/v1/cards/resolve", `{"productId":"404"}`, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartCombinationGated(t *testing.T) {
	h, pub := newServer(t, true)

	body := `{"title":"Tee","price":20,"sizes":["S","M"],"colors":["Black"],
		"availability":"{\"S|Black\": false, \"M|\": true}",
		"selection":{"size":"S","color":"Black"}}`
	w := do(t, h, http.MethodPost, "/v1/cards/add-to-cart", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res cartdto.AddToCartResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	require.False(t, res.Accepted)
	require.Empty(t, pub.events)

	body = `{"title":"Tee","price":20,"sizes":["S","M"],"colors":["Black"],
		"availability":{"S|Black": false, "M|": true},
		"selection":{"size":"M","color":"Black"}}`
	w = do(t, h, http.MethodPost, "/v1/cards/add-to-cart", body, map[string]string{"x-currency": "eur"})
	require.Equal(t, http.StatusOK, w.Code)

	res = cartdto.AddToCartResult{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	require.True(t, res.Accepted)
	require.True(t, res.State.JustAdded)
	require.Len(t, pub.events, 1)
	require.Equal(t, "EUR", pub.events[0].Currency)
	require.Equal(t, "M", pub.events[0].Size)
	require.Equal(t, "Black", pub.events[0].Color)
}

func TestAddToCartVariant(t *testing.T) {
	h, pub := newServer(t, true)

	w := do(t, h, http.MethodPost, "/v1/cards/add-to-cart", `{"productId":"1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res cartdto.AddToCartResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	require.True(t, res.Accepted)
	require.Equal(t, "Added ✓", res.State.ButtonLabel)
	require.Len(t, pub.events, 1)
	require.Equal(t, "1-s", *pub.events[0].SelectedVariantID)
}

var _ catalog.Repository = (*staticRepo)(nil)
