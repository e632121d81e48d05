package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// HTTPRepository reads a JSON array of products from an upstream
// storefront API such as fakestoreapi.com/products.
type HTTPRepository struct {
	client *http.Client
	url    string
}

func NewHTTPRepository(url string, timeout time.Duration) *HTTPRepository {
	return &HTTPRepository{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (r *HTTPRepository) Name() string {
	return "http"
}

func (r *HTTPRepository) FetchAll(ctx context.Context) ([]model.CatalogItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch catalog: unexpected status %d: %s", resp.StatusCode, body)
	}

	var items []model.CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return items, nil
}
