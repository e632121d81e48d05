package gateway

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type productListResponse struct {
	Products []model.EnrichedItem `json:"products"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

func (h *Handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := dto.ProductFilters{
		Category:    strings.TrimSpace(q.Get("category")),
		SearchQuery: strings.TrimSpace(q.Get("query")),
	}

	var err error
	if raw := q.Get("inStock"); raw != "" {
		if filters.InStockOnly, err = strconv.ParseBool(raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_query", "inStock must be a boolean")
			return
		}
	}
	if filters.Page, err = intParam(q.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_query", "page must be an integer")
		return
	}
	if filters.PageSize, err = intParam(q.Get("pageSize")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_query", "pageSize must be an integer")
		return
	}
	filters.Normalize()

	items, total, err := h.catalog.ListProducts(r.Context(), &filters)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	if items == nil {
		items = []model.EnrichedItem{}
	}

	w.Header().Set("Cache-Control", productCacheControl)
	writeJSON(w, http.StatusOK, productListResponse{
		Products: items,
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	})
}

func (h *Handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	item, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.Header().Set("Cache-Control", productCacheControl)
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": cats})
}

func intParam(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
