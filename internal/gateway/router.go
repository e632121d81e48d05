// Package gateway serves the catalog and card operations over HTTP/JSON.
package gateway

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/logger"
	"github.com/fekuna/omnipos-storefront-service/internal/shopper"
)

const productCacheControl = "public, max-age=300"

type Handlers struct {
	catalog catalog.UseCase
	cart    cart.UseCase
	logger  logger.ZapLogger
}

func NewHandlers(catalogUC catalog.UseCase, cartUC cart.UseCase, log logger.ZapLogger) *Handlers {
	return &Handlers{
		catalog: catalogUC,
		cart:    cartUC,
		logger:  log,
	}
}

// Routes mounts every endpoint on a fresh chi router.
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)
	r.Use(shopperContext)

	r.Get("/healthz", h.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/categories", h.listCategories)
		r.Post("/cards/resolve", h.resolveCard)
		r.Post("/cards/add-to-cart", h.addToCart)
	})
	return r
}

func (h *Handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// shopperContext reads the locale and currency headers into the context.
func shopperContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		locale := strings.TrimSpace(r.Header.Get("x-locale"))
		if locale == "" {
			locale = strings.TrimSpace(r.Header.Get("Accept-Language"))
		}
		if locale != "" {
			ctx = shopper.WithLocale(ctx, locale)
		}
		if currency := strings.TrimSpace(r.Header.Get("x-currency")); currency != "" {
			ctx = shopper.WithCurrency(ctx, strings.ToUpper(currency))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handlers) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	})
}
