package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/logger"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/rpc"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: log,
	}
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type ProductResponse struct {
	Product *model.EnrichedItem `json:"product"`
}

type ListProductsResponse struct {
	Products []model.EnrichedItem `json:"products"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

func (h *CatalogHandler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var filters dto.ProductFilters
	if err := rpc.Decode(req, &filters); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	filters.Normalize()

	products, count, err := h.uc.ListProducts(ctx, &filters)
	if err != nil {
		return nil, h.toStatus(err)
	}

	return rpc.Encode(&ListProductsResponse{
		Products: products,
		Total:    count,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	})
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GetProductRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if in.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	p, err := h.uc.GetProduct(ctx, in.ID)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return rpc.Encode(&ProductResponse{Product: p})
}

func (h *CatalogHandler) ListCategories(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	cats, err := h.uc.ListCategories(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return rpc.Encode(&ListCategoriesResponse{Categories: cats})
}

func (h *CatalogHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, catalog.ErrCatalogNotLoaded):
		return status.Error(codes.Unavailable, err.Error())
	default:
		h.logger.Error("catalog request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}
