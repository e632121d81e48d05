package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/logger"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/rpc"
)

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CartHandler) Resolve(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.CardInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	state, err := h.uc.Resolve(ctx, &in)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return rpc.Encode(state)
}

func (h *CartHandler) AddToCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.CardInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := h.uc.AddToCart(ctx, &in)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return rpc.Encode(res)
}

func (h *CartHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, cart.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, catalog.ErrCatalogNotLoaded):
		return status.Error(codes.Unavailable, err.Error())
	default:
		h.logger.Error("cart request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}
