package cart

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
)

var ErrInvalidInput = errors.New("invalid card input")

type UseCase interface {
	// Resolve builds the card, applies the selection and reports its state.
	Resolve(ctx context.Context, input *dto.CardInput) (*dto.CardState, error)
	// AddToCart publishes an event only when the selection is available.
	AddToCart(ctx context.Context, input *dto.CardInput) (*dto.AddToCartResult, error)
}
