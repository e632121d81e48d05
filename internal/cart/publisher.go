package cart

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Publisher delivers add-to-cart events to the cart store.
type Publisher interface {
	PublishAddToCart(ctx context.Context, event model.AddToCartEvent) error
}
