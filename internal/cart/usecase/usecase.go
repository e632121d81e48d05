package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront-service/internal/availability"
	"github.com/fekuna/omnipos-storefront-service/internal/card"
	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/i18n"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/logger"
	"github.com/fekuna/omnipos-storefront-service/internal/shopper"
)

type cartUseCase struct {
	catalog    catalog.UseCase
	publisher  cart.Publisher
	translator *i18n.Translator
	logger     logger.ZapLogger
}

func NewCartUseCase(catalogUC catalog.UseCase, publisher cart.Publisher, translator *i18n.Translator, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		catalog:    catalogUC,
		publisher:  publisher,
		translator: translator,
		logger:     log,
	}
}

func (uc *cartUseCase) Resolve(ctx context.Context, input *dto.CardInput) (*dto.CardState, error) {
	c, state, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	state.State = c.Apply(input.Selection)
	return state, nil
}

func (uc *cartUseCase) AddToCart(ctx context.Context, input *dto.CardInput) (*dto.AddToCartResult, error) {
	c, state, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	c.Apply(input.Selection)
	event, err := c.AddToCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("publish add-to-cart: %w", err)
	}
	state.State = c.State()

	if event == nil {
		uc.logger.Debug("add-to-cart rejected, selection unavailable",
			zap.String("product_id", state.ProductID),
			zap.Any("selection", state.Selection),
		)
	}
	return &dto.AddToCartResult{
		Accepted: event != nil,
		Event:    event,
		State:    *state,
	}, nil
}

// build constructs the card for one request. A catalog product always uses
// its variant list, even if inline availability is also supplied.
func (uc *cartUseCase) build(ctx context.Context, input *dto.CardInput) (*card.Card, *dto.CardState, error) {
	localizer := uc.localizer(ctx)
	var opts []card.Option
	if uc.publisher != nil {
		opts = append(opts, card.WithEmitter(card.EmitterFunc(uc.publisher.PublishAddToCart)))
	}
	if localizer != nil {
		opts = append(opts, card.WithLabels(card.Labels{
			AddToCart:  localizer.T(i18n.MsgAddToCart, nil),
			Added:      localizer.T(i18n.MsgAdded, nil),
			OutOfStock: localizer.T(i18n.MsgOutOfStock, nil),
		}))
	}

	if id := strings.TrimSpace(input.ProductID); id != "" {
		item, err := uc.catalog.GetProduct(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		state := &dto.CardState{ProductID: id, Form: dto.FormVariant}
		if item.HasVariants() && localizer != nil {
			state.VariantLabel = localizer.T(i18n.MsgSelectVariant, map[string]any{"Type": item.VariantType})
		}
		return card.NewVariantCard(item, opts...), state, nil
	}

	if !input.HasCombination() {
		return nil, nil, fmt.Errorf("%w: productId or card props required", cart.ErrInvalidInput)
	}

	combos, ok := availability.ParseMap(input.AvailabilitySource())
	if !ok {
		uc.logger.Debug("malformed availability map, treating as unconstrained", zap.String("title", input.Title))
	}
	currency := input.Currency
	if currency == "" {
		currency = shopper.GetCurrency(ctx)
	}

	c := card.NewComboCard(card.ComboProps{
		Title:        input.Title,
		Price:        input.Price,
		Currency:     currency,
		Sizes:        input.Sizes,
		Colors:       input.Colors,
		Availability: combos,
		InitialSize:  input.InitialSize,
		InitialColor: input.InitialColor,
	}, opts...)
	return c, &dto.CardState{Form: dto.FormCombination}, nil
}

func (uc *cartUseCase) localizer(ctx context.Context) *i18n.Localizer {
	if uc.translator == nil {
		return nil
	}
	return uc.translator.Localizer(shopper.GetLocale(ctx))
}
