package dto

import (
	"github.com/fekuna/omnipos-storefront-service/internal/card"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

const (
	FormVariant     = "variant"
	FormCombination = "combination"
)

type CardState struct {
	card.State
	ProductID    string `json:"productId,omitempty"`
	Form         string `json:"form"`
	VariantLabel string `json:"variantLabel,omitempty"`
}

type AddToCartResult struct {
	Accepted bool                  `json:"accepted"`
	Event    *model.AddToCartEvent `json:"event,omitempty"`
	State    CardState             `json:"state"`
}
