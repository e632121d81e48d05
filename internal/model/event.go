package model

import "time"

// Selection is the shopper's current choice on one card. Either the
// size/color pair or VariantID is meaningful, depending on the card kind.
type Selection struct {
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	VariantID string `json:"variantId,omitempty"`
}

// AddToCartEvent is emitted when a shopper adds an available selection.
// Combination cards fill Title/Price/Currency/Size/Color; variant cards
// fill Product and SelectedVariantID.
type AddToCartEvent struct {
	EventID           string        `json:"eventId"`
	EventType         string        `json:"eventType"`
	Title             string        `json:"title,omitempty"`
	Price             float64       `json:"price,omitempty"`
	Currency          string        `json:"currency,omitempty"`
	Size              string        `json:"size,omitempty"`
	Color             string        `json:"color,omitempty"`
	Product           *EnrichedItem `json:"product,omitempty"`
	SelectedVariantID *string       `json:"selectedVariantId,omitempty"`
	Timestamp         time.Time     `json:"timestamp"`
}

const EventTypeAddToCart = "AddToCart"
