package dto

import (
	"encoding/json"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// CardInput identifies a card and the selection to apply. A ProductID
// selects the catalog item's variant list; otherwise the inline
// combination props are used.
type CardInput struct {
	ProductID string          `json:"productId"`
	Selection model.Selection `json:"selection"`

	Title        string          `json:"title"`
	Price        float64         `json:"price"`
	Currency     string          `json:"currency"`
	Sizes        []string        `json:"sizes"`
	Colors       []string        `json:"colors"`
	InitialSize  string          `json:"initialSize"`
	InitialColor string          `json:"initialColor"`
	Availability json.RawMessage `json:"availability"`
}

// HasCombination reports whether the input carries inline card props.
func (in *CardInput) HasCombination() bool {
	return in.Title != "" || len(in.Sizes) > 0 || len(in.Colors) > 0 || len(in.Availability) > 0
}

// AvailabilitySource returns the raw availability text. The map may arrive
// as a JSON object or as a JSON string holding the object's text.
func (in *CardInput) AvailabilitySource() []byte {
	if len(in.Availability) == 0 {
		return nil
	}
	var text string
	if err := json.Unmarshal(in.Availability, &text); err == nil {
		return []byte(text)
	}
	if string(in.Availability) == "null" {
		return nil
	}
	return in.Availability
}
