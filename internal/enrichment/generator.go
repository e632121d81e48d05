// Package enrichment derives stable variant, stock and merchandising data
// for catalog items that carry none upstream.
package enrichment

import (
	"math"
	"strings"
	"unicode"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

const (
	outOfStockThreshold      = 0.12
	variantKnockoutThreshold = 0.18
	newArrivalThreshold      = 0.85
	maxStockSpread           = 25
	maxDiscountPercent       = 30
	skuPrefix                = "FS-"
	skuWidth                 = 4
)

// Enrich returns the enriched form of item. Output depends only on
// item.ID and item.Category.
func Enrich(item model.CatalogItem) model.EnrichedItem {
	seed := Seed(item.ID)

	sizes := Sizes(item.Category)
	colors := Colors(item.Category)

	axis, variantType := colors, model.VariantTypeColor
	if sizes != nil {
		axis, variantType = sizes, model.VariantTypeSize
	}

	inStock := Rand(seed) > outOfStockThreshold
	stockCount := int(math.Floor(Rand(seed*7) * maxStockSpread))
	if inStock {
		stockCount++
	}
	if stockCount < 0 {
		stockCount = 0
	}

	variants := make([]model.Variant, 0, len(axis))
	for idx, label := range axis {
		variants = append(variants, model.Variant{
			ID:      VariantID(item.ID, label),
			Label:   label,
			InStock: inStock && Rand(seed+float64(idx)) > variantKnockoutThreshold,
		})
	}

	return model.EnrichedItem{
		CatalogItem:      item,
		InStock:          inStock,
		StockCount:       stockCount,
		Variants:         variants,
		VariantType:      variantType,
		Color:            pick(colors, Rand(seed*11)),
		Colors:           colors,
		SKU:              SKU(item.ID),
		DiscountPercent:  int(math.Floor(Rand(seed*5) * maxDiscountPercent)),
		IsNew:            Rand(seed*3) > newArrivalThreshold,
		DefaultVariantID: DefaultVariantID(variants),
	}
}

// EnrichAll enriches a full catalog, preserving order.
func EnrichAll(items []model.CatalogItem) []model.EnrichedItem {
	out := make([]model.EnrichedItem, len(items))
	for i, item := range items {
		out[i] = Enrich(item)
	}
	return out
}

// VariantID builds "<itemId>-<label>" with the label lowercased and all
// whitespace removed.
func VariantID(id model.ItemID, label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return id.String() + "-" + b.String()
}

// DefaultVariantID is the first in-stock variant, else the first variant,
// else nil.
func DefaultVariantID(variants []model.Variant) *string {
	if len(variants) == 0 {
		return nil
	}
	for _, v := range variants {
		if v.InStock {
			id := v.ID
			return &id
		}
	}
	id := variants[0].ID
	return &id
}

// SKU formats "FS-" followed by the id left-padded with zeros to width 4.
func SKU(id model.ItemID) string {
	s := id.String()
	if n := skuWidth - len([]rune(s)); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return skuPrefix + s
}

func pick(palette []string, r float64) string {
	if len(palette) == 0 {
		return ""
	}
	idx := int(math.Floor(r * float64(len(palette))))
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}
