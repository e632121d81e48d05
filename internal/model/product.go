package model

const (
	VariantTypeSize  = "Size"
	VariantTypeColor = "Color"
)

type Variant struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	InStock bool   `json:"inStock"`
}

// EnrichedItem is a CatalogItem plus the synthetic stock and variant data
// derived from its identity. It is never mutated after enrichment.
type EnrichedItem struct {
	CatalogItem

	InStock          bool      `json:"inStock"`
	StockCount       int       `json:"stockCount"`
	Variants         []Variant `json:"variants"`
	VariantType      string    `json:"variantType"`
	Color            string    `json:"color"`
	Colors           []string  `json:"colors"`
	SKU              string    `json:"sku"`
	DiscountPercent  int       `json:"discountPercent"`
	IsNew            bool      `json:"isNew"`
	DefaultVariantID *string   `json:"defaultVariantId"`
}

func (p *EnrichedItem) HasVariants() bool {
	return len(p.Variants) > 0
}

// FindVariant returns the variant with the given id, or nil.
func (p *EnrichedItem) FindVariant(id string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}
