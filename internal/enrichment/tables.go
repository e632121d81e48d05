package enrichment

const defaultPalette = "default"

// Sizes per clothing category, in display order.
var sizeTable = map[string][]string{
	"men's clothing":   {"S", "M", "L", "XL"},
	"women's clothing": {"XS", "S", "M", "L"},
}

var colorTable = map[string][]string{
	"electronics":  {"Black", "Silver", "Space Gray"},
	"jewelery":     {"Gold", "Silver", "Rose Gold"},
	defaultPalette: {"Black", "Navy", "Olive", "Sand"},
}

// Sizes returns the size axis for a category, or nil when the category
// has no sizes.
func Sizes(category string) []string {
	sizes, ok := sizeTable[category]
	if !ok {
		return nil
	}
	return append([]string(nil), sizes...)
}

// Colors returns the palette for a category, falling back to the default
// palette for unknown categories.
func Colors(category string) []string {
	colors, ok := colorTable[category]
	if !ok {
		colors = colorTable[defaultPalette]
	}
	return append([]string(nil), colors...)
}
