package card

// Labels are the localized strings a card shows on its purchase button.
type Labels struct {
	AddToCart  string
	Added      string
	OutOfStock string
}

func DefaultLabels() Labels {
	return Labels{
		AddToCart:  "Add to Cart",
		Added:      "Added ✓",
		OutOfStock: "Out of Stock",
	}
}
