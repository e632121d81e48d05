// Package availability decides whether a shopper's current selection can
// be purchased. Combination maps and enriched variant lists go through the
// same first-match precedence walk.
package availability

import "github.com/fekuna/omnipos-storefront-service/internal/model"

const keySeparator = "|"

// Map holds availability by combination key "<size>|<color>". Either side
// may be empty to match any value on that axis.
type Map map[string]bool

// Key builds the combination key for a size and color.
func Key(size, color string) string {
	return size + keySeparator + color
}

// probe is one step in a precedence chain. ok reports whether the step
// matched; value is only meaningful when it did.
type probe func() (value, ok bool)

// firstMatch walks probes in order and returns the first matching value,
// or fallback when nothing matches.
func firstMatch(fallback bool, probes ...probe) bool {
	for _, p := range probes {
		if v, ok := p(); ok {
			return v
		}
	}
	return fallback
}

func (m Map) probe(key string) probe {
	return func() (bool, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// ResolveCombination looks up the exact key, then the size-only key, then
// the color-only key. Unknown combinations are available.
func ResolveCombination(sel model.Selection, m Map) bool {
	if len(m) == 0 {
		return true
	}
	return firstMatch(true,
		m.probe(Key(sel.Size, sel.Color)),
		m.probe(Key(sel.Size, "")),
		m.probe(Key("", sel.Color)),
	)
}

// ResolveVariant gates on the item's overall stock, then on the selected
// variant. Items without variants fall through to overall stock; an id
// that matches no variant is not purchasable.
func ResolveVariant(item *model.EnrichedItem, variantID string) bool {
	if item == nil || !item.InStock {
		return false
	}
	if !item.HasVariants() {
		return true
	}
	return firstMatch(false, func() (bool, bool) {
		v := item.FindVariant(variantID)
		if v == nil {
			return false, false
		}
		return v.InStock, true
	})
}
