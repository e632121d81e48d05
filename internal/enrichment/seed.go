package enrichment

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Rand maps a seed to [0,1) with frac(sin(seed) * 10000). The same seed
// always yields the same value; nothing else feeds into it.
func Rand(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// Seed returns the numeric seed for an item id. Numeric ids seed with
// their own value; any other id seeds with a stable hash of its text.
func Seed(id model.ItemID) float64 {
	if n, ok := id.Numeric(); ok {
		return n
	}
	return float64(xxhash.Sum64String(string(id)) % (1 << 31))
}
