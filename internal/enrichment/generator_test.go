package enrichment

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

func item(id string, category string) model.CatalogItem {
	return model.CatalogItem{ID: model.ItemID(id), Category: category, Title: "item " + id, Price: 9.99}
}

func TestEnrichIsDeterministic(t *testing.T) {
	for _, it := range []model.CatalogItem{
		item("1", "men's clothing"),
		item("8", "electronics"),
		item("a1b2-c3", "garden"),
	} {
		first := Enrich(it)
		second := Enrich(it)
		require.Equal(t, first, second, "id %s", it.ID)
	}
}

func TestEnrichClothingUsesSizeAxis(t *testing.T) {
	got := Enrich(item("1", "men's clothing"))

	require.Equal(t, model.VariantTypeSize, got.VariantType)
	require.Equal(t, []string{"Black", "Navy", "Olive", "Sand"}, got.Colors)
	require.True(t, got.InStock)
	require.Equal(t, 22, got.StockCount)
	require.Equal(t, "Black", got.Color)
	require.Equal(t, "FS-0001", got.SKU)
	require.Equal(t, 22, got.DiscountPercent)
	require.False(t, got.IsNew)

	labels := make([]string, len(got.Variants))
	for i, v := range got.Variants {
		labels[i] = v.Label
		require.True(t, v.InStock, v.ID)
	}
	require.Equal(t, []string{"S", "M", "L", "XL"}, labels)
	require.Equal(t, "1-s", got.Variants[0].ID)
	require.NotNil(t, got.DefaultVariantID)
	require.Equal(t, "1-s", *got.DefaultVariantID)
}

func TestEnrichColorAxisStripsWhitespaceFromVariantID(t *testing.T) {
	got := Enrich(item("8", "electronics"))

	require.Equal(t, model.VariantTypeColor, got.VariantType)
	require.Len(t, got.Variants, 3)
	require.Equal(t, "8-spacegray", got.Variants[2].ID)
	require.Equal(t, "Space Gray", got.Variants[2].Label)
}

func TestEnrichDefaultVariantSkipsOutOfStock(t *testing.T) {
	got := Enrich(item("18", "men's clothing"))

	require.True(t, got.InStock)
	require.False(t, got.Variants[0].InStock)
	require.True(t, got.Variants[1].InStock)
	require.Equal(t, "18-m", *got.DefaultVariantID)
}

func TestEnrichOutOfStockItemForcesVariantsOut(t *testing.T) {
	got := Enrich(item("11", "jewelery"))

	require.False(t, got.InStock)
	require.Equal(t, 5, got.StockCount)
	for _, v := range got.Variants {
		require.False(t, v.InStock, v.ID)
	}
	require.Equal(t, "11-gold", *got.DefaultVariantID, "falls back to first variant")
}

func TestEnrichUnknownCategoryFallsBackToDefaultPalette(t *testing.T) {
	got := Enrich(item("3", "garden tools"))

	require.Equal(t, model.VariantTypeColor, got.VariantType)
	require.Equal(t, []string{"Black", "Navy", "Olive", "Sand"}, got.Colors)
	require.Len(t, got.Variants, 4)
}

func TestEnrichStockCouplingHoldsForManyIDs(t *testing.T) {
	for i := 0; i < 2000; i++ {
		got := Enrich(item(strconv.Itoa(i), "women's clothing"))
		require.GreaterOrEqual(t, got.StockCount, 0)
		if got.InStock {
			require.GreaterOrEqual(t, got.StockCount, 1)
			continue
		}
		for _, v := range got.Variants {
			require.False(t, v.InStock, "item %d variant %s", i, v.ID)
		}
	}
}

func TestEnrichDiscountBound(t *testing.T) {
	for i := 0; i < 10000; i++ {
		got := Enrich(item(strconv.Itoa(i), "electronics"))
		require.GreaterOrEqual(t, got.DiscountPercent, 0)
		require.LessOrEqual(t, got.DiscountPercent, 29)
	}
}

func TestSKU(t *testing.T) {
	require.Equal(t, "FS-0007", SKU("7"))
	require.Equal(t, "FS-1234", SKU("1234"))
	require.Equal(t, "FS-98765", SKU("98765"))
	require.Equal(t, "FS-00ab", SKU("ab"))
}

func TestDefaultVariantIDEmpty(t *testing.T) {
	require.Nil(t, DefaultVariantID(nil))
}

func TestRandRange(t *testing.T) {
	for i := -500; i < 500; i++ {
		r := Rand(float64(i) * 1.5)
		require.GreaterOrEqual(t, r, 0.0)
		require.Less(t, r, 1.0)
	}
}

func TestSeedForTextualIDIsStable(t *testing.T) {
	require.Equal(t, Seed("sku-abc"), Seed("sku-abc"))
	require.NotEqual(t, Seed("sku-abc"), Seed("sku-abd"))
	require.Equal(t, 42.0, Seed("42"))
}

func TestTablesReturnCopies(t *testing.T) {
	colors := Colors("electronics")
	colors[0] = "Mutated"
	require.Equal(t, "Black", Colors("electronics")[0])
	require.Nil(t, Sizes("electronics"))
}
