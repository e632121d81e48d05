package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalizerFallsBackToEnglish(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	require.Equal(t, "Add to Cart", tr.Localizer("fr").T(MsgAddToCart, nil))
	require.Equal(t, "Stok Habis", tr.Localizer("id").T(MsgOutOfStock, nil))
	require.Equal(t, "Select Size", tr.Localizer("en-US").T(MsgSelectVariant, map[string]any{"Type": "Size"}))
}

func TestLocalizerUnknownMessageReturnsID(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	require.Equal(t, "card.nope", tr.Localizer("en").T("card.nope", nil))
}
