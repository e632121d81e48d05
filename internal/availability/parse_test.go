package availability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMapCoercesTruthiness(t *testing.T) {
	m, ok := ParseMap([]byte(`{
		"S|Black": false,
		"S|Navy": true,
		"M|": 0,
		"L|": 1,
		"XL|": "",
		"|Olive": "no",
		"|Sand": null,
		"|Gold": {},
		"|Silver": []
	}`))
	require.True(t, ok)
	require.Equal(t, Map{
		"S|Black": false,
		"S|Navy":  true,
		"M|":      false,
		"L|":      true,
		"XL|":     false,
		"|Olive":  true,
		"|Sand":   false,
		"|Gold":   true,
		"|Silver": true,
	}, m)
}

func TestParseMapMalformedIsEmpty(t *testing.T) {
	for _, src := range []string{`{"S|":`, `[1,2]`, `"S|"`, `not json`} {
		m, ok := ParseMap([]byte(src))
		require.False(t, ok, src)
		require.Empty(t, m, src)
		require.NotNil(t, m, src)
	}
}

func TestParseMapBlankIsEmpty(t *testing.T) {
	m, ok := ParseMap(nil)
	require.True(t, ok)
	require.Empty(t, m)

	m, ok = ParseMap([]byte("   \n"))
	require.True(t, ok)
	require.Empty(t, m)
}

func TestTruthy(t *testing.T) {
	require.False(t, Truthy(nil))
	require.False(t, Truthy(0.0))
	require.True(t, Truthy(-2.5))
	require.False(t, Truthy(""))
	require.True(t, Truthy("false"))
	require.True(t, Truthy(map[string]any{}))
	require.False(t, Truthy(0))
	require.True(t, Truthy(int64(3)))
}
