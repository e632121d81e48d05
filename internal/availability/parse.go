package availability

import (
	"encoding/json"
	"math"
	"strings"
)

// ParseMap decodes a flat JSON object into a Map. Values are coerced by
// truthiness: false, 0, NaN, "" and null are false, anything else is true.
// Empty input yields an empty map. Malformed input yields an empty map
// and ok=false.
func ParseMap(src []byte) (m Map, ok bool) {
	if len(strings.TrimSpace(string(src))) == 0 {
		return Map{}, true
	}
	var raw map[string]any
	if err := json.Unmarshal(src, &raw); err != nil {
		return Map{}, false
	}
	return FromValues(raw), true
}

// FromValues builds a Map from arbitrary decoded JSON values.
func FromValues(raw map[string]any) Map {
	m := make(Map, len(raw))
	for k, v := range raw {
		m[k] = Truthy(v)
	}
	return m
}

// Truthy applies JavaScript Boolean() semantics to a decoded JSON value.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t != ""
		}
		return f != 0 && !math.IsNaN(f)
	case string:
		return t != ""
	default:
		return true
	}
}
