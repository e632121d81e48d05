package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ItemID identifies a catalog item. Upstream catalogs send either a JSON
// number or a JSON string; both decode into the same textual form.
type ItemID string

func (id ItemID) String() string {
	return string(id)
}

// Numeric reports the id's value when it is a plain number.
func (id ItemID) Numeric() (float64, bool) {
	s := strings.TrimSpace(string(id))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("item id: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

// MarshalJSON writes canonical numeric ids as JSON numbers and everything
// else as strings, so "7" round-trips as 7 but "007" stays "007".
func (id ItemID) MarshalJSON() ([]byte, error) {
	if f, ok := id.Numeric(); ok && strconv.FormatFloat(f, 'f', -1, 64) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CatalogItem is a product as delivered by the upstream catalog.
type CatalogItem struct {
	ID          ItemID  `json:"id"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Title       string  `json:"title"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
	Rating      *Rating `json:"rating,omitempty"`
}
