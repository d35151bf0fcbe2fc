package domain

import (
	"encoding/json"
	"errors"
	"strconv"
)

var ErrProductNotFound = errors.New("product not found")
var ErrCatalogUnavailable = errors.New("catalog upstream unavailable")

// Product is the normalized view of a catalog item. The catalog API has no
// fixed response contract, so the unified fields are resolved from several
// alternative upstream names (id/prodEid, name/title, price/prc) and the raw
// upstream document is carried alongside for pass-through.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Price     float64 `json:"price"`

	// Raw holds every field the upstream returned, untouched.
	Raw map[string]any `json:"-"`
}

// MarshalJSON merges the raw upstream fields with the unified ones, the
// unified fields winning on collision. Consumers see everything upstream
// sent plus a stable id/name/thumbnail/price.
func (p Product) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Raw)+4)
	for k, v := range p.Raw {
		out[k] = v
	}
	out["id"] = p.ID
	out["name"] = p.Name
	out["price"] = p.Price
	if p.Thumbnail != "" {
		out["thumbnail"] = p.Thumbnail
	}
	return json.Marshal(out)
}

// NormalizeProduct builds a Product from an arbitrary upstream document,
// probing the alternative field names the catalog API is known to use.
func NormalizeProduct(raw map[string]any) Product {
	return Product{
		ID:        firstString(raw, "prodEid", "prodEId", "id"),
		Name:      firstString(raw, "name", "title"),
		Thumbnail: firstString(raw, "thumbnail", "thumbnailUrl", "image"),
		Price:     firstNumber(raw, "price", "prc"),
		Raw:       raw,
	}
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			// Numeric ids arrive as JSON numbers.
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func firstNumber(raw map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}
