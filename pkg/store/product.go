package store

import "strings"

// Product is the immutable-per-sync catalog record shared across the
// index, searcher, planner and session layers.
type Product struct {
	ID                string   `json:"id"`
	SKU               string   `json:"sku"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Subcategory       string   `json:"subcategory"`
	Tags              []string `json:"tags"`
	Price             float64  `json:"price"`
	Currency          string   `json:"currency"`
	InventoryQuantity int      `json:"inventory_quantity"`
	Available         bool     `json:"available"`
}

// InStock reports whether the product can be offered to the user.
func (p *Product) InStock() bool {
	return p.Available && p.InventoryQuantity > 0
}

// ColorTags extracts color values from tags like "Color_Black" or plain
// color names. Values are lowercased.
func (p *Product) ColorTags() []string {
	colors := make([]string, 0)
	for _, tag := range p.Tags {
		lower := strings.ToLower(tag)
		if strings.HasPrefix(lower, "color_") {
			colors = append(colors, strings.TrimPrefix(lower, "color_"))
		}
	}
	return colors
}

// HasTagValue reports whether value appears as a substring of any tag,
// so "grey" matches both "color_grey" and "color_dark grey".
func (p *Product) HasTagValue(value string) bool {
	value = strings.ToLower(value)
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), value) {
			return true
		}
	}
	return false
}
