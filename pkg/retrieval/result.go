// PURPOSE: Tagged search outcome so callers branch on an explicit variant

package retrieval

import "ai-shopassist-be/pkg/store"

// Tag discriminates the search outcome.
type Tag int

const (
	// Found carries zero or more ranked products. Zero products with
	// Found means the query genuinely matched nothing.
	Found Tag = iota

	// NoAttributeMatch means the category/query matched products but
	// none satisfied an attribute filter; AvailableValues lists the
	// values that do exist so the caller can offer alternatives.
	NoAttributeMatch

	// CatalogNotReady means the index has never been built. Distinct
	// from zero results.
	CatalogNotReady
)

// Result is the outcome of a single search.
type Result struct {
	Tag             Tag             `json:"tag"`
	Products        []store.Product `json:"products"`
	Attribute       string          `json:"attribute,omitempty"`
	Requested       string          `json:"requested,omitempty"`
	AvailableValues []string        `json:"available_values,omitempty"`
}

func found(products []store.Product) Result {
	return Result{Tag: Found, Products: products}
}

func noAttributeMatch(attribute, requested string, available []string) Result {
	return Result{
		Tag:             NoAttributeMatch,
		Products:        []store.Product{},
		Attribute:       attribute,
		Requested:       requested,
		AvailableValues: available,
	}
}

func catalogNotReady() Result {
	return Result{Tag: CatalogNotReady, Products: []store.Product{}}
}
