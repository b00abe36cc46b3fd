// PURPOSE: In-memory lexical index over the product catalog

package catalog

import (
	"math"
	"sort"
	"sync/atomic"

	"ai-shopassist-be/pkg/store"
)

// Field weights applied to term frequency at index time. A query token
// hitting the title counts much more than one hitting the description.
const (
	weightTitle       = 1.5
	weightCategory    = 1.2
	weightTags        = 1.0
	weightDescription = 0.4
)

// Mode selects how CandidateIDs combines postings across query tokens.
type Mode int

const (
	ModeUnion Mode = iota
	ModeIntersect
)

type posting struct {
	doc int     // position in snapshot.products
	tf  float64 // field-weighted term frequency
}

// snapshot is an immutable generation of the index. Rebuild creates a new
// one and swaps the pointer, so readers never observe a half-built state.
type snapshot struct {
	products []store.Product
	byID     map[string]int
	postings map[string][]posting
}

// Index holds the current catalog snapshot behind an atomic pointer.
// The zero state (no snapshot yet) is reported through Ready.
type Index struct {
	snap atomic.Pointer[snapshot]
}

func NewIndex() *Index {
	return &Index{}
}

// Candidate pairs a product with its lexical score and catalog position.
type Candidate struct {
	Product  store.Product
	Score    float64
	Position int
}

// Rebuild replaces the whole index from the given product set. Missing
// optional fields (description, tags) simply contribute no tokens.
func (ix *Index) Rebuild(products []store.Product) {
	next := &snapshot{
		products: make([]store.Product, len(products)),
		byID:     make(map[string]int, len(products)),
		postings: make(map[string][]posting),
	}
	copy(next.products, products)

	for doc := range next.products {
		p := &next.products[doc]
		if p.ID == "" {
			p.ID = p.SKU
		}
		next.byID[p.ID] = doc

		tf := make(map[string]float64)
		for _, tok := range Tokenize(p.Title) {
			tf[tok] += weightTitle
		}
		for _, tok := range Tokenize(p.Category) {
			tf[tok] += weightCategory
		}
		for _, tok := range Tokenize(p.Subcategory) {
			tf[tok] += weightCategory
		}
		for _, tag := range p.Tags {
			for _, tok := range Tokenize(tag) {
				tf[tok] += weightTags
			}
		}
		for _, tok := range Tokenize(p.Description) {
			tf[tok] += weightDescription
		}

		for tok, freq := range tf {
			next.postings[tok] = append(next.postings[tok], posting{doc: doc, tf: freq})
		}
	}

	ix.snap.Store(next)
}

// Ready reports whether a snapshot has been built at least once.
func (ix *Index) Ready() bool {
	return ix.snap.Load() != nil
}

// Size returns the number of indexed products.
func (ix *Index) Size() int {
	s := ix.snap.Load()
	if s == nil {
		return 0
	}
	return len(s.products)
}

// Product resolves an indexed product id (SKU).
func (ix *Index) Product(id string) (store.Product, bool) {
	s := ix.snap.Load()
	if s == nil {
		return store.Product{}, false
	}
	doc, ok := s.byID[id]
	if !ok {
		return store.Product{}, false
	}
	return s.products[doc], true
}

// Products returns all indexed products in catalog insertion order.
func (ix *Index) Products() []store.Product {
	s := ix.snap.Load()
	if s == nil {
		return nil
	}
	out := make([]store.Product, len(s.products))
	copy(out, s.products)
	return out
}

// CandidateIDs returns the ids of products matching the tokens, combined
// by union or intersection. Order follows catalog insertion order.
func (ix *Index) CandidateIDs(tokens []string, mode Mode) []string {
	s := ix.snap.Load()
	if s == nil || len(tokens) == 0 {
		return nil
	}

	hits := make(map[int]int)
	for _, tok := range tokens {
		for _, post := range s.postings[tok] {
			hits[post.doc]++
		}
	}

	docs := make([]int, 0, len(hits))
	for doc, n := range hits {
		if mode == ModeIntersect && n < len(tokens) {
			continue
		}
		docs = append(docs, doc)
	}
	sort.Ints(docs)

	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = s.products[doc].ID
	}
	return ids
}

// Candidates scores every product matching at least one token with a
// TF-IDF style score over the field-weighted term frequencies. Results
// come back in catalog insertion order; ranking is the caller's job.
func (ix *Index) Candidates(tokens []string) []Candidate {
	s := ix.snap.Load()
	if s == nil || len(tokens) == 0 {
		return nil
	}

	total := float64(len(s.products))
	scores := make(map[int]float64)
	for _, tok := range tokens {
		posts := s.postings[tok]
		if len(posts) == 0 {
			continue
		}
		idf := math.Log(1 + total/float64(len(posts)))
		for _, post := range posts {
			scores[post.doc] += post.tf * idf
		}
	}

	docs := make([]int, 0, len(scores))
	for doc := range scores {
		docs = append(docs, doc)
	}
	sort.Ints(docs)

	out := make([]Candidate, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Candidate{
			Product:  s.products[doc],
			Score:    scores[doc],
			Position: doc,
		})
	}
	return out
}
