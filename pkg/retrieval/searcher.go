// PURPOSE: Ranked product search over the catalog index

package retrieval

import (
	"sort"
	"strings"

	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/store"
)

const DefaultLimit = 5

// Searcher executes lexical queries with hard filters against the
// catalog index. It holds no state of its own.
type Searcher struct {
	index *catalog.Index
}

func NewSearcher(index *catalog.Index) *Searcher {
	return &Searcher{index: index}
}

// Search tokenizes the query, scores candidates, applies hard filters
// and returns a tagged result. An empty query with filters is valid and
// browses the category. Ranking is fully deterministic: score desc,
// then price asc, then catalog insertion order.
func (s *Searcher) Search(query string, filters Filters, limit int) Result {
	if !s.index.Ready() {
		return catalogNotReady()
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	filters = DetectFilters(query, filters)

	var candidates []catalog.Candidate
	tokens := catalog.Tokenize(query)
	if len(tokens) == 0 {
		// Category-browse mode: every product is a candidate.
		for pos, p := range s.index.Products() {
			candidates = append(candidates, catalog.Candidate{Product: p, Position: pos})
		}
	} else {
		candidates = s.index.Candidates(tokens)
	}

	// Base pass: everything except color/material/style, so attribute
	// misses can report which values would have matched.
	base := make([]catalog.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if s.passesBase(&c.Product, filters) {
			base = append(base, c)
		}
	}

	final := make([]catalog.Candidate, 0, len(base))
	for _, c := range base {
		if s.passesAttributes(&c.Product, filters) {
			final = append(final, c)
		}
	}

	if len(final) == 0 && len(base) > 0 {
		if attr, requested, values := s.missedAttribute(base, filters); attr != "" {
			return noAttributeMatch(attr, requested, values)
		}
	}

	sort.SliceStable(final, func(i, j int) bool {
		if final[i].Score != final[j].Score {
			return final[i].Score > final[j].Score
		}
		if final[i].Product.Price != final[j].Product.Price {
			return final[i].Product.Price < final[j].Product.Price
		}
		return final[i].Position < final[j].Position
	})

	if len(final) > limit {
		final = final[:limit]
	}

	products := make([]store.Product, len(final))
	for i, c := range final {
		products[i] = c.Product
	}
	return found(products)
}

// Product resolves a single product by id.
func (s *Searcher) Product(id string) (store.Product, bool) {
	return s.index.Product(id)
}

func (s *Searcher) passesBase(p *store.Product, f Filters) bool {
	// Zero or missing price is a data error, never shown.
	if p.Price <= 0 {
		return false
	}
	if !f.IncludeOutOfStock && !p.InStock() {
		return false
	}
	if f.PriceMin > 0 && p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if f.Category != "" && !matchesCategory(p, f.Category) {
		return false
	}
	if len(f.Categories) > 0 && !matchesAnyCategory(p, f.Categories) {
		return false
	}
	if f.RoomType != "" && !matchesRoom(p, f.RoomType) {
		return false
	}
	if len(f.Tags) > 0 && !matchesTags(p, f.Tags) {
		return false
	}
	for attr, value := range f.Excludes {
		if matchesAttribute(p, attr, value) {
			return false
		}
	}
	return true
}

func (s *Searcher) passesAttributes(p *store.Product, f Filters) bool {
	if f.Color != "" && !matchesAttribute(p, "color", f.Color) {
		return false
	}
	if f.Material != "" && !matchesAttribute(p, "material", f.Material) {
		return false
	}
	if f.Style != "" && !matchesAttribute(p, "style", f.Style) {
		return false
	}
	return true
}

// missedAttribute finds the first attribute filter that eliminated all
// base candidates and collects the values that do exist among them.
func (s *Searcher) missedAttribute(base []catalog.Candidate, f Filters) (attr, requested string, values []string) {
	checks := []struct {
		attr  string
		value string
	}{
		{"color", f.Color},
		{"material", f.Material},
		{"style", f.Style},
	}

	for _, check := range checks {
		if check.value == "" {
			continue
		}
		any := false
		for _, c := range base {
			if matchesAttribute(&c.Product, check.attr, check.value) {
				any = true
				break
			}
		}
		if !any {
			return check.attr, check.value, availableValues(base, check.attr)
		}
	}
	return "", "", nil
}

func availableValues(base []catalog.Candidate, attr string) []string {
	seen := make(map[string]bool)
	prefix := attr + "_"
	for _, c := range base {
		for _, tag := range c.Product.Tags {
			lower := strings.ToLower(tag)
			if strings.HasPrefix(lower, prefix) {
				seen[strings.TrimPrefix(lower, prefix)] = true
			} else if attr == "color" && isColorKeyword(lower) {
				seen[lower] = true
			}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func isColorKeyword(s string) bool {
	for _, c := range colorKeywords {
		if s == c {
			return true
		}
	}
	return false
}

// matchesCategory is deliberately loose: category fields vary between
// catalog sources, so it accepts substring overlap in either direction,
// significant-word overlap, title hits and category tags.
func matchesCategory(p *store.Product, target string) bool {
	target = strings.ToLower(target)
	cat := strings.ToLower(p.Category)
	sub := strings.ToLower(p.Subcategory)
	title := strings.ToLower(p.Title)

	if cat != "" && (strings.Contains(cat, target) || strings.Contains(target, cat)) {
		return true
	}
	if sub != "" && (strings.Contains(sub, target) || strings.Contains(target, sub)) {
		return true
	}

	significant := significantWords(target)
	catWords := wordSet(cat)
	subWords := wordSet(sub)
	for w := range significant {
		if catWords[w] || subWords[w] {
			return true
		}
		if len(w) > 3 && strings.Contains(title, w) {
			return true
		}
	}

	for _, tag := range p.Tags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, target) || lower == "category_"+target {
			return true
		}
	}
	return false
}

func matchesAnyCategory(p *store.Product, allowed []string) bool {
	cat := strings.ToLower(p.Category)
	sub := strings.ToLower(p.Subcategory)
	for _, a := range allowed {
		a = strings.ToLower(a)
		if a == "" {
			continue
		}
		if strings.Contains(cat, a) || (cat != "" && strings.Contains(a, cat)) {
			return true
		}
		if strings.Contains(sub, a) || (sub != "" && strings.Contains(a, sub)) {
			return true
		}
	}
	return false
}

func matchesRoom(p *store.Product, room string) bool {
	room = strings.ToLower(strings.ReplaceAll(room, "_", " "))
	haystacks := []string{
		strings.ToLower(p.Title),
		strings.ToLower(p.Description),
		strings.ToLower(p.Category),
	}
	for _, h := range haystacks {
		if strings.Contains(h, room) {
			return true
		}
	}
	return p.HasTagValue(room)
}

func matchesTags(p *store.Product, tags []string) bool {
	set := make(map[string]bool, len(p.Tags))
	for _, t := range p.Tags {
		set[strings.ToLower(t)] = true
	}
	for _, t := range tags {
		if set[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

// matchesAttribute checks tags first ("color_black", substring so "grey"
// hits "color_dark grey"), then title, then description.
func matchesAttribute(p *store.Product, attr, value string) bool {
	value = strings.ToLower(value)
	if p.HasTagValue(value) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), value) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Description), value)
}

func significantWords(s string) map[string]bool {
	skip := map[string]bool{"home": true, "and": true, "the": true, "a": true, "for": true}
	out := make(map[string]bool)
	for _, w := range strings.Fields(strings.ReplaceAll(s, "_", " ")) {
		if !skip[w] {
			out[w] = true
		}
	}
	return out
}

func wordSet(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.Fields(strings.ReplaceAll(s, "_", " ")) {
		out[w] = true
	}
	return out
}
