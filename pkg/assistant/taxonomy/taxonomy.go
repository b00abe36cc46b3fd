// PURPOSE: Keyword/synonym matching of free text against the catalog taxonomy

package taxonomy

import (
	"sort"
	"strings"
)

// Matcher resolves free text against the static taxonomy tables. It is
// stateless; a single instance is shared across requests.
type Matcher struct {
	items []itemCategory // sorted longest phrase first
}

func NewMatcher() *Matcher {
	items := make([]itemCategory, len(itemCategories))
	copy(items, itemCategories)
	// Longest/most-specific phrase wins; equal lengths keep declaration order.
	sort.SliceStable(items, func(i, j int) bool {
		return len(items[i].Item) > len(items[j].Item)
	})
	return &Matcher{items: items}
}

// MatchCategory maps text to the best top-level group (pet, fitness,
// office, furniture, outdoor, electronics) by keyword score. No match is
// a valid outcome.
func (m *Matcher) MatchCategory(text string) (string, bool) {
	lower := strings.ToLower(text)

	best := ""
	bestScore := 0
	for _, g := range groups {
		score := 0
		for _, kw := range g.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = g.Name
			bestScore = score
		}
	}
	return best, bestScore > 0
}

// MatchSubcategory maps text to the most specific catalog category via
// the item phrase table, falling back to catalog category names.
func (m *Matcher) MatchSubcategory(text string) (string, bool) {
	lower := strings.ToLower(text)

	for _, it := range m.items {
		if strings.Contains(lower, it.Item) {
			return it.Categories[0], true
		}
	}

	for _, cat := range Categories {
		if strings.Contains(lower, strings.ToLower(cat)) {
			return cat, true
		}
	}
	return "", false
}

// ParentOf returns the group a catalog category belongs to. Declaration
// order breaks ties for categories listed under several groups.
func (m *Matcher) ParentOf(subcategory string) (string, bool) {
	for _, g := range groups {
		for _, cat := range g.Categories {
			if strings.EqualFold(cat, subcategory) {
				return g.Name, true
			}
		}
	}
	return "", false
}

// GroupCategories returns the catalog categories under a group.
func (m *Matcher) GroupCategories(group string) []string {
	for _, g := range groups {
		if g.Name == group {
			out := make([]string, len(g.Categories))
			copy(out, g.Categories)
			return out
		}
	}
	return nil
}

// CategoriesForItem returns the candidate categories for a concrete item
// phrase, most relevant first.
func (m *Matcher) CategoriesForItem(item string) []string {
	lower := strings.ToLower(strings.TrimSpace(item))

	for _, it := range m.items {
		if it.Item == lower {
			return append([]string(nil), it.Categories...)
		}
	}
	for _, it := range m.items {
		if strings.Contains(lower, it.Item) || strings.Contains(it.Item, lower) {
			return append([]string(nil), it.Categories...)
		}
	}

	matches := make([]string, 0)
	for _, cat := range Categories {
		catLower := strings.ToLower(cat)
		if strings.Contains(catLower, lower) || strings.Contains(lower, catLower) {
			matches = append(matches, cat)
		}
	}
	return matches
}

// TranslateVaguePhrase recognizes known indirect phrases ("back hurts",
// "new puppy") and returns their category/search-term mapping.
func (m *Matcher) TranslateVaguePhrase(text string) (*VagueTranslation, bool) {
	lower := strings.ToLower(text)
	for i := range vaguePhrases {
		if strings.Contains(lower, vaguePhrases[i].Phrase) {
			vt := vaguePhrases[i]
			return &vt, true
		}
	}
	return nil, false
}

// BundleContext resolves a bundle request into the categories allowed for
// its items plus the concrete items detected in the text.
type BundleContext struct {
	Group             string
	AllowedCategories []string
	DetectedItems     []string
}

func (m *Matcher) BundleContext(text string) BundleContext {
	lower := strings.ToLower(text)

	group, hasGroup := m.MatchCategory(lower)

	detected := make([]string, 0)
	itemCats := make([]string, 0)
	seenItemCat := make(map[string]bool)
	for _, it := range m.items {
		if strings.Contains(lower, it.Item) {
			detected = append(detected, it.Item)
			for _, c := range it.Categories {
				if !seenItemCat[c] {
					itemCats = append(itemCats, c)
					seenItemCat[c] = true
				}
			}
		}
	}

	allowed := make([]string, 0)
	if hasGroup {
		allowed = m.GroupCategories(group)
	} else {
		allowed = itemCats
	}

	ctx := BundleContext{AllowedCategories: allowed, DetectedItems: detected}
	if hasGroup {
		ctx.Group = group
	}
	return ctx
}
