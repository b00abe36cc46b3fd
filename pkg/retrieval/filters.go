// PURPOSE: Hard filter set and query-text auto-detection

package retrieval

import (
	"regexp"
	"strconv"
	"strings"
)

// Filters are applied as hard predicates after lexical scoring.
// Zero values mean "not set".
type Filters struct {
	Category          string
	Categories        []string // bundle context: any of these categories
	Color             string
	Material          string
	Style             string
	RoomType          string
	Tags              []string
	PriceMin          float64
	PriceMax          float64
	IncludeOutOfStock bool
	Excludes          map[string]string // attribute -> negated value
}

var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)under\s+\$?(\d+)`),
	regexp.MustCompile(`(?i)less\s+than\s+\$?(\d+)`),
	regexp.MustCompile(`(?i)below\s+\$?(\d+)`),
	regexp.MustCompile(`(?i)cheaper\s+than\s+\$?(\d+)`),
	regexp.MustCompile(`(?i)max(?:imum)?\s+\$?(\d+)`),
}

// Subjective price words map to an upper bound instead of being dropped.
var subjectivePriceMap = []struct {
	term string
	max  float64
}{
	{"cheap", 200},
	{"affordable", 300},
	{"budget", 250},
	{"inexpensive", 250},
	{"expensive", 500},
	{"premium", 800},
	{"luxury", 1000},
	{"high-end", 1000},
	{"designer", 1200},
}

var colorKeywords = []string{
	"black", "white", "red", "green", "blue", "brown", "grey", "gray",
	"yellow", "orange", "pink", "purple", "beige",
}

var materialKeywords = []string{
	"wood", "metal", "leather", "fabric", "glass", "plastic", "steel",
}

var roomKeywords = []string{"office", "bedroom", "living room", "dining room"}

// DetectFilters fills unset filter fields from plain-text cues in the
// query: color and material words, room mentions, explicit price caps
// ("under $500") and subjective price words ("cheap").
func DetectFilters(query string, filters Filters) Filters {
	lower := strings.ToLower(query)

	if filters.Color == "" {
		for _, color := range colorKeywords {
			if strings.Contains(lower, color) {
				filters.Color = color
				break
			}
		}
	}

	if filters.Material == "" {
		padded := " " + lower + " "
		for _, mat := range materialKeywords {
			if strings.Contains(padded, " "+mat+" ") {
				filters.Material = mat
				break
			}
		}
	}

	if filters.RoomType == "" {
		for _, room := range roomKeywords {
			if strings.Contains(lower, room) {
				filters.RoomType = room
				break
			}
		}
	}

	if filters.PriceMax == 0 {
		for _, pattern := range pricePatterns {
			if m := pattern.FindStringSubmatch(lower); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					filters.PriceMax = v
				}
				break
			}
		}
	}

	if filters.PriceMax == 0 {
		for _, sub := range subjectivePriceMap {
			if containsWord(lower, sub.term) {
				filters.PriceMax = sub.max
				break
			}
		}
	}

	return filters
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(text[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(text) || !isWordChar(text[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-'
}
