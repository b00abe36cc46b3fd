// PURPOSE: Parses free-text bundle requests into item templates and constraints

package bundle

import (
	"regexp"
	"strconv"
	"strings"

	"ai-shopassist-be/pkg/assistant/taxonomy"
)

// ItemTemplate is one item type the bundle must or may contain.
type ItemTemplate struct {
	ItemType    string
	Quantity    int
	SearchTerms []string
	Required    bool
}

// Request is a parsed bundle request.
type Request struct {
	Budget            float64
	AllowedCategories []string
	Items             []ItemTemplate
	Color             string
	Material          string
	RoomType          string
	Descriptor        string
}

var itemAliases = map[string]string{
	"chairs": "chair", "chair": "chair",
	"tables": "table", "table": "table",
	"desks": "desk", "desk": "desk",
	"sofas": "sofa", "sofa": "sofa",
	"couches": "sofa", "couch": "sofa",
	"beds": "bed", "bed": "bed",
	"stools": "stool", "stool": "stool",
	"lockers": "locker", "locker": "locker",
	"cabinets": "cabinet", "cabinet": "cabinet",
	"shelves": "shelf", "shelf": "shelf",
}

var itemPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:x\s*)?(chairs?|tables?|desks?|sofas?|couches?|beds?|stools?|lockers?|cabinets?|shelves?)`)

var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)under\s+\$?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)budget\s+(?:of\s+)?\$?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)total\s+\$?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\$?(\d+(?:\.\d+)?)\s+budget`),
	// Trailing "for 150" only, so "for 2 chairs" never reads as a budget.
	regexp.MustCompile(`(?i)for\s+\$?(\d+(?:\.\d+)?)\s*$`),
}

var (
	colorKeywords = []string{
		"black", "white", "red", "green", "blue", "brown", "grey", "gray",
		"yellow", "orange", "pink", "purple", "beige",
	}
	materialKeywords   = []string{"wood", "metal", "leather", "fabric", "glass", "plastic", "steel"}
	roomKeywords       = []string{"office", "bedroom", "living room", "dining room", "outdoor", "gym"}
	descriptorKeywords = []string{"l shape", "l-shaped", "lshape", "corner"}
)

// ParseRequest builds a Request from free text. Explicit "2 chairs and a
// table" item counts win; otherwise the taxonomy's detected item phrases
// form the template so "bird cage" never degrades to a bare "cage" search.
func ParseRequest(text string, matcher *taxonomy.Matcher) Request {
	lower := strings.ToLower(text)
	req := Request{}

	for _, m := range itemPattern.FindAllStringSubmatch(text, -1) {
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty < 1 {
			qty = 1
		}
		raw := strings.ToLower(m[2])
		itemType, ok := itemAliases[raw]
		if !ok {
			itemType = strings.TrimSuffix(raw, "s")
		}
		req.Items = append(req.Items, ItemTemplate{
			ItemType:    itemType,
			Quantity:    qty,
			SearchTerms: []string{itemType},
			Required:    true,
		})
	}

	ctx := matcher.BundleContext(lower)
	req.AllowedCategories = ctx.AllowedCategories

	if len(req.Items) == 0 {
		for _, item := range ctx.DetectedItems {
			req.Items = append(req.Items, ItemTemplate{
				ItemType:    strings.ReplaceAll(item, " ", "_"),
				Quantity:    1,
				SearchTerms: []string{item},
				Required:    true,
			})
		}
	}

	for _, p := range budgetPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				req.Budget = v
				break
			}
		}
	}

	for _, c := range colorKeywords {
		if strings.Contains(lower, c) {
			req.Color = c
			break
		}
	}
	for _, m := range materialKeywords {
		if strings.Contains(lower, m) {
			req.Material = m
			break
		}
	}
	for _, r := range roomKeywords {
		if strings.Contains(lower, r) {
			req.RoomType = r
			break
		}
	}
	for _, d := range descriptorKeywords {
		if strings.Contains(lower, d) {
			req.Descriptor = "l shape"
			break
		}
	}

	return req
}
