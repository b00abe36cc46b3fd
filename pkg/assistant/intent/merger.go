// PURPOSE: Folds a clarification reply back into the interrupted query

package intent

import (
	"regexp"
	"strings"
)

var materialSynonyms = map[string]string{
	"wooden":   "wood",
	"metallic": "metal",
}

// Multi-word rooms become a single token so downstream filters match.
var roomAliases = map[string]string{
	"living room": "living_room",
	"dining room": "dining_room",
	"bed room":    "bedroom",
}

var roomWords = map[string]bool{
	"office": true, "bedroom": true, "living_room": true, "dining_room": true,
	"kitchen": true, "outdoor": true, "gym": true, "school": true,
	"garage": true, "study": true, "lounge": true, "kids": true, "nursery": true,
}

var bareBudgetPattern = regexp.MustCompile(`^(under|below|max)\s*\$?(\d+)$`)

// MergeClarificationResponse combines the entities captured before a
// clarification with the user's reply and rebuilds the search query. The
// category, when present, always leads the query and is never dropped.
func (d *Detector) MergeClarificationResponse(partial map[string]string, reply string, vagueType string) map[string]string {
	merged := make(map[string]string, len(partial)+2)
	for k, v := range partial {
		merged[k] = v
	}

	fragment := normalizeClarification(strings.TrimSpace(strings.ToLower(reply)))
	classifyFragment(fragment, merged)

	if category := merged["category"]; category != "" {
		if fragment != "" {
			merged["query"] = category + " " + fragment
		} else {
			merged["query"] = category
		}
	} else {
		merged["query"] = fragment
	}
	merged["vague_type"] = vagueType
	return merged
}

func normalizeClarification(fragment string) string {
	for phrase, alias := range roomAliases {
		fragment = strings.ReplaceAll(fragment, phrase, alias)
	}

	if rest, ok := strings.CutPrefix(fragment, "for "); ok {
		return "for " + rest
	}

	if syn, ok := materialSynonyms[fragment]; ok {
		return syn
	}

	if m := bareBudgetPattern.FindStringSubmatch(fragment); m != nil {
		return m[1] + " $" + m[2]
	}

	// Bare room or purpose words read as "for <room>".
	if roomWords[fragment] {
		return "for " + fragment
	}

	return fragment
}

// classifyFragment records the reply under its entity slot so later
// validation sees the filter, not just the query text.
func classifyFragment(fragment string, merged map[string]string) {
	value := strings.TrimPrefix(fragment, "for ")

	switch {
	case roomWords[value]:
		if merged["room_type"] == "" {
			merged["room_type"] = value
		}
	case isOneOf(value, materialEntities):
		if merged["material"] == "" {
			merged["material"] = value
		}
	case isOneOf(value, colorEntities):
		if merged["color"] == "" {
			merged["color"] = value
		}
	case isOneOf(value, styleEntities):
		if merged["style"] == "" {
			merged["style"] = value
		}
	case strings.HasPrefix(value, "under $"):
		if merged["price_max"] == "" {
			merged["price_max"] = strings.TrimPrefix(value, "under $")
		}
	}
}

func isOneOf(value string, set []string) bool {
	for _, s := range set {
		if value == s {
			return true
		}
	}
	return false
}
