// PURPOSE: Filter weight scoring, contradiction detection, clarification bypass

package filtering

import (
	"fmt"
	"strings"
)

// DefaultMinFilterWeight is the score a query must reach before search
// runs without clarification. A single clear product type is enough.
const DefaultMinFilterWeight = 1.0

const subjectiveTermWeight = 0.3

// filterWeights scores structured entities. Order is fixed so the
// present-filter list stays deterministic.
var filterWeights = []struct {
	name   string
	weight float64
}{
	{"category", 1.0},
	{"subcategory", 1.0},
	{"product_type", 1.0},
	{"color", 1.0},
	{"material", 1.0},
	{"style", 1.0},
	{"room_type", 0.8},
	{"descriptor", 0.8},
	{"price_max", 0.5},
	{"age_group", 0.5},
}

var categoryKeywords = []string{
	"fitness", "gym", "exercise", "workout", "training", "cardio",
	"treadmill", "treadmills", "exercise bike", "rowing", "rower", "elliptical",
	"weightlifting", "weight lifting", "weights", "dumbbell", "dumbbells",
	"kettlebell", "kettlebells", "barbell", "barbells", "weight plates", "olympic",
	"mma", "boxing", "muay thai", "kickboxing", "martial arts", "karate",
	"taekwondo", "judo", "jiu jitsu", "bjj", "sparring", "punching",
	"trampoline", "air track", "gymnastics", "yoga", "pilates",
	"massage", "relaxation", "foam roller", "recovery", "stretching",
	"rugby", "basketball", "sports",
	"dog", "cat", "pet", "puppy", "kitten", "bird", "aquarium", "fish tank",
	"scooter", "e-scooter", "escooter", "electric scooter",
	"office", "gaming", "ergonomic", "furniture", "desk", "chair", "table",
	"sofa", "bed", "mattress", "cabinet", "shelf", "bookcase",
}

var productTypeKeywords = []string{
	"gloves", "bag", "bags", "pads", "shield", "shields", "ring", "rings",
	"uniform", "belt", "helmet", "guard", "guards", "wraps", "protector",
	"bench", "benches", "rack", "racks", "mat", "mats", "plates", "sets",
	"machine", "machines", "equipment", "gear", "roller", "ball", "bands",
	"kennel", "kennels", "cage", "cages", "crate", "tree", "tower",
	"bed", "beds", "bowl", "bowls", "collar", "leash", "toy", "toys",
	"pump", "filter", "litter", "carrier",
	"scooter", "scooters", "wheel", "wheels", "battery",
	"chair", "chairs", "table", "tables", "desk", "desks", "sofa", "sofas",
	"cabinet", "cabinets", "shelf", "shelves", "stool", "stools",
	"ottoman", "recliner", "bookcase",
}

var subjectiveTerms = []string{
	"cheap", "affordable", "budget", "expensive", "premium", "luxury",
	"small", "compact", "large", "spacious", "tiny", "huge",
	"cozy", "comfortable", "sturdy", "elegant", "stylish",
	"horizontal", "vertical", "adjustable", "stackable", "foldable",
	"leather", "padded", "heavy", "light", "professional", "training", "sparring",
}

var incompatiblePairs = [][2]string{
	{"cheap", "luxury"},
	{"cheap", "expensive"},
	{"cheap", "premium"},
	{"affordable", "luxury"},
	{"budget", "premium"},
	{"small", "large"},
	{"compact", "spacious"},
	{"minimalist", "ornate"},
	{"simple", "ornate"},
	{"modern", "classic"},
	{"modern", "vintage"},
	{"contemporary", "traditional"},
}

var bypassPhrases = []string{
	"show me anything",
	"just search",
	"you choose",
	"surprise me",
	"whatever",
	"don't care",
	"any will do",
	"any is fine",
	"anything",
	"just show me",
}

var shortAffirmatives = []string{"ok", "okay", "yes", "sure", "fine", "go ahead"}

// Validation is the outcome of scoring a query's filters.
type Validation struct {
	Valid          bool
	Weight         float64
	Message        string
	PresentFilters []string
}

// Contradiction reports two terms that cannot both apply.
type Contradiction struct {
	Term1   string
	Term2   string
	Message string
}

// Validator scores filter combinations against a minimum weight.
type Validator struct {
	minWeight float64
}

func NewValidator(minWeight float64) *Validator {
	if minWeight <= 0 {
		minWeight = DefaultMinFilterWeight
	}
	return &Validator{minWeight: minWeight}
}

// ValidateFilterCount scores the structured entities plus keyword signals
// in the raw query, and says whether search may proceed.
func (v *Validator) ValidateFilterCount(entities map[string]string, query string) Validation {
	queryLower := strings.ToLower(query)

	total := 0.0
	present := make([]string, 0, 4)

	if containsAnySubstring(queryLower, categoryKeywords) {
		total += 1.0
		present = append(present, "category")
	}
	if containsAnySubstring(queryLower, productTypeKeywords) {
		total += 1.0
		present = append(present, "product_type")
	}

	for _, fw := range filterWeights {
		if entities[fw.name] != "" {
			total += fw.weight
			present = append(present, fw.name)
		}
	}

	total += float64(countSubjectiveTerms(queryLower)) * subjectiveTermWeight

	valid := total >= v.minWeight
	msg := ""
	if valid {
		msg = fmt.Sprintf("Sufficient filters provided (weight: %.1f)", total)
	} else {
		msg = filterSuggestion(present, v.minWeight-total)
	}

	return Validation{Valid: valid, Weight: total, Message: msg, PresentFilters: present}
}

// DetectContradictions finds the first incompatible term pair present in
// the query or entity values.
func (v *Validator) DetectContradictions(entities map[string]string, query string) (*Contradiction, bool) {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(query))
	for _, fw := range filterWeights {
		if val := entities[fw.name]; val != "" {
			sb.WriteByte(' ')
			sb.WriteString(strings.ToLower(val))
		}
	}
	text := sb.String()

	for _, pair := range incompatiblePairs {
		if containsWord(text, pair[0]) && containsWord(text, pair[1]) {
			return &Contradiction{
				Term1:   pair[0],
				Term2:   pair[1],
				Message: contradictionMessage(pair[0], pair[1]),
			}, true
		}
	}
	return nil, false
}

// IsBypassPhrase reports whether the user asked to skip clarification.
func (v *Validator) IsBypassPhrase(message string) bool {
	lower := strings.TrimSpace(strings.ToLower(message))
	for _, phrase := range bypassPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, s := range shortAffirmatives {
		if lower == s {
			return true
		}
	}
	return false
}

// FilterSummary renders the active filters for a user-facing reply.
func (v *Validator) FilterSummary(entities map[string]string) string {
	parts := make([]string, 0, 6)
	if c := entities["category"]; c != "" {
		parts = append(parts, c)
	}
	if c := entities["color"]; c != "" {
		parts = append(parts, c+" color")
	}
	if m := entities["material"]; m != "" {
		parts = append(parts, m+" material")
	}
	if s := entities["style"]; s != "" {
		parts = append(parts, s+" style")
	}
	if r := entities["room_type"]; r != "" {
		parts = append(parts, "for "+r)
	}
	if a := entities["age_group"]; a != "" {
		parts = append(parts, "for "+a)
	}
	if p := entities["price_max"]; p != "" {
		parts = append(parts, "under $"+p)
	}
	if len(parts) == 0 {
		return "no specific filters"
	}
	return strings.Join(parts, ", ")
}

func filterSuggestion(present []string, neededWeight float64) string {
	if len(present) == 0 {
		return "Is there anything specific you have in mind? (For example: size, color, material, price range, or any other preference)"
	}

	has := func(names ...string) bool {
		for _, n := range names {
			for _, p := range present {
				if p == n {
					return true
				}
			}
		}
		return false
	}

	suggestions := make([]string, 0, 3)
	hasCategory := has("category")
	hasAttribute := has("color", "material", "style", "descriptor")

	if hasCategory && !hasAttribute {
		suggestions = append(suggestions, "color, material, or style")
	} else if hasAttribute && !hasCategory {
		suggestions = append(suggestions, "furniture type (chair, table, desk, etc.)")
	}
	if !has("room_type", "age_group") {
		suggestions = append(suggestions, "room or purpose (office, bedroom, for kids, gym, school, etc.)")
	}
	if !has("price_max") && neededWeight >= 0.5 {
		suggestions = append(suggestions, "price range")
	}

	if len(suggestions) > 0 {
		if len(suggestions) > 2 {
			suggestions = suggestions[:2]
		}
		return fmt.Sprintf("Is there anything specific you have in mind? (For example: %s, or any other preference)", strings.Join(suggestions, ", "))
	}
	return "Can you please tell me more about what you want?"
}

func contradictionMessage(term1, term2 string) string {
	priceTerms := map[string]bool{"cheap": true, "affordable": true, "budget": true}
	premiumTerms := map[string]bool{"luxury": true, "expensive": true, "premium": true}
	if priceTerms[term1] && premiumTerms[term2] {
		return fmt.Sprintf("I noticed you mentioned both '%s' and '%s'. Would you prefer: (A) Affordable options, (B) Premium options, or (C) Mid-range quality furniture?", term1, term2)
	}

	smallTerms := map[string]bool{"small": true, "compact": true}
	largeTerms := map[string]bool{"large": true, "spacious": true}
	if smallTerms[term1] && largeTerms[term2] {
		return fmt.Sprintf("I see both '%s' and '%s' mentioned. Which size do you prefer: (A) Compact/small, or (B) Large/spacious?", term1, term2)
	}

	modernTerms := map[string]bool{"modern": true, "contemporary": true, "minimalist": true}
	classicTerms := map[string]bool{"classic": true, "traditional": true, "vintage": true, "ornate": true}
	if modernTerms[term1] && classicTerms[term2] {
		return fmt.Sprintf("You mentioned both '%s' and '%s' styles. Which direction would you like: (A) Modern/contemporary, or (B) Classic/traditional?", term1, term2)
	}

	return fmt.Sprintf("I noticed both '%s' and '%s' in your request. Could you clarify which one you prefer?", term1, term2)
}

func countSubjectiveTerms(queryLower string) int {
	count := 0
	for _, term := range subjectiveTerms {
		if containsWord(queryLower, term) {
			count++
		}
	}
	// Cap to avoid over-counting flowery queries.
	if count > 3 {
		count = 3
	}
	return count
}

func containsAnySubstring(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		if (start == 0 || !isWordChar(text[start-1])) &&
			(end == len(text) || !isWordChar(text[end])) {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
