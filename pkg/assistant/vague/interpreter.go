// PURPOSE: Turns indirect, slangy, or constraint-laden queries into search plans

package vague

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ai-shopassist-be/pkg/assistant/taxonomy"
)

// DefaultConfidenceThreshold is the floor below which a pattern match is
// treated as a clarification opportunity instead of a search plan.
const DefaultConfidenceThreshold = 0.5

// Analysis is the interpretation of one user query.
type Analysis struct {
	IsVague              bool              `json:"is_vague"`
	Category             Category          `json:"category"`
	OriginalQuery        string            `json:"original_query"`
	InterpretedIntent    string            `json:"interpreted_intent,omitempty"`
	SuggestedQuery       string            `json:"suggested_query,omitempty"`
	SuggestedFilters     map[string]string `json:"suggested_filters,omitempty"`
	SuggestedCategories  []string          `json:"suggested_categories,omitempty"`
	Excludes             map[string]string `json:"excludes,omitempty"`
	SuggestedTool        string            `json:"suggested_tool"`
	ToolArgs             map[string]string `json:"tool_args,omitempty"`
	IsBundle             bool              `json:"is_bundle,omitempty"`
	ClarificationNeeded  bool              `json:"clarification_needed"`
	ClarificationMessage string            `json:"clarification_message,omitempty"`
	Confidence           float64           `json:"confidence"`
}

// Interpreter classifies queries against the rule tables. Stateless and
// safe for concurrent use.
type Interpreter struct {
	matcher   *taxonomy.Matcher
	threshold float64
}

func NewInterpreter(matcher *taxonomy.Matcher, threshold float64) *Interpreter {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Interpreter{matcher: matcher, threshold: threshold}
}

var numberPattern = regexp.MustCompile(`\d+`)

// Analyze classifies one query. Taxonomy phrase hits win outright; after
// that the highest-confidence pattern match wins, earlier rule sets
// breaking ties. Queries naming a concrete product are never vague.
func (in *Interpreter) Analyze(query string) *Analysis {
	trimmed := strings.TrimSpace(query)
	lower := strings.ToLower(trimmed)

	// Known indirect phrases carry their own category mapping and beat
	// the generic pattern scan.
	if vt, ok := in.matcher.TranslateVaguePhrase(lower); ok {
		return &Analysis{
			IsVague:             true,
			Category:            CategoryLifestyleContext,
			OriginalQuery:       trimmed,
			InterpretedIntent:   "needs products for: " + vt.Phrase,
			SuggestedQuery:      strings.Join(vt.SearchTerms, " "),
			SuggestedCategories: append([]string(nil), vt.Categories...),
			SuggestedTool:       ToolSearchProducts,
			Confidence:          0.85,
		}
	}

	var (
		bestRule     *rule
		bestCategory Category
		bestConf     float64
	)
	for si := range ruleSets {
		set := &ruleSets[si]
		for ri := range set.rules {
			r := &set.rules[ri]
			loc := r.pattern.FindStringIndex(lower)
			if loc == nil {
				continue
			}
			conf := matchConfidence(loc[1]-loc[0], len(lower))
			if conf > bestConf {
				bestRule = r
				bestCategory = set.category
				bestConf = conf
			}
		}
	}

	if bestRule != nil && bestConf >= in.threshold {
		return in.buildAnalysis(trimmed, lower, bestRule, bestCategory, bestConf)
	}

	if hasClearProductWord(lower) {
		return &Analysis{
			IsVague:        false,
			Category:       CategoryClear,
			OriginalQuery:  trimmed,
			SuggestedQuery: trimmed,
			SuggestedTool:  ToolSearchProducts,
			Confidence:     1.0,
		}
	}

	if bestRule != nil {
		// Weak signal: ask instead of guessing.
		return &Analysis{
			IsVague:              true,
			Category:             bestCategory,
			OriginalQuery:        trimmed,
			InterpretedIntent:    bestRule.intent,
			SuggestedTool:        ToolNone,
			ClarificationNeeded:  true,
			ClarificationMessage: clarificationFor(bestRule),
			Confidence:           bestConf,
		}
	}

	return &Analysis{
		IsVague:              true,
		Category:             CategoryClear,
		OriginalQuery:        trimmed,
		SuggestedTool:        ToolNone,
		ClarificationNeeded:  true,
		ClarificationMessage: "Could you tell me a bit more? For example the type of product, the room it's for, or your budget.",
		Confidence:           0.3,
	}
}

func (in *Interpreter) buildAnalysis(trimmed, lower string, r *rule, cat Category, conf float64) *Analysis {
	a := &Analysis{
		IsVague:           true,
		Category:          cat,
		OriginalQuery:     trimmed,
		InterpretedIntent: r.intent,
		SuggestedQuery:    r.query,
		SuggestedTool:     r.tool,
		IsBundle:          r.isBundle,
		Confidence:        conf,
	}
	if len(r.filters) > 0 {
		a.SuggestedFilters = copyMap(r.filters)
	}
	if len(r.excludes) > 0 {
		a.Excludes = copyMap(r.excludes)
	}
	if len(r.toolArgs) > 0 {
		a.ToolArgs = copyMap(r.toolArgs)
	}
	if r.clarification != "" {
		a.ClarificationNeeded = true
		a.ClarificationMessage = r.clarification
	}

	if r.extractNumber {
		if n, ok := extractNumber(lower); ok {
			if n >= 6 {
				a.SuggestedQuery = fmt.Sprintf("large dining table %d seater", n)
				if a.SuggestedFilters == nil {
					a.SuggestedFilters = map[string]string{}
				}
				a.SuggestedFilters["size"] = "large"
			} else {
				a.SuggestedQuery = fmt.Sprintf("dining table %d seater", n)
			}
		}
	}

	if r.isBundle {
		// The bundle planner re-parses the raw request.
		a.SuggestedQuery = trimmed
	}
	return a
}

func matchConfidence(matchLen, queryLen int) float64 {
	if queryLen == 0 {
		return 0
	}
	conf := 0.5 + float64(matchLen)/float64(queryLen)
	if conf > 0.95 {
		conf = 0.95
	}
	return conf
}

func extractNumber(text string) (int, bool) {
	s := numberPattern.FindString(text)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func hasClearProductWord(lower string) bool {
	for _, w := range clearProductWords {
		if containsWord(lower, w) {
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
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		// Plurals still count as the same product word.
		if afterOK || (end < len(text) && text[end] == 's' &&
			(end+1 == len(text) || !isWordChar(text[end+1]))) {
			if beforeOK {
				return true
			}
		}
		idx = end
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

func clarificationFor(r *rule) string {
	if r.clarification != "" {
		return r.clarification
	}
	return "I think I understand, but could you confirm what kind of product you're after?"
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
