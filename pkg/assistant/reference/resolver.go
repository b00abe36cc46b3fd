// PURPOSE: Rewrites ordinal references into concrete product tokens

package reference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ai-shopassist-be/pkg/store"
)

// Token format embedded into rewritten text. Tokens contain no spaces or
// ordinal words, so resolving already-resolved text changes nothing.
const tokenFormat = "[product:%s]"

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"1st": 1, "2nd": 2, "3rd": 3, "4th": 4, "5th": 5,
}

var (
	optionPattern  = regexp.MustCompile(`(?i)\b(?:option|number)\s+(\d+)\b`)
	ordinalPattern = regexp.MustCompile(`(?i)\b(?:the\s+)?(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|1st|2nd|3rd|4th|5th)\s+(?:one|chair|table|desk|sofa|bed|product|item|option)\b`)
	lastPattern    = regexp.MustCompile(`(?i)\b(?:the\s+)?last\s+(?:one|product|item|option)\b`)
	listPattern    = regexp.MustCompile(`\b(\d+)\s+and\s+(\d+)\b`)
)

// Resolver maps positional phrases to the session's last shown products.
// Stateless; the session carries the list.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve rewrites positional references in text against the 1-based
// last-shown-products list. Out-of-range references stay untouched so the
// handler can treat the message as a fresh query. The second return says
// whether anything was rewritten.
func (r *Resolver) Resolve(sess *store.Session, text string) (string, bool) {
	if sess == nil || len(sess.LastShownProducts) == 0 {
		return text, false
	}
	shown := sess.LastShownProducts

	changed := false
	out := text

	out = optionPattern.ReplaceAllStringFunc(out, func(match string) string {
		n := digitsIn(match)
		if tok, ok := tokenFor(shown, n); ok {
			changed = true
			return tok
		}
		return match
	})

	out = ordinalPattern.ReplaceAllStringFunc(out, func(match string) string {
		word := strings.ToLower(strings.Fields(strings.TrimSpace(match))[0])
		if word == "the" {
			word = strings.ToLower(strings.Fields(strings.TrimSpace(match))[1])
		}
		if tok, ok := tokenFor(shown, ordinalWords[word]); ok {
			changed = true
			return tok
		}
		return match
	})

	out = lastPattern.ReplaceAllStringFunc(out, func(match string) string {
		if tok, ok := tokenFor(shown, len(shown)); ok {
			changed = true
			return tok
		}
		return match
	})

	out = listPattern.ReplaceAllStringFunc(out, func(match string) string {
		m := listPattern.FindStringSubmatch(match)
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		tokA, okA := tokenFor(shown, a)
		tokB, okB := tokenFor(shown, b)
		// Both must resolve or the phrase stays as written.
		if !okA || !okB {
			return match
		}
		changed = true
		return tokA + " and " + tokB
	})

	return out, changed
}

// Identifiers extracts the product identifiers of all tokens in text, in
// order of appearance.
var tokenPattern = regexp.MustCompile(`\[product:([^\]]+)\]`)

func (r *Resolver) Identifiers(text string) []string {
	matches := tokenPattern.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func tokenFor(shown []store.Product, position int) (string, bool) {
	if position < 1 || position > len(shown) {
		return "", false
	}
	p := shown[position-1]
	id := p.SKU
	if id == "" {
		id = p.ID
	}
	if id == "" {
		return "", false
	}
	return fmt.Sprintf(tokenFormat, id), true
}

func digitsIn(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
		}
	}
	if !seen {
		return 0
	}
	return n
}
