// PURPOSE: Shared lexical tokenization for indexing and querying

package catalog

import "strings"

// stopwords are dropped from both indexed fields and queries.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "are": true, "was": true, "you": true, "your": true,
	"our": true, "has": true, "have": true, "from": true, "not": true,
	"all": true, "can": true, "will": true, "its": true,
}

// Tokenize lowercases the text, splits on non-alphanumeric boundaries,
// keeps tokens longer than 2 characters and drops stopwords.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	tokens := make([]string, 0)

	var sb strings.Builder
	flush := func() {
		if sb.Len() > 2 {
			tok := sb.String()
			if !stopwords[tok] {
				tokens = append(tokens, tok)
			}
		}
		sb.Reset()
	}

	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
