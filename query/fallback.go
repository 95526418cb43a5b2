package query

import "strings"

// matchAllTerms is the keyword fallback used when a query cannot be compiled
// or evaluated: every whitespace-separated word of query, lowercased, must
// occur somewhere in text. Operators and quotes get no special treatment.
func matchAllTerms(text, query string) bool {
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
