package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SuggestionType says which taxonomy a suggestion came from.
type SuggestionType string

const (
	SuggestionSkill SuggestionType = "skill"
	SuggestionTitle SuggestionType = "title"
)

// MaxSuggestions caps the number of suggestions Suggest returns.
const MaxSuggestions = 5

// minSuggestPrefix is the shortest prefix, in characters, that gets
// suggestions.
const minSuggestPrefix = 2

// Suggestion is one completion offered for a partial query.
type Suggestion struct {
	Type  SuggestionType `json:"type"`
	Value string         `json:"value"`
	Label string         `json:"label"`
}

// Suggest offers completions for the last whitespace-separated word of
// partial. A partial ending in whitespace has no word in progress and gets
// no suggestions. Skills come before titles, each taxonomy entry contributes at
// most one suggestion, and no more than MaxSuggestions are returned. The
// result is never nil.
func (e *Engine) Suggest(partial string) []Suggestion {
	suggestions := []Suggestion{}

	fields := strings.Fields(partial)
	if len(fields) == 0 || endsInSpace(partial) {
		return suggestions
	}
	prefix := strings.ToLower(fields[len(fields)-1])
	if utf8.RuneCountInString(prefix) < minSuggestPrefix {
		return suggestions
	}

	suggestions = appendSuggestions(suggestions, e.skills, prefix, SuggestionSkill, "Skill")
	suggestions = appendSuggestions(suggestions, e.seniority, prefix, SuggestionTitle, "Title")
	return suggestions
}

func appendSuggestions(dst []Suggestion, t *Taxonomy, prefix string, typ SuggestionType, label string) []Suggestion {
	for _, entry := range t.entries {
		if len(dst) >= MaxSuggestions {
			break
		}
		if !entryHasPrefix(entry, prefix) {
			continue
		}
		dst = append(dst, Suggestion{
			Type:  typ,
			Value: entry.Canonical,
			Label: label + ": " + entry.Canonical,
		})
	}
	return dst
}

func entryHasPrefix(e Entry, prefix string) bool {
	if strings.HasPrefix(e.Canonical, prefix) {
		return true
	}
	for _, s := range e.Synonyms {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// endsInSpace reports whether the user has finished the last word.
func endsInSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}
