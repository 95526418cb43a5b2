package query

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one concept in a taxonomy: a canonical name and the other names
// recruiters and candidates use for it.
type Entry struct {
	Canonical string   `yaml:"canonical"`
	Synonyms  []string `yaml:"synonyms"`
}

// Taxonomy is an ordered, immutable list of entries. Lookup order matters:
// when a term appears in more than one entry, the first entry wins.
type Taxonomy struct {
	name    string
	entries []Entry
}

// NewTaxonomy builds a taxonomy from entries. Names are trimmed and
// lowercased; blank synonyms are dropped. A blank canonical name is an error.
func NewTaxonomy(name string, entries []Entry) (*Taxonomy, error) {
	t := &Taxonomy{name: name, entries: make([]Entry, 0, len(entries))}
	for i, e := range entries {
		canonical := normalizeTerm(e.Canonical)
		if canonical == "" {
			return nil, fmt.Errorf("%w: %s entry %d has no canonical name", ErrInvalidTaxonomy, name, i)
		}
		synonyms := make([]string, 0, len(e.Synonyms))
		for _, s := range e.Synonyms {
			if s = normalizeTerm(s); s != "" {
				synonyms = append(synonyms, s)
			}
		}
		t.entries = append(t.entries, Entry{Canonical: canonical, Synonyms: synonyms})
	}
	return t, nil
}

// LoadTaxonomy reads a YAML list of entries from r.
func LoadTaxonomy(name string, r io.Reader) (*Taxonomy, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTaxonomy, name, err)
	}
	return NewTaxonomy(name, entries)
}

// LoadTaxonomyFile reads a YAML taxonomy from path.
func LoadTaxonomyFile(name, path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTaxonomy(name, f)
}

func (t *Taxonomy) Name() string {
	return t.name
}

func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the taxonomy's entries in lookup order.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Canonical: e.Canonical, Synonyms: slices.Clone(e.Synonyms)}
	}
	return out
}

// Lookup finds the first entry whose canonical name or one of whose synonyms
// equals term, ignoring case.
func (t *Taxonomy) Lookup(term string) (Entry, bool) {
	term = normalizeTerm(term)
	for _, e := range t.entries {
		if e.Canonical == term || slices.Contains(e.Synonyms, term) {
			return e, true
		}
	}
	return Entry{}, false
}

// Expand returns the lowercased term followed by the canonical name and
// synonyms of the first matching entry across taxonomies, searched in order.
// The result has no duplicates and always starts with the term itself.
func Expand(term string, taxonomies ...*Taxonomy) []string {
	term = strings.ToLower(term)
	expanded := []string{term}
	for _, t := range taxonomies {
		if t == nil {
			continue
		}
		e, ok := t.Lookup(term)
		if !ok {
			continue
		}
		for _, v := range append([]string{e.Canonical}, e.Synonyms...) {
			if !slices.Contains(expanded, v) {
				expanded = append(expanded, v)
			}
		}
		break
	}
	return expanded
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
