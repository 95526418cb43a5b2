package query

import (
	"log/slog"
	"strings"

	"github.com/poiesic/talentq/core"
)

// DefaultMaxQueryLength is the longest query, in bytes, that is parsed.
// Longer queries fail validation and are matched with the keyword fallback.
const DefaultMaxQueryLength = 4096

// Engine parses and evaluates queries against a pair of taxonomies.
type Engine struct {
	skills         *Taxonomy
	seniority      *Taxonomy
	maxQueryLength int
	logger         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets the logger for the engine.
// If not set, slog.Default() will be used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithMaxQueryLength sets the query length limit in bytes.
func WithMaxQueryLength(n int) Option {
	return func(e *Engine) error {
		if n <= 0 {
			return ErrInvalidMaxQueryLength
		}
		e.maxQueryLength = n
		return nil
	}
}

// WithTaxonomies replaces the built-in skill and seniority taxonomies.
func WithTaxonomies(skills, seniority *Taxonomy) Option {
	return func(e *Engine) error {
		if skills == nil || seniority == nil {
			return ErrTaxonomyRequired
		}
		e.skills = skills
		e.seniority = seniority
		return nil
	}
}

// NewEngine creates an engine using the built-in taxonomies unless
// WithTaxonomies says otherwise.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		skills:         defaultSkills,
		seniority:      defaultSeniority,
		maxQueryLength: DefaultMaxQueryLength,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e, nil
}

func (e *Engine) taxonomies() []*Taxonomy {
	return []*Taxonomy{e.skills, e.seniority}
}

func (e *Engine) MaxQueryLength() int {
	return e.maxQueryLength
}

// Expand returns term and its synonyms from the engine's taxonomies.
func (e *Engine) Expand(term string) []string {
	return Expand(term, e.taxonomies()...)
}

// Compile parses query once so it can be matched against many texts.
// A blank query compiles to Empty. A query that is too long, or whose parse
// panics, compiles to the keyword fallback.
func (e *Engine) Compile(query string) (c *Compiled) {
	c = &Compiled{query: query, logger: e.logger}
	if strings.TrimSpace(query) == "" {
		c.root = Empty{}
		return c
	}
	if len(query) > e.maxQueryLength {
		e.logger.Warn("query too long, using keyword fallback", "length", len(query), "max", e.maxQueryLength)
		c.fallback = true
		return c
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("query parse failed, using keyword fallback", "query", query, "err", r)
			c.root = nil
			c.fallback = true
		}
	}()
	c.root = Parse(Tokenize(query), e.taxonomies()...)
	return c
}

// Match reports whether text satisfies query.
func (e *Engine) Match(query, text string) bool {
	return e.Compile(query).Match(text)
}

// Search reports whether a candidate satisfies query. A blank query matches
// every candidate. Either record may be nil.
func (e *Engine) Search(query string, candidate *core.Candidate, user *core.User) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return e.Match(query, core.SearchableText(candidate, user))
}

// Compiled is a parsed query. It is safe for concurrent use.
type Compiled struct {
	query    string
	root     Node
	fallback bool
	logger   *slog.Logger
}

func (c *Compiled) Query() string {
	return c.query
}

// Root returns the parsed AST, or nil when the query uses the fallback.
func (c *Compiled) Root() Node {
	return c.root
}

// Fallback reports whether the query is matched by keyword rather than by
// its AST.
func (c *Compiled) Fallback() bool {
	return c.fallback
}

// Match reports whether text satisfies the query. If evaluation panics the
// keyword fallback decides instead.
func (c *Compiled) Match(text string) (matched bool) {
	if c.fallback {
		return matchAllTerms(text, c.query)
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("query evaluation failed, using keyword fallback", "query", c.query, "err", r)
			matched = matchAllTerms(text, c.query)
		}
	}()
	return Evaluate(c.root, text)
}

var defaultEngine = mustEngine()

func mustEngine() *Engine {
	e, err := NewEngine()
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the engine behind the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// Search reports whether a candidate satisfies query using the built-in
// taxonomies.
func Search(query string, candidate *core.Candidate, user *core.User) bool {
	return defaultEngine.Search(query, candidate, user)
}

// Match reports whether lowercased text satisfies query.
func Match(query, text string) bool {
	return defaultEngine.Match(query, text)
}

// Validate checks query with the default engine.
func Validate(query string) Validation {
	return defaultEngine.Validate(query)
}

// Suggest returns completions for partial from the built-in taxonomies.
func Suggest(partial string) []Suggestion {
	return defaultEngine.Suggest(partial)
}
