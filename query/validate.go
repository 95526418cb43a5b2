package query

import "fmt"

// Validation is the outcome of checking a query. Error is empty when Valid.
type Validation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Err returns nil for a valid query and an ErrInvalidQuery otherwise.
func (v Validation) Err() error {
	if v.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidQuery, v.Error)
}

// Validate checks query without evaluating it. Unlike the parser, it rejects
// unbalanced parentheses: a ")" with no open "(" is reported as mismatched,
// and any "(" still open at the end as unclosed. A valid query may still
// have a tail the parser ignores, such as a phrase directly after a word.
func (e *Engine) Validate(query string) (result Validation) {
	if len(query) > e.maxQueryLength {
		return Validation{Error: fmt.Sprintf(msgQueryTooLong, e.maxQueryLength)}
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("query validation failed", "query", query, "err", r)
			result = Validation{Error: fmt.Sprint(r)}
		}
	}()

	tokens := Tokenize(query)
	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth < 0 {
				return Validation{Error: msgMismatchedParentheses}
			}
		}
	}
	if depth != 0 {
		return Validation{Error: msgUnclosedParentheses}
	}

	Parse(tokens, e.taxonomies()...)
	return Validation{Valid: true}
}
