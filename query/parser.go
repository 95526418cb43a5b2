package query

import "strings"

// parser walks a token slice with a single cursor.
type parser struct {
	tokens     []Token
	pos        int
	taxonomies []*Taxonomy
}

// Parse builds an AST from tokens, expanding each term through taxonomies.
//
// The grammar is
//
//	Expression := Term ( ( "AND" | "OR" )? Term )*
//	Term       := "(" Expression ")"? | PHRASE | "NOT" Term | "-" WORD | WORD
//
// Parse never fails. An empty token list yields Empty, a missing ")" is
// tolerated, and a token that cannot start a term becomes Empty. Parsing
// stops at the first token that can neither continue nor start an
// expression (a ")" or a phrase or "(" directly after a term); anything after
// it is ignored. So `senior "machine learning"` parses to just senior, and
// Validate still reports such a query as valid.
func Parse(tokens []Token, taxonomies ...*Taxonomy) Node {
	if len(tokens) == 0 {
		return Empty{}
	}
	p := &parser{tokens: tokens, taxonomies: taxonomies}
	return p.parseExpression()
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parseExpression() Node {
	left := p.parseTerm()
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenWord {
			return left
		}
		switch {
		case isKeyword(tok, "OR"):
			p.pos++
			left = Or{Left: left, Right: p.parseTerm()}
		case isKeyword(tok, "AND"):
			p.pos++
			left = And{Left: left, Right: p.parseTerm()}
		default:
			// implicit AND
			left = And{Left: left, Right: p.parseTerm()}
		}
	}
}

func (p *parser) parseTerm() Node {
	tok, ok := p.peek()
	if !ok {
		return Empty{}
	}
	p.pos++

	switch tok.Kind {
	case TokenLParen:
		expr := p.parseExpression()
		if next, ok := p.peek(); ok && next.Kind == TokenRParen {
			p.pos++
		}
		return expr
	case TokenPhrase:
		return Phrase{Value: tok.Value}
	case TokenWord:
		switch {
		case isKeyword(tok, "NOT"):
			return Not{Operand: p.parseTerm()}
		case isKeyword(tok, "AND"), isKeyword(tok, "OR"):
			return Empty{}
		case len(tok.Value) > 1 && tok.Value[0] == '-':
			return Not{Operand: p.term(tok.Value[1:])}
		default:
			return p.term(tok.Value)
		}
	}
	return Empty{}
}

func (p *parser) term(word string) Term {
	return Term{Value: word, Expanded: Expand(word, p.taxonomies...)}
}

func isKeyword(tok Token, keyword string) bool {
	return tok.Kind == TokenWord && strings.EqualFold(tok.Value, keyword)
}
