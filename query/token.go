package query

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenKind identifies the kind of a Token.
type TokenKind int

const (
	// TokenWord is a plain word. Operators (AND, OR, NOT) are words too; the
	// parser decides what they mean.
	TokenWord TokenKind = iota + 1
	// TokenPhrase is the text between a pair of matching quotes.
	TokenPhrase
	// TokenLParen is "(".
	TokenLParen
	// TokenRParen is ")".
	TokenRParen
)

// Token is one lexical unit of a query.
type Token struct {
	Kind  TokenKind
	Value string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenWord:
		return t.Value
	case TokenPhrase:
		return strconv.Quote(t.Value)
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	return "?"
}

// Tokenize splits a query into tokens in a single left-to-right scan.
//
// Inside quotes (either ' or ") everything up to the same quote character is
// taken literally, including parentheses and the other quote character.
// Outside quotes, whitespace separates words and each parenthesis is a token
// of its own. A quote left open at end of input does not produce a phrase:
// whatever followed it is emitted as one trailing word.
func Tokenize(query string) []Token {
	tokens := []Token{}
	var acc strings.Builder
	var quote rune
	inQuotes := false

	flushWord := func() {
		word := strings.TrimSpace(acc.String())
		acc.Reset()
		if word != "" {
			tokens = append(tokens, Token{Kind: TokenWord, Value: word})
		}
	}

	for _, c := range query {
		switch {
		case inQuotes:
			if c == quote {
				// empty phrases are kept
				tokens = append(tokens, Token{Kind: TokenPhrase, Value: acc.String()})
				acc.Reset()
				inQuotes = false
			} else {
				acc.WriteRune(c)
			}
		case c == '"' || c == '\'':
			flushWord()
			inQuotes = true
			quote = c
		case c == '(':
			flushWord()
			tokens = append(tokens, Token{Kind: TokenLParen})
		case c == ')':
			flushWord()
			tokens = append(tokens, Token{Kind: TokenRParen})
		case unicode.IsSpace(c):
			flushWord()
		default:
			acc.WriteRune(c)
		}
	}

	flushWord()
	return tokens
}
