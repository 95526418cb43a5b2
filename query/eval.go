package query

import (
	"fmt"
	"strings"
)

// Evaluate reports whether text satisfies node. Text is expected to be
// lowercased already (see core.SearchableText); terms and phrases match as
// substrings.
//
// Evaluate panics on a node type it does not know, including nil.
func Evaluate(node Node, text string) bool {
	switch n := node.(type) {
	case Empty:
		return true
	case Term:
		for _, form := range n.Expanded {
			if strings.Contains(text, form) {
				return true
			}
		}
		return false
	case Phrase:
		return strings.Contains(text, strings.ToLower(n.Value))
	case And:
		return Evaluate(n.Left, text) && Evaluate(n.Right, text)
	case Or:
		return Evaluate(n.Left, text) || Evaluate(n.Right, text)
	case Not:
		return !Evaluate(n.Operand, text)
	default:
		panic(fmt.Sprintf("query: cannot evaluate node of type %T", node))
	}
}
