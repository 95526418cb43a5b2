package query

import (
	"strconv"
	"strings"
)

// Node is a node of a parsed query. The set of node types is closed:
// Empty, Term, Phrase, And, Or and Not.
type Node interface {
	String() string
	node()
}

// Empty matches everything. It stands in for a missing operand.
type Empty struct{}

// Term matches when any of its expanded forms occurs in the text.
type Term struct {
	// Value is the word as written.
	Value string
	// Expanded holds the lowercased word followed by its taxonomy synonyms.
	Expanded []string
}

// Phrase matches when its lowercased value occurs in the text. Phrases are
// never expanded.
type Phrase struct {
	Value string
}

type And struct {
	Left, Right Node
}

type Or struct {
	Left, Right Node
}

type Not struct {
	Operand Node
}

func (Empty) node()  {}
func (Term) node()   {}
func (Phrase) node() {}
func (And) node()    {}
func (Or) node()     {}
func (Not) node()    {}

func (Empty) String() string {
	return "<empty>"
}

func (t Term) String() string {
	return t.Value
}

func (p Phrase) String() string {
	return strconv.Quote(p.Value)
}

func (a And) String() string {
	return binaryString(a.Left, "AND", a.Right)
}

func (o Or) String() string {
	return binaryString(o.Left, "OR", o.Right)
}

func (n Not) String() string {
	return "(NOT " + nodeString(n.Operand) + ")"
}

func binaryString(left Node, op string, right Node) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(nodeString(left))
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	b.WriteString(nodeString(right))
	b.WriteByte(')')
	return b.String()
}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
