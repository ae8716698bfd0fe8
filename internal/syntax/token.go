package syntax

import (
	"fmt"
	"strconv"
)

// Token is one node of a parsed pattern. The set of tokens is closed:
// Empty, Char, Concat, Alternation and ZeroOrMore.
type Token interface {
	fmt.Stringer
	// Accept calls the Visitor method matching the token's variant.
	Accept(v Visitor)
	token()
}

// Visitor handles every token variant.
type Visitor interface {
	VisitEmpty(Empty)
	VisitChar(Char)
	VisitConcat(Concat)
	VisitAlternation(Alternation)
	VisitZeroOrMore(ZeroOrMore)
}

// Empty matches the empty string only.
type Empty struct{}

// Char matches exactly one literal character.
type Char struct {
	Rune rune
}

// Concat matches A followed immediately by B.
type Concat struct {
	A, B Token
}

// Alternation matches A or B.
type Alternation struct {
	A, B Token
}

// ZeroOrMore matches Inner repeated zero or more times.
type ZeroOrMore struct {
	Inner Token
}

func (Empty) token()       {}
func (Char) token()        {}
func (Concat) token()      {}
func (Alternation) token() {}
func (ZeroOrMore) token()  {}

func (t Empty) Accept(v Visitor)       { v.VisitEmpty(t) }
func (t Char) Accept(v Visitor)        { v.VisitChar(t) }
func (t Concat) Accept(v Visitor)      { v.VisitConcat(t) }
func (t Alternation) Accept(v Visitor) { v.VisitAlternation(t) }
func (t ZeroOrMore) Accept(v Visitor)  { v.VisitZeroOrMore(t) }

func (Empty) String() string { return "Empty" }

func (t Char) String() string { return "Char(" + strconv.QuoteRune(t.Rune) + ")" }

func (t Concat) String() string { return "Concat(" + t.A.String() + ", " + t.B.String() + ")" }

func (t Alternation) String() string {
	return "Alternation(" + t.A.String() + ", " + t.B.String() + ")"
}

func (t ZeroOrMore) String() string { return "ZeroOrMore(" + t.Inner.String() + ")" }
