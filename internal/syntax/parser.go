package syntax

import (
	"errors"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// DefaultMaxNesting bounds how deeply groups may nest.
const DefaultMaxNesting = 256

type config struct {
	maxNesting int
}

type Option func(*config)

// WithMaxNesting overrides DefaultMaxNesting. Values below one are ignored.
func WithMaxNesting(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxNesting = n
		}
	}
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\[\s\S]`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Or", Pattern: `[|+]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Literal", Pattern: `[\s\S]`},
})

type sequence struct {
	Head  *atom   `parser:"@@"`
	Links []*link `parser:"@@*"`
}

type link struct {
	Or   bool  `parser:"@Or?"`
	Atom *atom `parser:"@@"`
}

type atom struct {
	Escaped *string `parser:"(  @Escaped"`
	Literal *string `parser:" | @Literal"`
	Group   *group  `parser:" | @@ )"`
	Star    bool    `parser:"@Star?"`
}

type group struct {
	Body *sequence `parser:"LParen @@? RParen"`
}

var grammar = participle.MustBuild[sequence](participle.Lexer(patternLexer))

// Parse turns pattern into a token tree. Atoms are folded strictly left to
// right: an alternation operator combines everything accumulated so far
// with the next atom, so "ab|c" is Alternation(Concat(a, b), c) and "a|bc"
// is Concat(Alternation(a, b), c).
func Parse(pattern string, opts ...Option) (Token, error) {
	cfg := config{maxNesting: DefaultMaxNesting}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(pattern, cfg.maxNesting); err != nil {
		return nil, err
	}
	if pattern == "" {
		return Empty{}, nil
	}

	seq, err := grammar.ParseString("", pattern)
	if err != nil {
		index := 0
		var perr participle.Error
		if errors.As(err, &perr) {
			offset := min(perr.Position().Offset, len(pattern))
			index = utf8.RuneCountInString(pattern[:offset])
		}
		return nil, newError(ErrInvalidMetaSequence, pattern, index)
	}
	return seq.fold(), nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) Token {
	t, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

func (s *sequence) fold() Token {
	t := s.Head.fold()
	for _, l := range s.Links {
		if l.Or {
			t = Alternation{A: t, B: l.Atom.fold()}
		} else {
			t = Concat{A: t, B: l.Atom.fold()}
		}
	}
	return t
}

func (a *atom) fold() Token {
	var t Token
	switch {
	case a.Escaped != nil:
		r, _ := utf8.DecodeRuneInString((*a.Escaped)[1:])
		t = Char{Rune: r}
	case a.Literal != nil:
		r, _ := utf8.DecodeRuneInString(*a.Literal)
		t = Char{Rune: r}
	case a.Group.Body == nil:
		t = Empty{}
	default:
		t = a.Group.Body.fold()
	}
	if a.Star {
		t = ZeroOrMore{Inner: t}
	}
	return t
}
