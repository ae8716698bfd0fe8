package nfa

import "thompson/internal/syntax"

// Build compiles a token tree into a graph. A single terminating state is
// allocated first; every fragment then routes its successful exits straight
// into the continuations it was built with, so nothing is patched later.
func Build(t syntax.Token) *Graph {
	reg := NewRegistry()
	accept := reg.Allocate(true)
	b := &builder{reg: reg}
	start := b.build(t, []StateID{accept})
	return reg.Export(start)
}

type builder struct {
	reg *Registry
}

// build returns the entry state of the fragment for t, wired to epsilon
// into each of next once t has matched.
func (b *builder) build(t syntax.Token, next []StateID) StateID {
	s := &spine{b: b, cur: t, next: next}
	for !s.done {
		s.cur.Accept(s)
	}

	entry := s.entry
	for i := len(s.pending) - 1; i >= 0; i-- {
		alt := s.pending[i]
		other := b.build(alt.other, alt.next)
		b.reg.AddTransition(alt.branch, Epsilon, entry)
		b.reg.AddTransition(alt.branch, Epsilon, other)
		entry = alt.branch
	}
	return entry
}

// spine walks down the left operands of Concat and Alternation without
// recursing, since left-to-right folding makes that side as deep as the
// pattern is long. Right operands are single atoms or group bodies.
type spine struct {
	b       *builder
	cur     syntax.Token
	next    []StateID
	pending []alternative
	entry   StateID
	done    bool
}

// alternative is an Alternation whose left branch is still being built.
type alternative struct {
	branch StateID
	other  syntax.Token
	next   []StateID
}

func (s *spine) VisitEmpty(syntax.Empty) {
	s.finish(s.b.step(Epsilon, s.next))
}

func (s *spine) VisitChar(c syntax.Char) {
	s.finish(s.b.step(string(c.Rune), s.next))
}

func (s *spine) VisitConcat(c syntax.Concat) {
	s.next = []StateID{s.b.build(c.B, s.next)}
	s.cur = c.A
}

func (s *spine) VisitAlternation(a syntax.Alternation) {
	branch := s.b.reg.Allocate(false)
	s.pending = append(s.pending, alternative{branch: branch, other: a.B, next: s.next})
	s.cur = a.A
}

func (s *spine) VisitZeroOrMore(z syntax.ZeroOrMore) {
	s.finish(s.b.star(z.Inner, s.next))
}

func (s *spine) finish(entry StateID) {
	s.entry = entry
	s.done = true
}

// step builds s1 --label--> s2 with s2 leading into next.
func (b *builder) step(label string, next []StateID) StateID {
	s1 := b.reg.Allocate(false)
	s2 := b.reg.Allocate(false)
	b.reg.AddTransition(s1, label, s2)
	for _, id := range next {
		b.reg.AddTransition(s2, Epsilon, id)
	}
	return s1
}

// star loops inner back into its own entry through its continuations.
func (b *builder) star(inner syntax.Token, next []StateID) StateID {
	entry := b.reg.Allocate(false)
	exit := b.reg.Allocate(false)
	for _, id := range next {
		b.reg.AddTransition(exit, Epsilon, id)
	}
	innerEntry := b.build(inner, []StateID{entry, exit})
	b.reg.AddTransition(entry, Epsilon, innerEntry)
	b.reg.AddTransition(entry, Epsilon, exit)
	return entry
}
