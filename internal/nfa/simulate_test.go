package nfa

// The package does not run automata; these helpers exist so tests can
// check languages rather than wiring.

func closure(g *Graph, set map[StateID]bool) map[StateID]bool {
	stack := make([]StateID, 0, len(set))
	for id := range set {
		stack = append(stack, id)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s, _ := g.Lookup(id)
		for _, t := range s.Transitions {
			if t.Label != Epsilon {
				continue
			}
			for _, to := range t.Targets {
				if !set[to] {
					set[to] = true
					stack = append(stack, to)
				}
			}
		}
	}
	return set
}

func accepts(g *Graph, input string) bool {
	cur := closure(g, map[StateID]bool{g.Start: true})
	for _, r := range input {
		next := make(map[StateID]bool)
		for id := range cur {
			s, _ := g.Lookup(id)
			for _, t := range s.Transitions {
				if t.Label != string(r) {
					continue
				}
				for _, to := range t.Targets {
					next[to] = true
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		cur = closure(g, next)
	}
	for id := range cur {
		if s, _ := g.Lookup(id); s.Terminating {
			return true
		}
	}
	return false
}

// words returns every string over alphabet with length up to n.
func words(alphabet string, n int) []string {
	out := []string{""}
	prev := []string{""}
	for i := 0; i < n; i++ {
		var cur []string
		for _, w := range prev {
			for _, r := range alphabet {
				cur = append(cur, w+string(r))
			}
		}
		out = append(out, cur...)
		prev = cur
	}
	return out
}
