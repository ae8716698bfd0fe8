// Package render writes exported automata in human-oriented formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"thompson/internal/nfa"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\\n`, "\t", `\\t`)

// WriteDOT prints a Graphviz representation of g to w. The terminating
// state is drawn as a double circle and an invisible node points at the
// starting state.
func WriteDOT(w io.Writer, g *nfa.Graph, title string) error {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("    rankdir=LR;\n")
	if title != "" {
		fmt.Fprintf(&b, "    label=%s;\n", dotQuote(title))
	}

	for _, s := range g.States {
		shape := "circle"
		if s.Terminating {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    %s [shape=%s];\n", nfa.Name(s.ID), shape)
	}
	for _, s := range g.States {
		for _, t := range s.Transitions {
			for _, to := range t.Targets {
				fmt.Fprintf(&b, "    %s -> %s [label=%s];\n", nfa.Name(s.ID), nfa.Name(to), dotLabel(t.Label))
			}
		}
	}
	b.WriteString("    _start [shape=point, style=invis];\n")
	fmt.Fprintf(&b, "    _start -> %s [label=%s];\n", nfa.Name(g.Start), dotLabel(nfa.Epsilon))
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// dotLabel leaves epsilon as an HTML label so Graphviz draws the symbol.
func dotLabel(label string) string {
	if label == nfa.Epsilon {
		return label
	}
	return dotQuote(label)
}

func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
