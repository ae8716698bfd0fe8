package render

import (
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"thompson/internal/nfa"
)

// WriteTable prints one row per state and label:
//
//	*   S1
//	->  S2  a            S3
//	    S3  <&epsilon;>  S1
//
// "->" marks the starting state and "*" the terminating one. Columns are
// padded by display width so wide labels stay aligned.
func WriteTable(w io.Writer, g *nfa.Graph) error {
	var rows [][3]string
	var marks []string
	for _, s := range g.States {
		mark := ""
		if s.ID == g.Start {
			mark += "->"
		}
		if s.Terminating {
			mark += "*"
		}
		if len(s.Transitions) == 0 {
			rows = append(rows, [3]string{nfa.Name(s.ID)})
			marks = append(marks, mark)
			continue
		}
		for i, t := range s.Transitions {
			names := make([]string, len(t.Targets))
			for j, to := range t.Targets {
				names[j] = nfa.Name(to)
			}
			name := ""
			if i == 0 {
				name = nfa.Name(s.ID)
			} else {
				mark = ""
			}
			rows = append(rows, [3]string{name, t.Label, strings.Join(names, ", ")})
			marks = append(marks, mark)
		}
	}

	var widths [3]int
	markWidth := 0
	for i, row := range rows {
		markWidth = max(markWidth, uniseg.StringWidth(marks[i]))
		for c, cell := range row {
			widths[c] = max(widths[c], uniseg.StringWidth(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		line := pad(marks[i], markWidth) + "  " + pad(row[0], widths[0]) + "  " + pad(row[1], widths[1]) + "  " + row[2]
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func pad(s string, width int) string {
	if n := uniseg.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
