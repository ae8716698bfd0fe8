package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"thompson/internal/nfa"
	"thompson/internal/render"
	"thompson/internal/syntax"
)

func newCompileCmd() *cobra.Command {
	var outputFormat string
	var output string
	var png bool
	var showTokens bool
	var literal bool
	var maxNesting int

	cmd := &cobra.Command{
		Use:   "compile <pattern>",
		Short: "Compile a pattern and print its NFA",
		Long: `Compile a pattern and print its NFA.

Supported syntax: literal characters, concatenation, alternation with | or +,
zero-or-more with *, grouping with ( ), and \ to escape * + | ( ) \.
Patterns that start with "-" must follow "--".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("thompson.cli")

			pattern := args[0]
			if literal {
				pattern = syntax.QuoteMeta(pattern)
			}

			tok, err := syntax.Parse(pattern, syntax.WithMaxNesting(maxNesting))
			if err != nil {
				return err
			}
			if showTokens {
				fmt.Fprintln(cmd.ErrOrStderr(), tok)
			}
			g := nfa.Build(tok)
			log.Debugf("built %d states for %q", len(g.States), pattern)

			if png {
				return writePNG(g, pattern, output)
			}

			var buf bytes.Buffer
			if err := encodeGraph(&buf, g, pattern, outputFormat); err != nil {
				return err
			}

			if output == "-" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Infof("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml, dot, table)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&png, "png", false, "render a PNG with Graphviz dot (output defaults to graph.png)")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "print the parsed token tree to stderr")
	cmd.Flags().BoolVar(&literal, "literal", false, "escape the pattern so it matches itself literally")
	cmd.Flags().IntVar(&maxNesting, "max-nesting", syntax.DefaultMaxNesting, "maximum group nesting depth")

	return cmd
}

func encodeGraph(w io.Writer, g *nfa.Graph, pattern, format string) error {
	switch format {
	case "json":
		data, err := g.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		out.WriteByte('\n')
		_, err = out.WriteTo(w)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "dot":
		return render.WriteDOT(w, g, pattern)
	case "table":
		return render.WriteTable(w, g)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writePNG(g *nfa.Graph, pattern, output string) error {
	if output == "-" {
		output = "graph.png"
	}
	var buf bytes.Buffer
	if err := render.WriteDOT(&buf, g, pattern); err != nil {
		return err
	}
	cmd := exec.Command("dot", "-Tpng", "-o", output)
	cmd.Stdin = &buf
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot failed: %w", err)
	}
	commonlog.GetLogger("thompson.cli").Infof("PNG written to %s", output)
	return nil
}
