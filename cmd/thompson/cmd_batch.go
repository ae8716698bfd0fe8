package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"thompson/internal/nfa"
	"thompson/internal/syntax"
)

type batchEntry struct {
	File    string          `json:"file"`
	Line    int             `json:"line"`
	Pattern string          `json:"pattern"`
	NFA     json.RawMessage `json:"nfa"`
}

func newBatchCmd() *cobra.Command {
	var jobs int
	var maxNesting int

	cmd := &cobra.Command{
		Use:   "batch <glob>...",
		Short: "Compile every pattern listed in the matching files",
		Long: `Compile every pattern listed in the matching files.

Each non-blank line of a file is one pattern. Globs support ** (doublestar).
Results are printed as JSON Lines: {"file", "line", "pattern", "nfa"}.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("thompson.cli")

			entries, err := loadPatterns(args)
			if err != nil {
				return err
			}
			log.Debugf("loaded %d patterns", len(entries))

			patterns := make([]string, len(entries))
			for i, e := range entries {
				patterns[i] = e.Pattern
			}
			graphs, err := nfa.CompileAll(cmd.Context(), patterns, nfa.Options{
				MaxParallelism: jobs,
				Syntax:         []syntax.Option{syntax.WithMaxNesting(maxNesting)},
			})
			if err != nil {
				var perr *nfa.PatternError
				if errors.As(err, &perr) {
					e := entries[perr.Index]
					return fmt.Errorf("%s:%d: %w", e.File, e.Line, perr.Err)
				}
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			for i, g := range graphs {
				data, err := g.MarshalJSON()
				if err != nil {
					return fmt.Errorf("encode %s:%d: %w", entries[i].File, entries[i].Line, err)
				}
				entries[i].NFA = data
				if err := enc.Encode(entries[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "patterns compiled in parallel (default GOMAXPROCS)")
	cmd.Flags().IntVar(&maxNesting, "max-nesting", syntax.DefaultMaxNesting, "maximum group nesting depth")

	return cmd
}

// loadPatterns expands globs in order and reads one pattern per non-blank
// line. A file matched by several globs is read once.
func loadPatterns(globs []string) ([]batchEntry, error) {
	var entries []batchEntry
	seen := make(map[string]bool)
	for _, glob := range globs {
		if !doublestar.ValidatePathPattern(glob) {
			return nil, fmt.Errorf("invalid glob: %s", glob)
		}
		files, err := doublestar.FilepathGlob(glob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", glob, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no files match %s", glob)
		}
		for _, file := range files {
			if seen[file] {
				continue
			}
			seen[file] = true

			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("read pattern file: %w", err)
			}
			for i, line := range strings.Split(string(data), "\n") {
				line = strings.TrimSuffix(line, "\r")
				if strings.TrimSpace(line) == "" {
					continue
				}
				entries = append(entries, batchEntry{File: file, Line: i + 1, Pattern: line})
			}
		}
	}
	return entries, nil
}
