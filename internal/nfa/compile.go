package nfa

import (
	"context"
	"fmt"
	"runtime"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"thompson/internal/syntax"
)

// Compile parses pattern and builds its automaton. Each call uses its own
// registry, so concurrent calls are independent.
func Compile(pattern string, opts ...syntax.Option) (*Graph, error) {
	tok, err := syntax.Parse(pattern, opts...)
	if err != nil {
		return nil, err
	}
	g := Build(tok)
	commonlog.GetLogger("thompson.nfa").Debugf("compiled %q into %d states, starting at %s",
		pattern, len(g.States), Name(g.Start))
	return g, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Graph {
	g, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return g
}

// Options configures CompileAll.
type Options struct {
	// The maximum number of patterns compiled at once. If unspecified or
	// non-positive, runtime.GOMAXPROCS(0) is used.
	MaxParallelism int
	// Parser options applied to every pattern.
	Syntax []syntax.Option
}

// PatternError identifies which pattern of a CompileAll call failed.
type PatternError struct {
	Index int
	Err   error
}

func (e *PatternError) Error() string { return fmt.Sprintf("pattern %d: %v", e.Index, e.Err) }

func (e *PatternError) Unwrap() error { return e.Err }

// CompileAll compiles independent patterns concurrently. Results are in the
// same order as patterns. The first failure cancels the remaining work and
// is returned as a *PatternError.
func CompileAll(ctx context.Context, patterns []string, opts Options) ([]*Graph, error) {
	par := opts.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	graphs := make([]*Graph, len(patterns))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(par)
	for i, pattern := range patterns {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := Compile(pattern, opts.Syntax...)
			if err != nil {
				return &PatternError{Index: i, Err: err}
			}
			graphs[i] = g
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	commonlog.GetLogger("thompson.nfa").Debugf("compiled %d patterns with parallelism %d", len(patterns), par)
	return graphs, nil
}
