package nfa

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thompson/internal/syntax"
)

func TestCompileError(t *testing.T) {
	t.Parallel()
	g, err := Compile("*a")
	assert.Nil(t, g)
	require.ErrorIs(t, err, syntax.ErrMetaAtStart)

	_, err = Compile("a|")
	require.ErrorIs(t, err, syntax.ErrTrailingOperator)

	_, err = Compile("((a))", syntax.WithMaxNesting(1))
	require.ErrorIs(t, err, syntax.ErrNestingTooDeep)
}

func TestCompileAll(t *testing.T) {
	t.Parallel()
	var patterns []string
	for i := 0; i < 200; i++ {
		patterns = append(patterns, fmt.Sprintf("(a|b)*%s", strings.Repeat("c", i%7)))
	}

	graphs, err := CompileAll(context.Background(), patterns, Options{MaxParallelism: 8})
	require.NoError(t, err)
	require.Len(t, graphs, len(patterns))
	for i, g := range graphs {
		// concurrent compilations must not see each other's states
		assert.Equal(t, MustCompile(patterns[i]), g, "pattern %q", patterns[i])
	}
}

func TestCompileAllDefaults(t *testing.T) {
	t.Parallel()
	graphs, err := CompileAll(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, graphs)

	graphs, err = CompileAll(context.Background(), []string{"a", "b"}, Options{})
	require.NoError(t, err)
	assert.True(t, accepts(graphs[0], "a"))
	assert.True(t, accepts(graphs[1], "b"))
}

func TestCompileAllError(t *testing.T) {
	t.Parallel()
	graphs, err := CompileAll(context.Background(), []string{"a", "b", "a**", "c"}, Options{MaxParallelism: 1})
	assert.Nil(t, graphs)
	require.ErrorIs(t, err, syntax.ErrInvalidMetaSequence)

	var perr *PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Index)
	assert.Contains(t, err.Error(), "pattern 2: ")

	_, err = CompileAll(context.Background(), []string{"(("}, Options{Syntax: []syntax.Option{syntax.WithMaxNesting(1)}})
	require.ErrorIs(t, err, syntax.ErrNestingTooDeep)
}

func TestCompileAllCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CompileAll(ctx, []string{"a", "b"}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}
