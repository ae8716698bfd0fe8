package syntax

import (
	"errors"
	"fmt"
)

var (
	ErrMetaAtStart             = errors.New("meta character at start of pattern")
	ErrTrailingOperator        = errors.New("trailing alternation operator")
	ErrTrailingEscape          = errors.New("trailing escape character")
	ErrInvalidMetaSequence     = errors.New("invalid sequence of meta characters")
	ErrInvalidEscapedCharacter = errors.New("invalid escaped character")
	ErrUnbalancedParentheses   = errors.New("unbalanced parentheses")
	ErrNestingTooDeep          = errors.New("groups nested too deeply")
)

// ParseError reports why a pattern was rejected. Kind is one of the Err*
// sentinels above and Index is the offending rune index in Pattern.
type ParseError struct {
	Kind    error
	Pattern string
	Index   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid pattern %q at index %d: %v", e.Pattern, e.Index, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func newError(kind error, pattern string, index int) *ParseError {
	return &ParseError{Kind: kind, Pattern: pattern, Index: index}
}
