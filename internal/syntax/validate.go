package syntax

import "strings"

const (
	escape = '\\'
	star   = '*'
)

// escapable lists the characters that may follow an escape.
const escapable = `*+|()\`

func isAlternation(r rune) bool { return r == '|' || r == '+' }

func isMeta(r rune) bool { return r == star || isAlternation(r) }

func isEscapable(r rune) bool { return strings.ContainsRune(escapable, r) }

// QuoteMeta escapes every character of s that the parser would otherwise
// treat specially, so that the result matches s literally.
func QuoteMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isEscapable(r) {
			b.WriteRune(escape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// validate scans the pattern once and reports the first violation. It runs
// before the grammar so that every rejected pattern gets a typed error.
func validate(pattern string, maxNesting int) error {
	runes := []rune(pattern)
	n := len(runes)
	if n == 0 {
		return nil
	}
	if isMeta(runes[0]) {
		return newError(ErrMetaAtStart, pattern, 0)
	}

	var open []int // indices of unclosed '('
	prevMeta, groupStart := false, false
	for i := 0; i < n; i++ {
		r := runes[i]
		switch {
		case r == escape:
			if i+1 == n {
				return newError(ErrTrailingEscape, pattern, i)
			}
			if !isEscapable(runes[i+1]) {
				return newError(ErrInvalidEscapedCharacter, pattern, i+1)
			}
			i++
			prevMeta, groupStart = false, false
		case isMeta(r):
			if groupStart {
				return newError(ErrMetaAtStart, pattern, i)
			}
			if prevMeta {
				return newError(ErrInvalidMetaSequence, pattern, i-1)
			}
			if isAlternation(r) && (i+1 == n || runes[i+1] == ')') {
				return newError(ErrTrailingOperator, pattern, i)
			}
			prevMeta, groupStart = true, false
		case r == '(':
			open = append(open, i)
			if len(open) > maxNesting {
				return newError(ErrNestingTooDeep, pattern, i)
			}
			prevMeta, groupStart = false, true
		case r == ')':
			if len(open) == 0 {
				return newError(ErrUnbalancedParentheses, pattern, i)
			}
			open = open[:len(open)-1]
			prevMeta, groupStart = false, false
		default:
			prevMeta, groupStart = false, false
		}
	}
	if len(open) > 0 {
		return newError(ErrUnbalancedParentheses, pattern, open[len(open)-1])
	}
	return nil
}
