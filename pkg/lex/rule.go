package lex

import (
	"fmt"
	"strings"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/source"
)

type outcome int

const (
	declined outcome = iota
	emitted
	skipped
)

// Rule is one entry of a lexer's ordered rule list. Build rules with Char,
// Literal, Detailed and Skip.
type Rule[V any] struct {
	name  string
	apply func(child *MatchCursor) (outcome, V, error)
}

// Name describes the rule for debug output.
func (r Rule[V]) Name() string {
	return r.name
}

// Char maps a single character to a fixed token value.
func Char[V any](char rune, value V) Rule[V] {
	return Rule[V]{
		name: fmt.Sprintf("char %q", char),
		apply: func(child *MatchCursor) (outcome, V, error) {
			if cur, ok := child.Current(); !ok || cur != char {
				var zero V
				return declined, zero, nil
			}
			child.Advance()
			return emitted, value, nil
		},
	}
}

// Literal maps a fixed character sequence to a token value. The sequence is
// matched as a whole; a partial match declines without consuming anything.
func Literal[V any](text string, value V) Rule[V] {
	if text == "" {
		panic(&diag.InternalError{Msg: "lex: empty literal rule"})
	}
	return Rule[V]{
		name: fmt.Sprintf("literal %q", text),
		apply: func(child *MatchCursor) (outcome, V, error) {
			for _, want := range text {
				if cur, ok := child.Current(); !ok || cur != want {
					var zero V
					return declined, zero, nil
				}
				child.Advance()
			}
			return emitted, value, nil
		},
	}
}

// Skip consumes one character matching pred and restarts the outer loop
// without emitting a token. It is the usual whitespace rule.
func Skip[V any](pred func(rune) bool) Rule[V] {
	return Rule[V]{
		name: "skip",
		apply: func(child *MatchCursor) (outcome, V, error) {
			var zero V
			if cur, ok := child.Current(); !ok || !pred(cur) {
				return declined, zero, nil
			}
			child.Advance()
			return skipped, zero, nil
		},
	}
}

// Detailed enters fn when the current character satisfies start. fn drives
// the match through m and must call Emit or Skip to accept; returning nil
// without doing either declines, and the next rule is tried from the same
// position. A non-nil error is fatal.
func Detailed[V any](start func(rune) bool, fn func(m *Match[V]) error) Rule[V] {
	return Rule[V]{
		name: "detailed",
		apply: func(child *MatchCursor) (outcome, V, error) {
			var zero V
			if cur, ok := child.Current(); !ok || !start(cur) {
				return declined, zero, nil
			}
			match := &Match[V]{cursor: child}
			if err := fn(match); err != nil {
				return declined, zero, err
			}
			return match.outcome, match.value, nil
		},
	}
}

// Named returns a copy of r that reports name in debug output.
func (r Rule[V]) Named(name string) Rule[V] {
	r.name = name
	return r
}

// Match is the state handed to a Detailed rule.
type Match[V any] struct {
	cursor  *MatchCursor
	text    strings.Builder
	outcome outcome
	value   V
}

// Current returns the character under the cursor, or false at end of input.
func (m *Match[V]) Current() (rune, bool) {
	return m.cursor.Current()
}

// Peek returns the character after the current one without consuming.
func (m *Match[V]) Peek() (rune, bool) {
	return m.cursor.Peek()
}

// Advance consumes the current character, appending it to Text, and returns
// the next one. At end of input nothing is consumed.
func (m *Match[V]) Advance() (rune, bool) {
	if cur, ok := m.cursor.Current(); ok {
		m.text.WriteRune(cur)
	}
	return m.cursor.Advance()
}

// Discard consumes the current character without appending it to Text.
func (m *Match[V]) Discard() (rune, bool) {
	return m.cursor.Advance()
}

// Text returns the characters consumed with Advance so far.
func (m *Match[V]) Text() string {
	return m.text.String()
}

// Position returns the span consumed so far.
func (m *Match[V]) Position() source.Position {
	return m.cursor.Position()
}

// Here returns the single-point position of the current character.
func (m *Match[V]) Here() source.Position {
	return m.cursor.Here()
}

// Emit accepts the consumed characters as a token with the given value.
func (m *Match[V]) Emit(value V) error {
	m.outcome = emitted
	m.value = value
	return nil
}

// Skip accepts the consumed characters without producing a token.
func (m *Match[V]) Skip() error {
	m.outcome = skipped
	return nil
}

// Fail returns a diagnostic from tmpl pointing at the current character.
func (m *Match[V]) Fail(tmpl diag.Template, args ...any) error {
	return tmpl.At(m.Here(), args...)
}

// FailAt returns a diagnostic from tmpl pointing at pos.
func (m *Match[V]) FailAt(pos source.Position, tmpl diag.Template, args ...any) error {
	return tmpl.At(pos, args...)
}

// OneOf returns a predicate matching any character of set.
func OneOf(set string) func(rune) bool {
	return func(r rune) bool {
		return strings.ContainsRune(set, r)
	}
}

// Is returns a predicate matching exactly want.
func Is(want rune) func(rune) bool {
	return func(r rune) bool {
		return r == want
	}
}
