// Package parse runs recursive-descent grammars over token streams.
//
// A grammar is a set of Symbols. Each symbol has an ordered Block of
// alternatives; an alternative is a chain of steps (token tests or calls to
// other symbols) followed by either a builder or a nested block. Alternatives
// run on spawned cursors and the first one to succeed is committed.
//
// When every alternative fails, the failure that got furthest wins: each
// failure carries the number of steps matched before it, counted cumulatively
// through nested symbols, and only a strictly deeper failure replaces the one
// already kept. If no failure got past the block's own starting depth, the
// block's fallback decides the outcome.
package parse

import (
	"fmt"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/source"
)

// Node is a parsed value and the span of tokens it was built from.
type Node[T any] struct {
	Pos   source.Position
	Value T
}

// Failure is a failed parse attempt and how far it got.
type Failure struct {
	// Depth is the number of steps matched before the failure, including
	// steps matched inside nested symbols.
	Depth int

	// Diag explains the failure. It is never nil.
	Diag *diag.Diagnostic
}

func (f *Failure) Error() string {
	return f.Diag.Error()
}

// Unwrap exposes the diagnostic to errors.As.
func (f *Failure) Unwrap() error {
	return f.Diag
}

// Values holds what an alternative captured, in step order: lex.Token[V]
// for Capture steps and Node[U] for Sub steps. Tok steps capture nothing.
type Values []any

// Get returns vals[idx] as T. A missing index or a type mismatch is a defect
// in the grammar and panics with *diag.InternalError.
func Get[T any](vals Values, idx int) T {
	if idx < 0 || idx >= len(vals) {
		panic(&diag.InternalError{Msg: fmt.Sprintf("parse: value %d requested but %d captured", idx, len(vals))})
	}
	value, ok := vals[idx].(T)
	if !ok {
		var want T
		panic(&diag.InternalError{Msg: fmt.Sprintf("parse: value %d is %T, not %T", idx, vals[idx], want)})
	}
	return value
}
