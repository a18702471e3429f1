// Package lex turns source text into tokens by trying ordered character
// rules at each input position.
//
// Rules are tried in declaration order and the first rule whose leading
// condition matches wins. A rule that needs more than one character of
// lookahead (numbers, identifiers, strings) is a Detailed rule: it drives its
// own child cursor and either emits a token, skips the consumed text, declines,
// or fails with a diagnostic. Failures are fatal; there is no resynchronization.
package lex

import (
	"fmt"

	"github.com/yaklabco/flexar/pkg/source"
)

// Token is a lexed value and the span of characters it was produced from.
// The span ends on the last consumed character, including closing delimiters.
type Token[V any] struct {
	Pos   source.Position
	Value V
}

// String returns "value@file:line:col".
func (t Token[V]) String() string {
	return fmt.Sprintf("%v@%s", t.Value, t.Pos)
}

// Values strips positions from a token slice.
func Values[V any](tokens []Token[V]) []V {
	out := make([]V, len(tokens))
	for idx, tok := range tokens {
		out[idx] = tok.Value
	}
	return out
}
