package parse

import (
	"fmt"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/lex"
	"github.com/yaklabco/flexar/pkg/source"
)

// Cursor is an index into a token slice. Index len(tokens) is end of input.
// Cursor is a value type; copies are independent, which is what alternatives
// use to backtrack.
type Cursor[V any] struct {
	tokens []lex.Token[V]
	idx    int
}

// NewCursor starts at the first token.
func NewCursor[V any](tokens []lex.Token[V]) Cursor[V] {
	return Cursor[V]{tokens: tokens}
}

// Current returns the token under the cursor, or false at end of input.
func (c Cursor[V]) Current() (lex.Token[V], bool) {
	if c.idx >= len(c.tokens) {
		return lex.Token[V]{}, false
	}
	return c.tokens[c.idx], true
}

// Advance moves to the next token. At end of input it returns false.
func (c *Cursor[V]) Advance() bool {
	if c.idx >= len(c.tokens) {
		return false
	}
	c.idx++
	return true
}

// Revance moves back one token. At the first token it returns false.
func (c *Cursor[V]) Revance() bool {
	if c.idx == 0 {
		return false
	}
	c.idx--
	return true
}

// Spawn returns an independent copy at the same index.
func (c Cursor[V]) Spawn() Cursor[V] {
	return c
}

// Commit adopts the progress of a child spawned from c.
func (c *Cursor[V]) Commit(child Cursor[V]) {
	c.idx = child.idx
}

// AtEOF reports whether every token has been consumed.
func (c Cursor[V]) AtEOF() bool {
	return c.idx >= len(c.tokens)
}

// Index returns the number of tokens consumed.
func (c Cursor[V]) Index() int {
	return c.idx
}

// Position returns the span of the current token. At end of input it is the
// point just after the last token, or the zero Position for empty input.
func (c Cursor[V]) Position() source.Position {
	if tok, ok := c.Current(); ok {
		return tok.Pos
	}
	if len(c.tokens) == 0 {
		return source.Position{}
	}
	end := c.tokens[len(c.tokens)-1].Pos.End
	end.Advance()
	return source.Point(end)
}

// Found describes the current token for messages: its value, or
// "end of input".
func (c Cursor[V]) Found() string {
	if tok, ok := c.Current(); ok {
		return fmt.Sprint(tok.Value)
	}
	return "end of input"
}

// spanFrom covers the tokens consumed between from and c. When nothing was
// consumed it is the start point of the token at from.
func (c Cursor[V]) spanFrom(from Cursor[V]) source.Position {
	if c.idx <= from.idx {
		pos := from.Position()
		return source.Point(pos.Start)
	}
	return source.Combine(c.tokens[from.idx].Pos, c.tokens[c.idx-1].Pos)
}

// unexpected is the diagnostic for a failure with no better explanation.
func (c Cursor[V]) unexpected() *diag.Diagnostic {
	tok, ok := c.Current()
	if !ok {
		return diag.UnexpectedEOF.At(c.Position())
	}
	return diag.UnexpectedToken.At(tok.Pos, tok.Value)
}
