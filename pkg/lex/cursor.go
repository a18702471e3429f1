package lex

import "github.com/yaklabco/flexar/pkg/source"

// MatchCursor is the lexer's traversal state. It remembers where the pending
// token started, where matching currently is, and the last character consumed,
// so that a token's span covers exactly the characters that produced it.
//
// MatchCursor is a value type: Spawn hands out an independent child, and
// Commit adopts a child's progress once its rule succeeds.
type MatchCursor struct {
	start    source.Cursor
	pos      source.Cursor
	last     source.Cursor
	consumed int
}

// NewMatchCursor starts matching at c.
func NewMatchCursor(c source.Cursor) MatchCursor {
	return MatchCursor{start: c, pos: c, last: c}
}

// Spawn returns a child whose pending token starts at the current position.
func (m MatchCursor) Spawn() MatchCursor {
	return NewMatchCursor(m.pos)
}

// Commit adopts the progress of a child spawned from m.
func (m *MatchCursor) Commit(child MatchCursor) {
	m.pos = child.pos
	if child.consumed > 0 {
		m.last = child.last
		m.consumed += child.consumed
	}
}

// Current returns the character under the cursor, or false at end of input.
func (m MatchCursor) Current() (rune, bool) {
	return m.pos.Current()
}

// Peek returns the character after the current one without moving.
func (m MatchCursor) Peek() (rune, bool) {
	next := m.pos.Spawn()
	return next.Advance()
}

// Advance consumes the current character and returns the next one.
// At end of input nothing is consumed.
func (m *MatchCursor) Advance() (rune, bool) {
	if m.pos.AtEOF() {
		return 0, false
	}
	m.last = m.pos
	m.consumed++
	return m.pos.Advance()
}

// AtEOF reports whether the cursor reached end of input.
func (m MatchCursor) AtEOF() bool {
	return m.pos.AtEOF()
}

// Consumed returns the number of characters consumed since the cursor started.
func (m MatchCursor) Consumed() int {
	return m.consumed
}

// Cursor returns the current location.
func (m MatchCursor) Cursor() source.Cursor {
	return m.pos
}

// Here returns a single-point position at the current location.
func (m MatchCursor) Here() source.Position {
	return source.Point(m.pos)
}

// Position returns the span from the first to the last consumed character,
// or a single point at the start when nothing has been consumed.
func (m MatchCursor) Position() source.Position {
	if m.consumed == 0 {
		return source.Point(m.start)
	}
	return source.Span(m.start, m.last)
}
