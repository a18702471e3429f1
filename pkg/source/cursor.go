package source

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the panic value wrapped when a cursor is read past the
// bounds its invariants guarantee. Reaching it is a defect in the caller.
var ErrOutOfBounds = errors.New("cursor read past file bounds")

// Cursor is a single point in a file: a 1-based line and column.
//
// Cursor is a small value type. Copying it (see Spawn) is the backtracking
// primitive: mutate the copy, discard it on failure, adopt it on success.
//
// Column LineLen+1 of a line is that line's virtual '\n'. The end-of-input
// state sits on the last line at column LineLen+2.
type Cursor struct {
	file *FileContent
	Line int
	Col  int
}

// Start returns a cursor at line 1, column 1 of file.
func Start(file *FileContent) Cursor {
	return Cursor{file: file, Line: 1, Col: 1}
}

// At returns a cursor at the given 1-based line and column of file.
// The location is not validated.
func At(file *FileContent, line, col int) Cursor {
	return Cursor{file: file, Line: line, Col: col}
}

// File returns the shared file content.
func (c Cursor) File() *FileContent {
	return c.file
}

// FileName returns the name of the file, or "" for a zero cursor.
func (c Cursor) FileName() string {
	if c.file == nil {
		return ""
	}
	return c.file.Name()
}

// IsValid reports whether the cursor refers to a file.
func (c Cursor) IsValid() bool {
	return c.file != nil && c.Line > 0 && c.Col > 0
}

// Current returns the character under the cursor, or false at end of input.
func (c Cursor) Current() (rune, bool) {
	if c.file == nil {
		return 0, false
	}
	return c.file.At(c.Line, c.Col)
}

// MustCurrent returns the character under the cursor and panics past the end.
func (c Cursor) MustCurrent() rune {
	r, ok := c.Current()
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrOutOfBounds, c))
	}
	return r
}

// AtEOF reports whether the cursor is in the end-of-input state.
func (c Cursor) AtEOF() bool {
	_, ok := c.Current()
	return !ok
}

// Advance moves one character forward and returns the new current character.
// From the final line's '\n' it enters the end-of-input state and returns false;
// advancing at end of input is a no-op.
func (c *Cursor) Advance() (rune, bool) {
	if c.file == nil {
		return 0, false
	}
	length := c.file.LineLen(c.Line)
	switch {
	case c.Col <= length:
		c.Col++
	case c.Col == length+1 && c.Line < c.file.LineCount():
		c.Line++
		c.Col = 1
	case c.Col == length+1:
		c.Col = length + 2
		return 0, false
	default:
		return 0, false
	}
	return c.Current()
}

// Revance is the exact inverse of Advance. At line 1, column 1 it leaves the
// cursor unchanged and returns false.
func (c *Cursor) Revance() (rune, bool) {
	if c.file == nil {
		return 0, false
	}
	switch {
	case c.Col > 1:
		c.Col--
	case c.Line > 1:
		c.Line--
		c.Col = c.file.LineLen(c.Line) + 1
	default:
		return 0, false
	}
	return c.Current()
}

// Spawn returns an independent copy starting at the same location.
func (c Cursor) Spawn() Cursor {
	return c
}

// Compare orders cursors by line, then column.
func (c Cursor) Compare(other Cursor) int {
	switch {
	case c.Line < other.Line:
		return -1
	case c.Line > other.Line:
		return 1
	case c.Col < other.Col:
		return -1
	case c.Col > other.Col:
		return 1
	default:
		return 0
	}
}

// Before reports whether c comes strictly before other.
func (c Cursor) Before(other Cursor) bool {
	return c.Compare(other) < 0
}

// String returns "file:line:col".
func (c Cursor) String() string {
	return fmt.Sprintf("%s:%d:%d", c.FileName(), c.Line, c.Col)
}
