package source

// Position is a span of source text between two cursors, both inclusive.
// Start never comes after End.
type Position struct {
	Start Cursor
	End   Cursor
}

// Point returns a single-character position at c.
func Point(c Cursor) Position {
	return Position{Start: c, End: c}
}

// Span returns the position from start to end, swapping them if needed so
// that Start <= End holds.
func Span(start, end Cursor) Position {
	if end.Before(start) {
		start, end = end, start
	}
	return Position{Start: start, End: end}
}

// Combine returns the span covering both positions. For a preceding b
// this is {a.Start, b.End}.
func Combine(a, b Position) Position {
	if b.Start.Before(a.Start) {
		a, b = b, a
	}
	end := b.End
	if end.Before(a.End) {
		end = a.End
	}
	return Position{Start: a.Start, End: end}
}

// IsValid reports whether the position points into a file.
func (p Position) IsValid() bool {
	return p.Start.IsValid()
}

// IsPoint reports whether the position covers a single character.
func (p Position) IsPoint() bool {
	return p.Start == p.End
}

// IsMultiline reports whether the span crosses a line boundary.
func (p Position) IsMultiline() bool {
	return p.End.Line > p.Start.Line
}

// FileName returns the name of the file the position points into.
func (p Position) FileName() string {
	return p.Start.FileName()
}

// String returns the start location as "file:line:col".
func (p Position) String() string {
	return p.Start.String()
}
