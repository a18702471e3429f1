// Package source models source files and the locations inside them.
//
// A FileContent is split into lines once and shared by every Cursor and
// Position derived from it. Columns count code points, not bytes.
package source

import "strings"

// FileContent is an immutable, line-split view of one source file.
type FileContent struct {
	name  string
	lines [][]rune
}

// NewFileContent splits text on '\n' and returns the shared file view.
// A trailing newline produces a final empty line.
func NewFileContent(name, text string) *FileContent {
	raw := strings.Split(text, "\n")
	lines := make([][]rune, len(raw))
	for idx, line := range raw {
		lines[idx] = []rune(line)
	}
	return &FileContent{name: name, lines: lines}
}

// Name returns the file name given at construction.
func (f *FileContent) Name() string {
	return f.name
}

// LineCount returns the number of lines (always at least 1).
func (f *FileContent) LineCount() int {
	return len(f.lines)
}

// Line returns the text of a 1-based line number without its terminator.
func (f *FileContent) Line(line int) (string, bool) {
	if line < 1 || line > len(f.lines) {
		return "", false
	}
	return string(f.lines[line-1]), true
}

// LineRunes returns the code points of a 1-based line. The slice must not be modified.
func (f *FileContent) LineRunes(line int) []rune {
	if line < 1 || line > len(f.lines) {
		return nil
	}
	return f.lines[line-1]
}

// LineLen returns the number of code points on a 1-based line, or -1 when out of range.
func (f *FileContent) LineLen(line int) int {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return len(f.lines[line-1])
}

// At returns the character at a 1-based line and column. Column LineLen+1
// is the line's virtual '\n'.
func (f *FileContent) At(line, col int) (rune, bool) {
	if line < 1 || line > len(f.lines) || col < 1 {
		return 0, false
	}
	runes := f.lines[line-1]
	switch {
	case col <= len(runes):
		return runes[col-1], true
	case col == len(runes)+1:
		return '\n', true
	default:
		return 0, false
	}
}

// Text reassembles the file's text, joining lines with '\n'.
func (f *FileContent) Text() string {
	lines := make([]string, len(f.lines))
	for idx, line := range f.lines {
		lines[idx] = string(line)
	}
	return strings.Join(lines, "\n")
}
