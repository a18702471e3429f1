package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultLineLimit is the number of characters of context kept on either
// side of a span before the quoted line is trimmed.
const DefaultLineLimit = 20

const (
	ellipsis        = "..."
	multilineMarker = " [...]"
)

// Part identifies a segment of a rendered report, for painting.
type Part int

// Parts of a rendered report.
const (
	PartHeader Part = iota
	PartCategory
	PartMessage
	PartArrow
	PartLocation
	PartGutter
	PartSource
	PartCaret
	PartMarker
)

// Painter decorates report segments, typically with terminal colors.
// Painting must not change the visible width of a segment.
type Painter interface {
	Paint(part Part, text string) string
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(part Part, text string) string

// Paint implements Painter.
func (f PainterFunc) Paint(part Part, text string) string {
	return f(part, text)
}

type plainPainter struct{}

func (plainPainter) Paint(_ Part, text string) string { return text }

// Renderer turns diagnostics into source-quoting reports.
type Renderer struct {
	// LineLimit is the context kept around a span; DefaultLineLimit when <= 0.
	LineLimit int

	// Paint decorates segments; nil renders plain text.
	Paint Painter
}

// Render renders d with the default renderer.
func Render(d *Diagnostic) string {
	return Renderer{}.Render(d)
}

// Render returns the report for d:
//
//	error[<category>]: <message>
//	 --> <file>:<line>:<column>
//	<line#> | <quoted source line>
//	        | <carets> <message>
//	 <--
func (r Renderer) Render(d *Diagnostic) string {
	painter := r.Paint
	if painter == nil {
		painter = plainPainter{}
	}
	limit := r.LineLimit
	if limit <= 0 {
		limit = DefaultLineLimit
	}

	start, end := d.Pos.Start, d.Pos.End

	var builder strings.Builder
	builder.WriteString(painter.Paint(PartHeader, "error["))
	builder.WriteString(painter.Paint(PartCategory, d.Category))
	builder.WriteString(painter.Paint(PartHeader, "]: "))
	builder.WriteString(painter.Paint(PartMessage, escapeNewlines(d.Message)))
	builder.WriteByte('\n')

	builder.WriteString(painter.Paint(PartArrow, " --> "))
	builder.WriteString(painter.Paint(PartLocation,
		fmt.Sprintf("%s:%d:%d", start.FileName(), start.Line, start.Col)))
	builder.WriteByte('\n')

	if file := start.File(); file != nil {
		line := file.LineRunes(start.Line)
		multiline := d.Pos.IsMultiline()

		endCol := end.Col
		if multiline {
			endCol = len(line)
		}
		q := quote(line, start.Col, endCol, limit)

		lineNum := strconv.Itoa(start.Line)
		builder.WriteString(painter.Paint(PartGutter, lineNum+" | "))
		builder.WriteString(painter.Paint(PartSource, q.text))
		if multiline {
			builder.WriteString(painter.Paint(PartMarker, multilineMarker))
		}
		builder.WriteByte('\n')

		builder.WriteString(painter.Paint(PartGutter, strings.Repeat(" ", len(lineNum))+" | "))
		builder.WriteString(strings.Repeat(" ", q.indent))
		builder.WriteString(painter.Paint(PartCaret, strings.Repeat("^", q.width)))
		builder.WriteByte(' ')
		builder.WriteString(painter.Paint(PartMessage, escapeNewlines(d.Message)))
		builder.WriteByte('\n')
	}

	builder.WriteString(painter.Paint(PartArrow, " <--"))
	builder.WriteByte('\n')

	return builder.String()
}

type quoted struct {
	text   string
	indent int
	width  int
}

// quote trims line around the 1-based inclusive column range [startCol, endCol]
// and reports where the underline starts and how wide it is.
func quote(line []rune, startCol, endCol, limit int) quoted {
	first := startCol - 1
	last := endCol - 1

	width := last - first + 1
	if width < 1 {
		width = 1
	}

	from, prefix := 0, ""
	if lead := min(first, len(line)); lead > limit {
		from = lead - limit
		prefix = ellipsis
	}

	to, suffix := len(line), ""
	if trailing := len(line) - (last + 1); trailing > limit {
		to = last + 1 + limit
		suffix = ellipsis
	}

	return quoted{
		text:   prefix + string(line[from:to]) + suffix,
		indent: first - from + len(prefix),
		width:  width,
	}
}

func escapeNewlines(msg string) string {
	return strings.ReplaceAll(msg, "\n", `\n`)
}
