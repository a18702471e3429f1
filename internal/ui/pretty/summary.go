package pretty

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/flexar/pkg/runner"
)

const summaryDividerWidth = 40

func plural(count int, word string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, word)
	}
	return fmt.Sprintf("%d %ss", count, word)
}

// FormatSummaryOneLine formats check statistics as a single line.
// Example: "2 files failed (E007, RT001) of 5 checked, 1 unreadable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.render(s.Dim, "No files to check.") + "\n"
	}

	var msg string
	if stats.FilesFailed == 0 {
		msg = s.render(s.Success, "No diagnostics") +
			s.render(s.Dim, fmt.Sprintf(" (%s checked, %s)", plural(stats.FilesChecked, "file"), plural(stats.Statements, "statement")))
	} else {
		codes := slices.Sorted(maps.Keys(stats.DiagnosticsByCode))
		msg = s.render(s.Failure, plural(stats.FilesFailed, "file")+" failed") +
			fmt.Sprintf(" (%s) of %d checked", strings.Join(codes, ", "), stats.FilesChecked)
	}

	if stats.FilesErrored > 0 {
		msg += ", " + s.render(s.Warning, fmt.Sprintf("%d unreadable", stats.FilesErrored))
	}
	return msg + "\n"
}

// FormatSummary formats check statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.render(s.SummaryTitle, "Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value int) {
		fmt.Fprintf(&builder, "  %-20s%s\n", label+":", s.render(s.SummaryValue, strconv.Itoa(value)))
	}
	row("Files discovered", stats.FilesDiscovered)
	row("Files checked", stats.FilesChecked)
	row("Statements", stats.Statements)
	if stats.FilesErrored > 0 {
		row("Files unreadable", stats.FilesErrored)
	}
	if stats.FilesFailed > 0 {
		row("Files failed", stats.FilesFailed)
		for _, code := range slices.Sorted(maps.Keys(stats.DiagnosticsByCode)) {
			fmt.Fprintf(&builder, "    %-18s%d\n", s.render(s.Code, code), stats.DiagnosticsByCode[code])
		}
	}

	builder.WriteString("\n")
	switch {
	case stats.FilesFailed > 0:
		builder.WriteString(s.render(s.Failure, "Check failed"))
	case stats.FilesErrored > 0:
		builder.WriteString(s.render(s.Warning, "Check completed with unreadable files"))
	default:
		builder.WriteString(s.render(s.Success, "Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
