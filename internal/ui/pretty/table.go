package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/flexar/pkg/diag"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minCodeWidth     = 4
	minCategoryWidth = 8
	heavySeparator   = "="
	lightSeparator   = "-"
)

type catalogColumnWidths struct {
	code     int
	category int
	message  int
}

// FormatCatalogTable lists the templates of each catalog as a table, one
// section per catalog in the order given.
func (s *Styles) FormatCatalogTable(catalogs ...*diag.Catalog) string {
	widths := catalogColumnWidths{code: minCodeWidth, category: minCategoryWidth, message: len("MESSAGE")}
	for _, catalog := range catalogs {
		for _, tmpl := range catalog.Templates() {
			widths.code = max(widths.code, lipgloss.Width(tmpl.Code))
			widths.category = max(widths.category, lipgloss.Width(tmpl.Category))
			widths.message = max(widths.message, lipgloss.Width(tmpl.Placeholder()))
		}
	}

	var builder strings.Builder

	builder.WriteString(s.formatCatalogRow(widths, s.render(s.Bold, "CODE"), s.render(s.Bold, "CATEGORY"), s.render(s.Bold, "MESSAGE")))
	builder.WriteString(s.formatSeparator(widths, heavySeparator))

	for idx, catalog := range catalogs {
		if idx > 0 {
			builder.WriteString(s.formatSeparator(widths, lightSeparator))
		}
		builder.WriteString(s.render(s.SummaryTitle, catalog.Name()))
		builder.WriteString("\n")
		for _, tmpl := range catalog.Templates() {
			builder.WriteString(s.formatCatalogRow(widths,
				s.render(s.Code, tmpl.Code),
				s.render(s.Dim, tmpl.Category),
				s.FormatTemplate(tmpl)))
		}
	}

	builder.WriteString(s.formatSeparator(widths, heavySeparator))
	return builder.String()
}

// formatCatalogRow pads on visible width so styled cells stay aligned.
func (s *Styles) formatCatalogRow(widths catalogColumnWidths, code, category, message string) string {
	gap := strings.Repeat(" ", tablePadding)
	line := padRight(code, widths.code) + gap + padRight(category, widths.category) + gap + message
	return strings.TrimRight(line, " ") + "\n"
}

func (s *Styles) formatSeparator(widths catalogColumnWidths, char string) string {
	total := widths.code + widths.category + widths.message + 2*tablePadding
	return s.render(s.Dim, strings.Repeat(char, total)) + "\n"
}

func padRight(text string, width int) string {
	if pad := width - lipgloss.Width(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}
