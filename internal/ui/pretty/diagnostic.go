package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/flexar/pkg/diag"
)

// FormatDiagnostic renders a diagnostic report painted with these styles.
func (s *Styles) FormatDiagnostic(d *diag.Diagnostic, lineLimit int) string {
	return diag.Renderer{LineLimit: lineLimit, Paint: s}.Render(d)
}

// FormatLanguageHint explains that a file looks like another language.
func (s *Styles) FormatLanguageHint(path, language string) string {
	return fmt.Sprintf("%s %s\n",
		s.render(s.Dim, "hint:"),
		s.render(s.Hint, fmt.Sprintf("%s looks like %s, not a calculator program", path, language)))
}

// FormatFileError formats a file that could not be read.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n",
		s.render(s.FilePath, path),
		s.render(s.Failure, fmt.Sprintf("error: %v", err)))
}

// FormatTemplate renders a template's message with "{n}" argument slots
// highlighted.
func (s *Styles) FormatTemplate(tmpl diag.Template) string {
	if !s.color {
		return tmpl.Placeholder()
	}

	var builder strings.Builder
	for idx, segment := range tmpl.Segments {
		if idx > 0 {
			builder.WriteString(s.Code.Render(fmt.Sprintf("{%d}", idx-1)))
		}
		builder.WriteString(segment)
	}
	return builder.String()
}
