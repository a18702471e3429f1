// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/flexar/pkg/diag"
)

var _ diag.Painter = (*Styles)(nil)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	color bool

	// Diagnostic report parts
	Header   lipgloss.Style
	Category lipgloss.Style
	Message  lipgloss.Style
	Arrow    lipgloss.Style
	Location lipgloss.Style
	Gutter   lipgloss.Style
	Source   lipgloss.Style
	Caret    lipgloss.Style
	Marker   lipgloss.Style

	// Listings
	FilePath lipgloss.Style
	Code     lipgloss.Style
	Hint     lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	Warning      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	return &Styles{
		color: true,

		Header:   red.Bold(true),
		Category: red.Bold(true),
		Message:  lipgloss.NewStyle().Bold(true),
		Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Location: dim,
		Gutter:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Source:   lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion),
		Caret:    red.Bold(true),
		Marker:   dim,

		FilePath: lipgloss.NewStyle().Bold(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      red.Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		Dim:  dim,
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:       plain,
		Category:     plain,
		Message:      plain,
		Arrow:        plain,
		Location:     plain,
		Gutter:       plain,
		Source:       plain,
		Caret:        plain,
		Marker:       plain,
		FilePath:     plain,
		Code:         plain,
		Hint:         plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Warning:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// ColorEnabled reports whether the styles emit ANSI sequences.
func (s *Styles) ColorEnabled() bool {
	return s.color
}

// Paint implements diag.Painter. Without color the text is returned as is,
// so plain reports stay byte-identical to diag.Render.
func (s *Styles) Paint(part diag.Part, text string) string {
	if !s.color || text == "" {
		return text
	}

	switch part {
	case diag.PartHeader:
		return s.Header.Render(text)
	case diag.PartCategory:
		return s.Category.Render(text)
	case diag.PartMessage:
		return s.Message.Render(text)
	case diag.PartArrow:
		return s.Arrow.Render(text)
	case diag.PartLocation:
		return s.Location.Render(text)
	case diag.PartGutter:
		return s.Gutter.Render(text)
	case diag.PartSource:
		return s.Source.Render(text)
	case diag.PartCaret:
		return s.Caret.Render(text)
	case diag.PartMarker:
		return s.Marker.Render(text)
	default:
		return text
	}
}

// render applies style only when color is enabled.
func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
