package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/flexar/internal/configloader"
	"github.com/yaklabco/flexar/internal/ui/pretty"
)

// helpStyles contains Lipgloss styles for command help formatting.
type helpStyles struct {
	command     lipgloss.Style
	heading     lipgloss.Style
	subcommand  lipgloss.Style
	flag        lipgloss.Style
	description lipgloss.Style
	example     lipgloss.Style
	dim         lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{plain, plain, plain, plain, plain, plain, plain}
	}
	return helpStyles{
		command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		description: lipgloss.NewStyle(),
		example:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles helpStyles
	usage  *template.Template
	help   *template.Template
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlags .InheritedFlags }}
{{- end}}

{{- if not .HasParent}}

{{ styleHeading "Environment:" }}
{{ envVars }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}`

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer))}

	funcs := template.FuncMap{
		"styleCommand":            h.styles.command.Render,
		"styleHeading":            h.styles.heading.Render,
		"styleSubcommand":         h.styles.subcommand.Render,
		"styleExample":            h.styles.example.Render,
		"styleDim":                h.styles.dim.Render,
		"styleFlags":              h.styleFlags,
		"envVars":                 h.envVars,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
	h.usage = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	h.help = template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate + usageTemplate))
	return h
}

// ApplyToCommand installs the styled help on cmd; subcommands inherit it.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := h.usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// styleFlags styles pflag usage lines of the form
// "  -c, --config string   description".
func (h *HelpFormatter) styleFlags(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for idx, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		flagPart, desc, ok := strings.Cut(trimmed, "  ")
		if !ok {
			continue
		}

		var styled strings.Builder
		for pos, field := range strings.Fields(flagPart) {
			if pos > 0 {
				styled.WriteByte(' ')
			}
			if name, comma := strings.CutSuffix(field, ","); strings.HasPrefix(name, "-") {
				styled.WriteString(h.styles.flag.Render(name))
				if comma {
					styled.WriteByte(',')
				}
			} else {
				styled.WriteString(h.styles.dim.Render(field))
			}
		}

		indent := line[:len(line)-len(trimmed)]
		lines[idx] = indent + styled.String() + "   " + h.styles.description.Render(strings.TrimLeft(desc, " "))
	}
	return strings.Join(lines, "\n")
}

// envVars lists the FLEXCALC_* overrides.
func (h *HelpFormatter) envVars() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	lines := make([]string, len(names))
	for idx, name := range names {
		lines[idx] = "  " + h.styles.flag.Render(rpad(name, width)) + "   " + vars[name]
	}
	return strings.Join(lines, "\n")
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
