package config

import (
	"fmt"
	"strings"
)

// TemplateFormat is the file format of a generated configuration.
type TemplateFormat string

const (
	TemplateYAML TemplateFormat = "yaml"
	TemplateTOML TemplateFormat = "toml"
)

// TemplateHeader opens every generated configuration.
const TemplateHeader = `flexcalc configuration
Precedence: flags > FLEXCALC_* environment > --config > project > user > system > defaults.`

// yamlTemplate documents each key next to its default.
const yamlTemplate = `
# Trim rendered source lines longer than this many characters.
line_limit: 20

# Colorized output: auto, always or never.
color: auto

# Output format for diagnostics and check results: text or json.
format: text

# Log level: debug, info, warn or error.
log_level: warn

# Unicode normalization applied to input: none, nfc or nfd.
normalize: none

check:
  # Source file extensions.
  extensions:
    - .fx

  # Glob patterns to skip ("**" spans directories).
  # ignore:
  #   - "vendor/**"

  # Concurrent workers (0 = one per CPU).
  jobs: 0

  # Evaluate programs after parsing them.
  execute: false
`

// GenerateTemplate returns a commented default configuration.
func GenerateTemplate(format TemplateFormat) ([]byte, error) {
	switch format {
	case TemplateYAML, "":
		return []byte(commentLines(TemplateHeader, "# ") + yamlTemplate), nil
	case TemplateTOML:
		execute := false
		cfg := NewConfig()
		cfg.Check.Execute = &execute

		body, err := cfg.ToTOML()
		if err != nil {
			return nil, err
		}
		return []byte(commentLines(TemplateHeader, "# ") + "\n" + string(body)), nil
	default:
		return nil, fmt.Errorf("unknown template format %q; valid formats: yaml, toml", format)
	}
}

func commentLines(text, prefix string) string {
	var builder strings.Builder
	for line := range strings.SplitSeq(text, "\n") {
		builder.WriteString(prefix)
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}
