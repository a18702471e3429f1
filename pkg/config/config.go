// Package config defines the flexcalc configuration. The types are plain
// data; discovery, merging and validation live in internal/configloader.
package config

import (
	"fmt"
	"strings"
)

// OutputFormat selects how diagnostics and check results are written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat parses a format name. The empty string is FormatText.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json", name)
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the mode is one of the known modes.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DefaultLineLimit is the width at which rendered source lines are trimmed.
const DefaultLineLimit = 20

// Config is the root configuration structure.
type Config struct {
	// LineLimit trims long source lines in rendered diagnostics.
	LineLimit int `yaml:"line_limit,omitempty" toml:"line_limit,omitempty"`

	// Color is "auto", "always" or "never".
	Color ColorMode `yaml:"color,omitempty" toml:"color,omitempty"`

	// Format is the output format for diagnostics and check results.
	Format OutputFormat `yaml:"format,omitempty" toml:"format,omitempty"`

	// LogLevel is a charmbracelet/log level name.
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level,omitempty"`

	// Normalize is the Unicode normalization applied to input: none, nfc or nfd.
	Normalize string `yaml:"normalize,omitempty" toml:"normalize,omitempty"`

	// Check configures the multi-file check command.
	Check CheckConfig `yaml:"check,omitempty" toml:"check,omitempty"`
}

// CheckConfig configures `flexcalc check`.
type CheckConfig struct {
	// Extensions are the source file extensions, with leading dot.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Jobs bounds concurrent workers; 0 means one per CPU.
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	// Execute evaluates programs after parsing them. A nil pointer is unset.
	Execute *bool `yaml:"execute,omitempty" toml:"execute,omitempty"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		LineLimit: DefaultLineLimit,
		Color:     ColorAuto,
		Format:    FormatText,
		LogLevel:  "warn",
		Normalize: "none",
		Check: CheckConfig{
			Extensions: []string{".fx"},
		},
	}
}

// ShouldExecute reports whether check evaluates programs.
func (c CheckConfig) ShouldExecute() bool {
	return c.Execute != nil && *c.Execute
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Check.Extensions = cloneStrings(c.Check.Extensions)
	clone.Check.Ignore = cloneStrings(c.Check.Ignore)
	if c.Check.Execute != nil {
		execute := *c.Check.Execute
		clone.Check.Execute = &execute
	}
	return &clone
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
