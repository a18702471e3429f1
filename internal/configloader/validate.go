package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/flexar/pkg/config"
	"github.com/yaklabco/flexar/pkg/source"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "check.jobs").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings. Empty fields are
// treated as unset and pass.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.LineLimit < 0 {
		result.fail("line_limit", cfg.LineLimit, "line_limit must be positive")
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.fail("color", cfg.Color, "invalid color %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.Format != "" {
		if _, err := config.ParseOutputFormat(string(cfg.Format)); err != nil {
			result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json", cfg.Format)
		}
	}

	if cfg.LogLevel != "" {
		if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
			result.fail("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error, fatal", cfg.LogLevel)
		}
	}

	if cfg.Normalize != "" {
		if _, err := source.ParseForm(cfg.Normalize); err != nil {
			result.fail("normalize", cfg.Normalize, "invalid normalization %q; must be one of: none, nfc, nfd", cfg.Normalize)
		}
	}

	validateCheck(cfg.Check, result)

	return result
}

func validateCheck(check config.CheckConfig, result *ValidationResult) {
	if check.Jobs < 0 {
		result.fail("check.jobs", check.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	for idx, ext := range check.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.fail(fmt.Sprintf("check.extensions[%d]", idx), ext, "extension %q must start with a dot", ext)
		} else if strings.ContainsAny(ext, "*?[") {
			result.warn(fmt.Sprintf("check.extensions[%d]", idx), ext, "extension %q is matched literally, not as a glob", ext)
		}
	}

	for idx, pattern := range check.Ignore {
		// filepath.Match only errors for malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("check.ignore[%d]", idx), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// ValidateWithFile validates a single file's configuration and stamps its
// path on every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for idx := range result.Errors {
		result.Errors[idx].FilePath = filePath
	}
	for idx := range result.Warnings {
		result.Warnings[idx].FilePath = filePath
	}
	return result
}
