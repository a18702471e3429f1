package configloader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/flexar/pkg/config"
)

// envVarPrefix is the prefix for all flexcalc environment variables.
const envVarPrefix = "FLEXCALC_"

// envVar binds one environment variable to a config field.
type envVar struct {
	suffix string
	help   string
	apply  func(cfg *config.Config, value string) error
}

// envVars lists the supported variables in documentation order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{suffix: "LINE_LIMIT", help: "Trim rendered source lines longer than this", apply: func(cfg *config.Config, value string) error {
		return setInt(&cfg.LineLimit, "LINE_LIMIT", value)
	}},
	{suffix: "COLOR", help: "Colorized output: auto, always or never", apply: func(cfg *config.Config, value string) error {
		cfg.Color = config.ColorMode(value)
		return nil
	}},
	{suffix: "FORMAT", help: "Output format: text or json", apply: func(cfg *config.Config, value string) error {
		cfg.Format = config.OutputFormat(value)
		return nil
	}},
	{suffix: "LOG_LEVEL", help: "Log level: debug, info, warn or error", apply: func(cfg *config.Config, value string) error {
		cfg.LogLevel = value
		return nil
	}},
	{suffix: "NORMALIZE", help: "Unicode normalization: none, nfc or nfd", apply: func(cfg *config.Config, value string) error {
		cfg.Normalize = value
		return nil
	}},
	{suffix: "CHECK_JOBS", help: "Concurrent check workers (0 = auto)", apply: func(cfg *config.Config, value string) error {
		return setInt(&cfg.Check.Jobs, "CHECK_JOBS", value)
	}},
	{suffix: "CHECK_EXECUTE", help: "Evaluate programs during check: true or false", apply: func(cfg *config.Config, value string) error {
		execute, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sCHECK_EXECUTE: %q (expected true/false/1/0)", envVarPrefix, value)
		}
		cfg.Check.Execute = &execute
		return nil
	}},
	{suffix: "CHECK_IGNORE", help: "Comma-separated glob patterns to skip", apply: func(cfg *config.Config, value string) error {
		cfg.Check.Ignore = parseSliceValue(value)
		return nil
	}},
	{suffix: "CHECK_EXTENSIONS", help: "Comma-separated source extensions", apply: func(cfg *config.Config, value string) error {
		cfg.Check.Extensions = parseSliceValue(value)
		return nil
	}},
}

// LoadFromEnv applies FLEXCALC_* overrides read through getenv. Unset and
// empty variables are ignored.
func LoadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for _, variable := range envVars {
		value := getenv(envVarPrefix + variable.suffix)
		if value == "" {
			continue
		}
		if err := variable.apply(cfg, value); err != nil {
			return err
		}
	}
	return nil
}

// ListEnvVars returns each supported variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for _, variable := range envVars {
		out[envVarPrefix+variable.suffix] = variable.help
	}
	return out
}

func setInt(field *int, suffix, value string) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for %s%s: %q", envVarPrefix, suffix, value)
	}
	*field = parsed
	return nil
}

// parseSliceValue splits a comma-separated list, trimming and dropping empty elements.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
