// Package configloader resolves the flexcalc configuration. It implements
// XDG-style discovery, layered merging, FLEXCALC_* environment overrides
// and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/flexar/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is a config file path from --config. It is loaded on top
	// of project config.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// CLIConfig contains configuration from CLI flags. It has the highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (FLEXCALC_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.flexcalc.{yml,yaml,toml} upward search)
//  5. User config ($XDG_CONFIG_HOME/flexcalc/config.yaml)
//  6. System config (/etc/flexcalc/config.yaml)
//  7. Defaults
//
// Validation failures are returned as *ValidationError.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir, getenv)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{name: "system", path: paths.System, skip: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, skip: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skip: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}

		layerCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}

		validation := ValidateWithFile(layerCfg, layer.path)
		if !validation.Valid() {
			return nil, firstError(validation)
		}
		for _, warning := range validation.Warnings {
			result.Warnings = append(result.Warnings, warning.Error())
		}

		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg, getenv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, firstError(validation)
	}

	result.Config = cfg
	return result, nil
}

// firstError returns the first validation error, joined with a count of the rest.
func firstError(validation *ValidationResult) error {
	first := &validation.Errors[0]
	if len(validation.Errors) == 1 {
		return first
	}
	return errors.Join(first, fmt.Errorf("and %d more configuration error(s)", len(validation.Errors)-1))
}

// loadConfigFile loads a YAML or TOML configuration file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.Decode(path, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
