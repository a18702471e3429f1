// Package runner checks many calculator sources concurrently.
package runner

import "github.com/yaklabco/flexar/pkg/source"

// Options controls a multi-file check.
type Options struct {
	// Paths are the files or directories to check. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths. Defaults to the process working directory.
	WorkingDir string

	// Extensions are the lowercase extensions, with leading dot, treated as
	// calculator sources. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip files or directories, matched against paths relative
	// to WorkingDir.
	ExcludeGlobs []string

	// Jobs bounds the number of concurrent workers. 0 or negative means runtime.NumCPU().
	Jobs int

	// Form is the normalization applied to every source before lexing.
	Form source.Form

	// Execute also evaluates each program, surfacing runtime diagnostics.
	Execute bool
}

// DefaultExtensions returns the default calculator source extensions.
func DefaultExtensions() []string {
	return []string{".fx"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
