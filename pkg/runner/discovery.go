package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds calculator sources matching opts. It returns a sorted,
// de-duplicated list of absolute paths. Files named explicitly are kept even
// when hidden; directories are walked skipping hidden entries.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	walker := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		exclude:    opts.ExcludeGlobs,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := walker.walk(absPath); err != nil {
				return nil, err
			}
			continue
		}
		if walker.matches(absPath) {
			walker.add(absPath)
		}
	}

	slices.Sort(walker.files)
	return walker.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

type walker struct {
	ctx        context.Context
	workDir    string
	extensions []string
	exclude    []string
	seen       map[string]struct{}
	files      []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) rel(path string) string {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// walk adds matching files below root. Unreadable directories and
// symlinked directories are skipped.
func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			if hidden || excluded(w.rel(path), w.exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				return nil //nolint:nilerr // Broken and directory symlinks are skipped.
			}
		}

		if !hidden && w.matches(path) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

func (w *walker) matches(path string) bool {
	ext := filepath.Ext(path)
	if !slices.ContainsFunc(w.extensions, func(want string) bool { return strings.EqualFold(want, ext) }) {
		return false
	}
	return !excluded(w.rel(path), w.exclude)
}

func excluded(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a glob in which "**"
// spans any number of segments. Patterns without a slash also match the
// base name, so "*.tmp.fx" excludes files in any directory.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if !strings.Contains(pattern, "/") && !strings.Contains(pattern, "**") {
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}
	return matchSegments(strings.Split(path, "/"), strings.Split(pattern, "/"))
}

func matchSegments(path, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for skip := 0; skip <= len(path); skip++ {
				if matchSegments(path[skip:], rest) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			return false
		}
		if ok, err := filepath.Match(pattern[0], path[0]); err != nil || !ok {
			return false
		}
		path, pattern = path[1:], pattern[1:]
	}
	return len(path) == 0
}
