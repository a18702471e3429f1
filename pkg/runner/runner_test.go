package runner_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/flexar/pkg/fsutil"
	"github.com/yaklabco/flexar/pkg/runner"
)

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.New(nil).Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.False(t, result.HasFailures())
	assert.False(t, result.HasErrors())
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"ok.fx":      "let a = 2;\na * 3;\n",
		"paren.fx":   "(1 + 2;",
		"unknown.fx": "b + 1;",
		"python.fx":  "def f(x):\n    return x\n",
	})

	result, err := runner.New(nil).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	require.Len(t, result.Files, 4)
	assert.Equal(t, []string{"ok.fx", "paren.fx", "python.fx", "unknown.fx"}, outcomePaths(t, dir, result))

	ok := result.Files[0]
	assert.Nil(t, ok.Diagnostic)
	assert.NoError(t, ok.Error)
	assert.Equal(t, 2, ok.Statements)

	paren := result.Files[1]
	require.NotNil(t, paren.Diagnostic)
	assert.Equal(t, "E007", paren.Diagnostic.Code)
	assert.Empty(t, paren.Language)

	python := result.Files[2]
	require.NotNil(t, python.Diagnostic)
	assert.Equal(t, "python", python.Language)

	// Compiling alone never evaluates, so the unknown variable passes.
	assert.Nil(t, result.Files[3].Diagnostic)

	assert.Equal(t, 4, result.Stats.FilesDiscovered)
	assert.Equal(t, 4, result.Stats.FilesChecked)
	assert.Equal(t, 2, result.Stats.FilesFailed)
	assert.Equal(t, 3, result.Stats.Statements)
	assert.True(t, result.HasFailures())
}

func TestRunner_Run_Execute(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"ok.fx":      "let a = 2;\na * 3;\n",
		"unknown.fx": "b + 1;",
	})

	result, err := runner.New(nil).Run(context.Background(), runner.Options{WorkingDir: dir, Execute: true})
	require.NoError(t, err)
	require.Len(t, result.Files, 2)

	assert.Nil(t, result.Files[0].Diagnostic)
	require.NotNil(t, result.Files[1].Diagnostic)
	assert.Equal(t, "RT001", result.Files[1].Diagnostic.Code)
	assert.Equal(t, map[string]int{"RT001": 1}, result.Stats.DiagnosticsByCode)
}

func TestRunner_Run_ReadErrors(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"good.fx": "1;"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.fx"), []byte{0xff, ';'}, 0o644))

	result, err := runner.New(nil).Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	require.Len(t, result.Files, 2)

	require.ErrorIs(t, result.Files[0].Error, fsutil.ErrInvalidUTF8)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesChecked)
	assert.True(t, result.HasErrors())
	assert.False(t, result.HasFailures())
}

func TestRunner_Run_SerialMatchesParallel(t *testing.T) {
	t.Parallel()

	files := make(map[string]string)
	for idx := range 24 {
		content := fmt.Sprintf("%d * 2;", idx)
		if idx%5 == 0 {
			content = "(1"
		}
		files[fmt.Sprintf("f%02d.fx", idx)] = content
	}
	dir := writeTree(t, files)

	serial, err := runner.New(nil).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := runner.New(nil).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, outcomePaths(t, dir, serial), outcomePaths(t, dir, parallel))
	assert.Equal(t, serial.Stats, parallel.Stats)
	assert.Equal(t, 5, parallel.Stats.FilesFailed)
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"a.fx": "1;"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.New(nil).Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_Logger(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"a.fx": "1;"})

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, err := runner.New(logger).Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "checked")
	assert.Contains(t, buf.String(), "statements=1")
}

func outcomePaths(t *testing.T, dir string, result *runner.Result) []string {
	t.Helper()

	paths := make([]string, len(result.Files))
	for idx, file := range result.Files {
		paths[idx] = file.Path
	}
	return relative(t, dir, paths)
}
