package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/flexar/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes and overwrites", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "errors.md")
		ctx := context.Background()

		for _, content := range []string{"first", "second"} {
			if err := fsutil.WriteAtomic(ctx, path, []byte(content), 0); err != nil {
				t.Fatalf("WriteAtomic() error = %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			if string(got) != content {
				t.Errorf("content = %q, want %q", got, content)
			}
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", info.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("applies explicit mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "errors.html")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("<p></p>"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode = %o, want 600", info.Mode().Perm())
		}
	})

	t.Run("leaves no temp file behind on error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "sub")
		if err := os.Mkdir(target, 0755); err != nil {
			t.Fatalf("setup: %v", err)
		}

		// Renaming a file over a directory fails.
		if err := fsutil.WriteAtomic(context.Background(), target, []byte("x"), 0); err == nil {
			t.Fatal("expected error when target is a directory")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("entries = %d, want 1 (temp file leaked)", len(entries))
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docs", "nested", "errors.html")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("<html>"), 0); err != nil {
			t.Fatalf("WriteAtomic: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != "<html>" {
			t.Errorf("content = %q, want %q", got, "<html>")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.txt")
		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file should not exist, stat error = %v", err)
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "errors.json")
	ctx := context.Background()

	steps := []struct {
		content string
		written bool
	}{
		{content: "[]", written: true},
		{content: "[]", written: false},
		{content: "[{}]", written: true},
	}

	for idx, step := range steps {
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(step.content), 0)
		if err != nil {
			t.Fatalf("step %d: WriteAtomicIfChanged() error = %v", idx, err)
		}
		if written != step.written {
			t.Errorf("step %d: written = %v, want %v", idx, written, step.written)
		}
	}
}
