package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectRoot(t *testing.T) {
	t.Run("marker in ancestor", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, ".git"), 0755); err != nil {
			t.Fatal(err)
		}
		nested := filepath.Join(root, "src", "pkg", "deep")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		got, err := DetectRoot(nested)
		if err != nil {
			t.Fatalf("DetectRoot() error = %v", err)
		}
		if got != root {
			t.Errorf("DetectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("marker file counts", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere"), 0644); err != nil {
			t.Fatal(err)
		}
		nested := filepath.Join(root, "sub")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		got, err := DetectRoot(nested)
		if err != nil {
			t.Fatalf("DetectRoot() error = %v", err)
		}
		if got != root {
			t.Errorf("DetectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("no marker falls back to reference dir", func(t *testing.T) {
		dir := t.TempDir()

		got, err := DetectRoot(dir)
		if err != nil {
			t.Fatalf("DetectRoot() error = %v", err)
		}
		if got != dir {
			t.Errorf("DetectRoot() = %q, want %q", got, dir)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		if _, err := DetectRoot(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Fatal("expected error for missing reference dir")
		}
	})

	t.Run("file as reference", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "f.txt")
		if err := os.WriteFile(file, nil, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := DetectRoot(file); err == nil {
			t.Fatal("expected error for non-directory reference")
		}
	})
}

func TestIsRoot(t *testing.T) {
	dir := t.TempDir()
	if IsRoot(dir) {
		t.Error("IsRoot() = true for unmarked dir")
	}
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if !IsRoot(dir) {
		t.Error("IsRoot() = false for marked dir")
	}
}
