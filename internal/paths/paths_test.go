package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c")

	if err := EnsureDir(target, 0); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Idempotent
	if err := EnsureDir(target, 0); err != nil {
		t.Errorf("EnsureDir() on existing dir error: %v", err)
	}
}

func TestAppDirs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"TemplatesDir", TemplatesDir(), filepath.Join(AppName, "templates")},
		{"OutputDir", OutputDir(), filepath.Join(AppName, "generated")},
		{"SelectionsDir", SelectionsDir(), filepath.Join(AppName, "selections")},
		{"HistoryPath", HistoryPath(), filepath.Join(AppName, "history.log")},
		{"ConfigDir", ConfigDir(), AppName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasSuffix(tt.got, tt.want) {
				t.Errorf("%s = %q, want suffix %q", tt.name, tt.got, tt.want)
			}
			if !filepath.IsAbs(tt.got) {
				t.Errorf("%s = %q, want absolute path", tt.name, tt.got)
			}
		})
	}
}
