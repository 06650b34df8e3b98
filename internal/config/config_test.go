package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if viper.GetString("profile") != "unix" {
		t.Errorf("expected profile default unix, got %q", viper.GetString("profile"))
	}
	if viper.GetString("templates_dir") == "" {
		t.Error("expected templates_dir default to be set")
	}
}

// chdir changes into dir for the duration of the test. It is a stand-in
// for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Run from an empty dir so no stray config.yaml is picked up.
	chdir(t, t.TempDir())

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.Profile != "unix" {
		t.Errorf("Profile = %q, want default unix", cfg.Profile)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("profile: project\nselected_template: codex_config.toml\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Profile != "project" {
		t.Errorf("Profile = %q, want project", cfg.Profile)
	}
	if cfg.SelectedTemplate != "codex_config.toml" {
		t.Errorf("SelectedTemplate = %q", cfg.SelectedTemplate)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	Init()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("MCPDECK_PROFILE", "windows")

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Profile != "windows" {
		t.Errorf("Profile = %q, want env override windows", cfg.Profile)
	}
}
