package launch

import (
	"testing"

	"github.com/spf13/viper"
)

func TestCommand(t *testing.T) {
	viper.Reset()

	cmd, ok := Command("codex_config.toml")
	if !ok || cmd != "codex" {
		t.Errorf("Command(codex_config.toml) = %q, %v", cmd, ok)
	}

	if _, ok := Command("cline_mcp_settings.json"); ok {
		t.Error("extension-only template should have no launch command")
	}
}

func TestCommand_ConfigOverride(t *testing.T) {
	viper.Reset()
	viper.Set("launch", map[string]string{
		"codex_config.toml": "/opt/codex/bin/codex",
		"my_tool.json":      "mytool --serve",
	})

	cmd, ok := Command("codex_config.toml")
	if !ok || cmd != "/opt/codex/bin/codex" {
		t.Errorf("override not honored: %q, %v", cmd, ok)
	}

	cmd, ok = Command("my_tool.json")
	if !ok || cmd != "mytool --serve" {
		t.Errorf("new entry not honored: %q, %v", cmd, ok)
	}
}

func TestRun_EmptyCommand(t *testing.T) {
	if err := Run("  "); err == nil {
		t.Error("expected error for empty command")
	}
	if err := RunShell(" "); err == nil {
		t.Error("expected error for empty shell command")
	}
}

func TestRunShell(t *testing.T) {
	if err := RunShell("true"); err != nil {
		t.Errorf("RunShell(true) error = %v", err)
	}
	if err := RunShell("exit 3"); err == nil {
		t.Error("expected error for failing shell command")
	}
}
