// Package launch starts the application a template belongs to.
package launch

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// defaultCommands maps template filenames to the binary that consumes them.
// Templates for editor extensions (Cline, Roo, Kilo) have no CLI entry
// point and are absent. The "launch" map in the config file overrides or
// extends this table.
var defaultCommands = map[string]string{
	"amazonq_mcp.json":        "q",
	"claude_code_mcp.json":    "claude",
	"codex_config.toml":       "codex",
	"gemini_cli_mcp.json":     "gemini",
	"github_copilot_mcp.json": "gh copilot",
	"opencode_config.json":    "opencode",
}

// Command returns the launch command for a template filename, preferring a
// user override from configuration.
func Command(filename string) (string, bool) {
	if overrides := viper.GetStringMapString("launch"); overrides != nil {
		if cmd, ok := overrides[strings.ToLower(filename)]; ok && cmd != "" {
			return cmd, true
		}
	}
	cmd, ok := defaultCommands[filename]
	return cmd, ok
}

// Run executes a launch command with the terminal attached, so interactive
// applications work as if started directly. The command is split on
// whitespace; quoting is not interpreted.
func Run(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.New("empty launch command")
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "launching %s", fields[0])
	}
	return nil
}

// RunShell executes a command line through the platform shell, for batch
// commands that need pipes, arguments with spaces, or shell builtins.
func RunShell(command string) error {
	if strings.TrimSpace(command) == "" {
		return errors.New("empty shell command")
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running %q", command)
	}
	return nil
}
