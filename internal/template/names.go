package template

import (
	"path/filepath"
	"strings"
	"unicode"
)

// displayNameOverrides maps template filenames to their preferred labels.
// Filenames not listed here fall back to a title-cased form of the stem.
var displayNameOverrides = map[string]string{
	"amazonq_mcp.json":           "Amazon Q",
	"claude_code_mcp.json":       "Claude Code (VSCode)",
	"claude_desktop_config.json": "Claude Desktop",
	"cline_mcp_settings.json":    "Cline",
	"gemini_cli_mcp.json":        "Gemini CLI",
	"github_copilot_mcp.json":    "GitHub Copilot",
	"kilo_code_mcp.json":         "Kilo (Cursor fork)",
	"opencode_config.json":       "Opencode",
	"roo_code_mcp.json":          "Roo Code",
	"codex_config.toml":          "Codex",
}

// DisplayName returns the human label for a template filename.
func DisplayName(filename string) string {
	if name, ok := displayNameOverrides[filename]; ok {
		return name
	}
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return titleCase(strings.ReplaceAll(stem, "_", " "))
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
