package location

// Builtin profile names.
const (
	ProfileWindows = "windows"
	ProfileUnix    = "unix"
	ProfileProject = "project"
)

// DefaultProfiles returns the builtin location table. Windows paths lean on
// %APPDATA% and %USERPROFILE%, unix paths on ~, and project paths on the
// {project_root} placeholder. Users override the table with a profiles.yaml
// in the config directory.
func DefaultProfiles() Profiles {
	return Profiles{
		ProfileWindows: {
			"amazonq_mcp.json": {
				`%USERPROFILE%\.aws\amazonq\mcp.json`,
				`%USERPROFILE%\.aitk\mcp.json`,
			},
			"claude_code_mcp.json":       {`%USERPROFILE%\.claude.json`},
			"claude_desktop_config.json": {`%APPDATA%\Claude\claude_desktop_config.json`},
			"cline_mcp_settings.json":    {`%APPDATA%\Code\User\globalStorage\saoudrizwan.claude-dev\settings\cline_mcp_settings.json`},
			"gemini_cli_mcp.json":        {`%USERPROFILE%\.gemini\settings.json`},
			"github_copilot_mcp.json":    {`%APPDATA%\Code\User\settings.json`},
			"kilo_code_mcp.json":         {`%APPDATA%\Code\User\globalStorage\kilocode.kilo-code\settings\mcp_settings.json`},
			"opencode_config.json":       {`%USERPROFILE%\.config\opencode\opencode.json`},
			"roo_code_mcp.json":          {`%APPDATA%\Code\User\globalStorage\rooveterinaryinc.roo-cline\settings\cline_mcp_settings.json`},
			"codex_config.toml":          {`%USERPROFILE%\.codex\config.toml`},
		},
		ProfileUnix: {
			"amazonq_mcp.json":           {"~/.aws/amazonq/mcp.json"},
			"claude_code_mcp.json":       {"~/.claude.json"},
			"claude_desktop_config.json": {"~/Library/Application Support/Claude/claude_desktop_config.json"},
			"cline_mcp_settings.json":    {"~/.config/Code/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json"},
			"gemini_cli_mcp.json":        {"~/.gemini/settings.json"},
			"github_copilot_mcp.json":    {"~/.config/Code/User/settings.json"},
			"kilo_code_mcp.json":         {"~/.config/Code/User/globalStorage/kilocode.kilo-code/settings/mcp_settings.json"},
			"opencode_config.json":       {"~/.config/opencode/opencode.json"},
			"roo_code_mcp.json":          {"~/.config/Code/User/globalStorage/rooveterinaryinc.roo-cline/settings/cline_mcp_settings.json"},
			"codex_config.toml":          {"~/.codex/config.toml"},
		},
		ProfileProject: {
			"amazonq_mcp.json":           {"{project_root}/.amazonq/mcp.json"},
			"claude_code_mcp.json":       {"{project_root}/.mcp.json"},
			"claude_desktop_config.json": {"{project_root}/.claude_desktop_config.json"},
			"cline_mcp_settings.json":    {"{project_root}/.clinerules"},
			"gemini_cli_mcp.json":        {"{project_root}/.gemini/settings.json"},
			"github_copilot_mcp.json":    {"{project_root}/.vscode/mcp.json"},
			"kilo_code_mcp.json":         {"{project_root}/.kilocode/mcp.json"},
			"opencode_config.json":       {"{project_root}/opencode.json"},
			"roo_code_mcp.json":          {"{project_root}/.roo/mcp.json"},
			"codex_config.toml":          {"{project_root}/.codex/config.toml"},
		},
	}
}
