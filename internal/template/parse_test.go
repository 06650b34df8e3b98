package template

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const jsonFixture = `{
  "theme": "dark",
  "mcpServers": {
    "github": {
      "command": "npx",
      "args": [
        "-y",
        "@modelcontextprotocol/server-github"
      ]
    },
    "fetch": {
      "command": "uvx",
      "args": [
        "mcp-server-fetch"
      ]
    },
    "context7": {
      "url": "https://mcp.context7.com/mcp"
    }
  },
  "telemetry": false
}
`

const tomlFixture = `# Codex configuration
model = "o3"

[mcp_servers.github]
command = "npx"
# token comes from the environment
args = ["-y", "@modelcontextprotocol/server-github"]

[mcp_servers.fetch]
command = "uvx"
args = [
  "mcp-server-fetch",
]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseJSON(t *testing.T) {
	tpl, err := ParseJSON("claude_desktop_config.json", []byte(jsonFixture))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	if tpl.Format != FormatJSON {
		t.Errorf("Format = %q, want json", tpl.Format)
	}
	if tpl.ContainerKey != "mcpServers" {
		t.Errorf("ContainerKey = %q, want mcpServers", tpl.ContainerKey)
	}
	if tpl.DisplayName != "Claude Desktop" {
		t.Errorf("DisplayName = %q", tpl.DisplayName)
	}

	wantOrder := []string{"github", "fetch", "context7"}
	if !reflect.DeepEqual(tpl.ServerOrder, wantOrder) {
		t.Errorf("ServerOrder = %v, want %v", tpl.ServerOrder, wantOrder)
	}
	for _, name := range wantOrder {
		if !tpl.HasServer(name) {
			t.Errorf("missing block for %q", name)
		}
	}

	wantMeta := []string{"theme", "telemetry"}
	if !reflect.DeepEqual(tpl.Metadata(), wantMeta) {
		t.Errorf("Metadata() = %v, want %v", tpl.Metadata(), wantMeta)
	}
}

func TestParseJSON_ContainerKeyPriority(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "primary key wins",
			doc:  `{"mcpServers": {}, "mcp_servers": {}}`,
			want: "mcpServers",
		},
		{
			name: "second priority key",
			doc:  `{"globalShortcut": "Ctrl+Q", "mcp_servers": {"a": {}}}`,
			want: "mcp_servers",
		},
		{
			name: "third priority key",
			doc:  `{"mcp": {"a": {}}}`,
			want: "mcp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := ParseJSON("x.json", []byte(tt.doc))
			if err != nil {
				t.Fatalf("ParseJSON() error = %v", err)
			}
			if tpl.ContainerKey != tt.want {
				t.Errorf("ContainerKey = %q, want %q", tpl.ContainerKey, tt.want)
			}
		})
	}
}

func TestParseJSON_SecondPriorityKeepsMetadata(t *testing.T) {
	doc := `{"globalShortcut": "Ctrl+Q", "mcp_servers": {"a": {"command": "npx"}}, "autoUpdate": true}`

	tpl, err := ParseJSON("cline_mcp_settings.json", []byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if tpl.ContainerKey != "mcp_servers" {
		t.Fatalf("ContainerKey = %q, want mcp_servers", tpl.ContainerKey)
	}

	want := []string{"globalShortcut", "autoUpdate"}
	if !reflect.DeepEqual(tpl.Metadata(), want) {
		t.Errorf("Metadata() = %v, want %v", tpl.Metadata(), want)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"not json", `{nope`, ErrFormat},
		{"not an object", `[1, 2]`, ErrFormat},
		{"no container key", `{"settings": {}}`, ErrSchema},
		{"container not an object", `{"mcpServers": [1]}`, ErrSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON("x.json", []byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseTOML(t *testing.T) {
	tpl, err := ParseTOML("codex_config.toml", []byte(tomlFixture))
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}

	if tpl.Format != FormatTOML {
		t.Errorf("Format = %q, want toml", tpl.Format)
	}

	wantOrder := []string{"github", "fetch"}
	if !reflect.DeepEqual(tpl.ServerOrder, wantOrder) {
		t.Errorf("ServerOrder = %v, want %v", tpl.ServerOrder, wantOrder)
	}

	wantHeader := []string{"# Codex configuration", `model = "o3"`}
	if !reflect.DeepEqual(tpl.HeaderLines, wantHeader) {
		t.Errorf("HeaderLines = %v, want %v", tpl.HeaderLines, wantHeader)
	}

	github := tpl.Blocks["github"].Lines
	if github[0] != "[mcp_servers.github]" {
		t.Errorf("block does not start with its header line: %q", github[0])
	}
	found := false
	for _, line := range github {
		if line == "# token comes from the environment" {
			found = true
		}
	}
	if !found {
		t.Error("comment line missing from opaque block")
	}
}

func TestParseTOML_SubTablesStayInBlock(t *testing.T) {
	doc := `[mcp_servers.github]
command = "npx"

[mcp_servers.github.env]
GITHUB_TOKEN = "x"

[mcp_servers.fetch]
command = "uvx"
`
	tpl, err := ParseTOML("codex_config.toml", []byte(doc))
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}

	wantOrder := []string{"github", "fetch"}
	if !reflect.DeepEqual(tpl.ServerOrder, wantOrder) {
		t.Fatalf("ServerOrder = %v, want %v", tpl.ServerOrder, wantOrder)
	}

	joined := strings.Join(tpl.Blocks["github"].Lines, "\n")
	if !strings.Contains(joined, "[mcp_servers.github.env]") {
		t.Errorf("env sub-table not kept inside github block:\n%s", joined)
	}
}

func TestParseTOML_InvalidTOML(t *testing.T) {
	_, err := ParseTOML("codex_config.toml", []byte("= not toml"))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestParse_ByExtension(t *testing.T) {
	jsonPath := writeTemp(t, "opencode_config.json", jsonFixture)
	tomlPath := writeTemp(t, "codex_config.toml", tomlFixture)

	jsonTpl, err := Parse(jsonPath)
	if err != nil {
		t.Fatalf("Parse(json) error = %v", err)
	}
	if jsonTpl.Format != FormatJSON {
		t.Errorf("Format = %q, want json", jsonTpl.Format)
	}

	tomlTpl, err := Parse(tomlPath)
	if err != nil {
		t.Fatalf("Parse(toml) error = %v", err)
	}
	if tomlTpl.Format != FormatTOML {
		t.Errorf("Format = %q, want toml", tomlTpl.Format)
	}
}

func TestParse_WrapsPathInError(t *testing.T) {
	path := writeTemp(t, "broken.json", `{"settings": {}}`)

	_, err := Parse(path)
	if err == nil {
		t.Fatal("expected error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("Path = %q, want %q", parseErr.Path, path)
	}
	if !errors.Is(err, ErrSchema) {
		t.Errorf("error = %v, want ErrSchema in chain", err)
	}
}
