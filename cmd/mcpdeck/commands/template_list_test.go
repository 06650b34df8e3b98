package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcpdeck/mcpdeck/internal/history"
	"github.com/mcpdeck/mcpdeck/internal/location"
	"github.com/mcpdeck/mcpdeck/internal/logging"
	"github.com/mcpdeck/mcpdeck/internal/selection"
	"github.com/mcpdeck/mcpdeck/internal/template"
)

const listFixture = `{
  "mcpServers": {
    "github": {
      "command": "npx"
    },
    "fetch": {
      "command": "uvx"
    }
  }
}
`

func testApp(t *testing.T) *app {
	t.Helper()
	logger := logging.ForTest(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "claude_desktop_config.json"), []byte(listFixture), 0644); err != nil {
		t.Fatal(err)
	}
	templates, err := template.LoadDir(dir, logger)
	if err != nil {
		t.Fatal(err)
	}

	return &app{
		logger:    logger,
		templates: templates,
		store:     selection.NewStore(t.TempDir()),
		resolver:  location.NewResolver(location.DefaultProfiles()),
		history:   history.New(filepath.Join(t.TempDir(), "history.log"), logger),
		outputDir: t.TempDir(),
	}
}

func TestWriteTemplateList(t *testing.T) {
	a := testApp(t)

	var buf bytes.Buffer
	if err := writeTemplateList(&buf, a); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "claude_desktop_config.json") {
		t.Errorf("missing filename:\n%s", out)
	}
	if !strings.Contains(out, "Claude Desktop") {
		t.Errorf("missing display name:\n%s", out)
	}
	if !strings.Contains(out, "all") {
		t.Errorf("default selection should display as all:\n%s", out)
	}
}

func TestWriteTemplateList_ExplicitSelection(t *testing.T) {
	a := testApp(t)
	if err := a.store.Set("claude_desktop_config.json", []string{"fetch"}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeTemplateList(&buf, a); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "1/2") {
		t.Errorf("explicit selection not shown as count:\n%s", buf.String())
	}
}

func TestWriteTemplateList_JSON(t *testing.T) {
	a := testApp(t)

	templateListJSON = true
	defer func() { templateListJSON = false }()

	var buf bytes.Buffer
	if err := writeTemplateList(&buf, a); err != nil {
		t.Fatal(err)
	}

	var out []templateInfoJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d templates, want 1", len(out))
	}
	if out[0].Explicit {
		t.Error("default selection reported as explicit")
	}
	if len(out[0].Selected) != 2 {
		t.Errorf("Selected = %v, want both servers", out[0].Selected)
	}
}

func TestWriteTemplateList_Empty(t *testing.T) {
	a := testApp(t)
	a.templates = nil

	var buf bytes.Buffer
	if err := writeTemplateList(&buf, a); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No templates found.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
