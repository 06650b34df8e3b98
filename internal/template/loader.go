package template

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// LoadDir parses every .json and .toml file in dir, sorted by filename.
// Templates that fail to parse are skipped with a warning so one broken
// file never prevents the rest from loading.
func LoadDir(dir string, logger *slog.Logger) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading templates dir %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".toml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	templates := make([]*Template, 0, len(names))
	for _, name := range names {
		tpl, err := Parse(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("skipping template", "file", name, "error", err)
			continue
		}
		templates = append(templates, tpl)
	}

	return templates, nil
}

// Find returns the template with the given filename, or nil if absent.
func Find(templates []*Template, filename string) *Template {
	for _, tpl := range templates {
		if tpl.Filename == filename {
			return tpl
		}
	}
	return nil
}
