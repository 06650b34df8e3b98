// Package selection persists which servers are enabled per template.
//
// The store is tri-state by file presence: no selection file means "all
// servers on" (the default), while a file (even one holding an empty list)
// is an explicit user choice and is honored verbatim. Stale names pointing
// at servers a template no longer defines are kept in the store and simply
// fall out at render time.
package selection

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/mcpdeck/mcpdeck/internal/paths"
	"github.com/mcpdeck/mcpdeck/internal/template"
	"github.com/mcpdeck/mcpdeck/pkg/fileutil"
)

// record is the on-disk shape of one template's selection.
type record struct {
	Template  string    `json:"template"`
	Servers   []string  `json:"selected_servers"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store reads and writes per-template selection files in a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(filename string) string {
	return filepath.Join(s.dir, filename+".json")
}

// Lookup returns the explicit selection persisted for filename. ok is false
// when no selection file exists, meaning the caller should fall back to the
// template's defaults.
func (s *Store) Lookup(filename string) (names []string, ok bool, err error) {
	data, err := os.ReadFile(s.path(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "reading selection for %s", filename)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, errors.Wrapf(err, "parsing selection for %s", filename)
	}
	if rec.Servers == nil {
		rec.Servers = []string{}
	}
	return rec.Servers, true, nil
}

// Selected returns the server names enabled for the template: the explicit
// persisted selection if one exists, otherwise the template's full server
// list.
func (s *Store) Selected(tpl *template.Template) ([]string, error) {
	names, ok, err := s.Lookup(tpl.Filename)
	if err != nil {
		return nil, err
	}
	if !ok {
		return append([]string(nil), tpl.ServerOrder...), nil
	}
	return names, nil
}

// Set persists names for filename exactly as given, empty included. An
// empty selection is a real choice, distinct from having no selection.
func (s *Store) Set(filename string, names []string) error {
	if err := paths.EnsureDir(s.dir, paths.DefaultDirPerm); err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	rec := record{
		Template:  filename,
		Servers:   names,
		UpdatedAt: time.Now(),
	}
	if err := fileutil.AtomicWriteJSON(s.path(filename), rec); err != nil {
		return errors.Wrapf(err, "writing selection for %s", filename)
	}
	return nil
}

// Clear removes the explicit selection for filename, restoring the
// default-all behavior. Clearing a filename with no selection is a no-op.
func (s *Store) Clear(filename string) error {
	err := os.Remove(s.path(filename))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "clearing selection for %s", filename)
	}
	return nil
}

// ToggleAll flips between everything and nothing: when the current
// selection (explicit or default) already covers every server the template
// defines, it becomes explicitly empty; otherwise it becomes the full list.
// The resulting selection is persisted and returned.
func (s *Store) ToggleAll(tpl *template.Template) ([]string, error) {
	current, err := s.Selected(tpl)
	if err != nil {
		return nil, err
	}

	next := []string{}
	if !coversAll(current, tpl.ServerOrder) {
		next = append([]string(nil), tpl.ServerOrder...)
	}
	if err := s.Set(tpl.Filename, next); err != nil {
		return nil, err
	}
	return next, nil
}

// coversAll reports whether every name in full appears in current.
func coversAll(current, full []string) bool {
	have := make(map[string]struct{}, len(current))
	for _, name := range current {
		have[name] = struct{}{}
	}
	for _, name := range full {
		if _, ok := have[name]; !ok {
			return false
		}
	}
	return true
}
