package location

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	apperrors "github.com/mcpdeck/mcpdeck/internal/errors"
	"github.com/mcpdeck/mcpdeck/pkg/fileutil"
)

// ProjectRootPlaceholder marks the portion of a path template substituted
// with the detected project root at resolution time.
const ProjectRootPlaceholder = "{project_root}"

// PathList is one or more path templates for a single logical filename.
// In YAML it accepts either a scalar or a sequence.
type PathList []string

// UnmarshalYAML accepts both "file: path" and "file: [path, path]".
func (p *PathList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*p = PathList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*p = PathList(many)
		return nil
	default:
		return errors.Newf("path entry must be a string or list of strings (line %d)", node.Line)
	}
}

// Profile maps logical template filenames to their deployment path templates.
type Profile map[string]PathList

// Profiles is the full location table, keyed by profile name.
type Profiles map[string]Profile

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadProfiles reads a location profile document from a YAML file.
func LoadProfiles(path string) (Profiles, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading profiles %s", path)
	}

	var profiles Profiles
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, errors.Wrapf(err, "parsing profiles %s", path)
	}
	return profiles, nil
}

// Context carries the ambient inputs a resolution needs. Zero values fall
// back to the real environment and home directory.
type Context struct {
	// LookupEnv resolves environment variable references. Nil means
	// os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// Home substitutes a leading "~". Empty means os.UserHomeDir.
	Home string

	// ProjectRoot replaces ProjectRootPlaceholder. Required only when the
	// chosen profile actually uses the placeholder for the filename.
	ProjectRoot string
}

func (c Context) lookupEnv(name string) (string, bool) {
	if c.LookupEnv != nil {
		return c.LookupEnv(name)
	}
	return os.LookupEnv(name)
}

func (c Context) home() (string, error) {
	if c.Home != "" {
		return c.Home, nil
	}
	return os.UserHomeDir()
}

// Resolver maps logical filenames to physical deployment paths. The profile
// table is injected so tests and alternate configurations never touch
// package state.
type Resolver struct {
	profiles Profiles
}

// NewResolver builds a resolver over the given profile table.
func NewResolver(profiles Profiles) *Resolver {
	return &Resolver{profiles: profiles}
}

// Profiles exposes the resolver's table, primarily for listing.
func (r *Resolver) Profiles() Profiles {
	return r.profiles
}

// Resolve returns every physical path the filename deploys to under the
// named profile. A filename absent from the profile resolves to zero paths,
// which is not an error; an unknown profile name is.
func (r *Resolver) Resolve(profileName, filename string, ctx Context) ([]string, error) {
	profile, ok := r.profiles[profileName]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrUnknownProfile,
			"%q (have: %s)", profileName, strings.Join(r.profiles.Names(), ", "))
	}

	templates := profile[filename]
	paths := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		resolved, err := resolvePath(tmpl, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %q for %s", tmpl, filename)
		}
		paths = append(paths, resolved)
	}
	return paths, nil
}

// resolvePath materializes one path template. Project-relative templates are
// split on posix separators and joined natively so the result never mixes
// separator styles; all other templates get environment and home expansion.
func resolvePath(tmpl string, ctx Context) (string, error) {
	if strings.Contains(tmpl, ProjectRootPlaceholder) {
		if ctx.ProjectRoot == "" {
			return "", errors.New("no project root available")
		}
		rel := strings.TrimPrefix(tmpl, ProjectRootPlaceholder)
		rel = strings.TrimPrefix(rel, "/")
		parts := append([]string{ctx.ProjectRoot}, strings.Split(rel, "/")...)
		return filepath.Join(parts...), nil
	}

	expanded := expandVars(tmpl, ctx.lookupEnv)
	return expandHome(expanded, ctx)
}

// expandHome replaces a leading "~" with the home directory.
func expandHome(path string, ctx Context) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := ctx.home()
	if err != nil {
		return "", errors.Wrap(err, "expanding ~")
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, filepath.FromSlash(path[2:])), nil
}
