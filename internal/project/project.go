// Package project locates the project root that anchors project-scoped
// deployment paths.
package project

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// RootMarker is the directory entry that identifies a project root.
const RootMarker = ".git"

// DetectRoot walks upward from refDir looking for a directory containing
// RootMarker. A plain .git file (as used by worktrees and submodules) also
// counts. When no marker is found, refDir itself is returned so project
// deployments degrade to the directory the user pointed at.
func DetectRoot(refDir string) (string, error) {
	abs, err := filepath.Abs(refDir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving reference dir %s", refDir)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "reference dir %s", refDir)
	}
	if !info.IsDir() {
		return "", errors.Newf("reference path is not a directory: %s", abs)
	}

	dir := abs
	for {
		if _, err := os.Stat(filepath.Join(dir, RootMarker)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}

// IsRoot reports whether dir itself carries the root marker.
func IsRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, RootMarker))
	return err == nil
}
