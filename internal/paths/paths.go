package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "mcpdeck"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// StateHome returns the XDG state home directory.
// On Linux: ~/.local/state
func StateHome() string {
	return xdg.StateHome
}

// ConfigDir returns the mcpdeck configuration directory.
// Returns: <ConfigHome>/mcpdeck/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigPath returns the main configuration file path.
// Returns: <ConfigHome>/mcpdeck/config.yaml
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ProfilesPath returns the location profile override file path.
// Returns: <ConfigHome>/mcpdeck/profiles.yaml
func ProfilesPath() string {
	return filepath.Join(ConfigDir(), "profiles.yaml")
}

// TemplatesDir returns the directory holding application config templates.
// Returns: <DataHome>/mcpdeck/templates/
func TemplatesDir() string {
	return filepath.Join(DataHome(), AppName, "templates")
}

// OutputDir returns the staging directory for rendered configuration files.
// Returns: <DataHome>/mcpdeck/generated/
func OutputDir() string {
	return filepath.Join(DataHome(), AppName, "generated")
}

// SelectionsDir returns the directory holding per-template server selections.
// Returns: <StateHome>/mcpdeck/selections/
func SelectionsDir() string {
	return filepath.Join(StateHome(), AppName, "selections")
}

// HistoryPath returns the path of the append-only deployment audit log.
// Returns: <StateHome>/mcpdeck/history.log
func HistoryPath() string {
	return filepath.Join(StateHome(), AppName, "history.log")
}
