// Package paths provides cross-platform path resolution for mcpdeck's
// configuration, template, and state directories.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG
// conventions (~/.config, ~/.local/share, ~/.local/state).
//
// # Directory Layout
//
//	| Purpose    | Path                              |
//	|------------|-----------------------------------|
//	| Config     | <ConfigHome>/mcpdeck/             |
//	| Templates  | <DataHome>/mcpdeck/templates/     |
//	| Staging    | <DataHome>/mcpdeck/generated/     |
//	| Selections | <StateHome>/mcpdeck/selections/   |
//	| Audit log  | <StateHome>/mcpdeck/history.log   |
package paths
