// Package location resolves logical template filenames to the physical
// paths they deploy to.
//
// A location profile is a named table mapping filenames to one or more path
// templates. Path templates may reference environment variables in both
// POSIX ($VAR, ${VAR}) and Windows (%VAR%) syntax, a leading ~ for the home
// directory, or the {project_root} placeholder for project-scoped
// deployments. The builtin windows, unix, and project profiles cover the
// known applications; a profiles.yaml in the config directory replaces them
// entirely.
//
// The resolver takes its profile table and ambient inputs (environment,
// home, project root) by injection, so resolution is deterministic under
// test.
package location
