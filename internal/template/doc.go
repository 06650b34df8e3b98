// Package template parses and renders application configuration templates.
//
// A template describes one LLM application's configuration file: either a
// JSON document whose MCP servers live under a recognized container key, or
// a TOML document using repeated [mcp_servers.<name>] sections. Server
// definitions are treated as opaque content and reproduced byte-faithfully;
// only the set of entries changes between parse and render.
//
// # Container Key Disambiguation
//
// JSON templates from different ecosystems spell the container key
// differently. [ContainerKeys] lists the recognized spellings in priority
// order; the first one present in a document wins and all other top-level
// keys are carried through rendering unchanged.
//
// # Round-Tripping
//
// Rendering a template with its full server list reproduces the source
// document (modulo 2-space indent normalization for JSON and trailing
// newline canonicalization). Rendering a subset keeps the remaining
// entries in their original relative order regardless of selection order.
package template
