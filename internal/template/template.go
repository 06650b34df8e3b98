package template

import "encoding/json"

// Format identifies the on-disk format of a template file.
type Format string

const (
	// FormatJSON is a JSON template whose servers live under a container key.
	FormatJSON Format = "json"

	// FormatTOML is a TOML template using repeated [mcp_servers.<name>] sections.
	FormatTOML Format = "toml"
)

// ContainerKeys lists the recognized JSON container keys in priority order.
// The first key present in a document wins. Different ecosystems store the
// server map under different spellings; keeping this as data means a new
// spelling is a one-line change.
var ContainerKeys = []string{"mcpServers", "mcp_servers", "mcp"}

// ServerTablePrefix is the TOML section header prefix that opens a server block.
const ServerTablePrefix = "[mcp_servers."

// Block is the opaque content of one server entry. Exactly one field is set,
// matching the owning template's format. The content is never interpreted
// beyond pass-through: JSON blocks are re-indented verbatim, TOML blocks are
// reproduced line for line.
type Block struct {
	// Raw holds the JSON value for entries of JSON templates.
	Raw json.RawMessage

	// Lines holds the raw lines (header line included) for entries of TOML templates.
	Lines []string
}

// Template is the parsed representation of one application's configuration
// schema and its available server definitions. It is constructed by Parse
// and read-only afterward.
type Template struct {
	// Filename is the stable identifier used as a key everywhere else
	// (selection store, location profiles, audit log).
	Filename string

	// DisplayName is the human label shown in listings.
	DisplayName string

	// Format is the template's on-disk format.
	Format Format

	// ServerOrder lists server names in source insertion order.
	// Rendering always follows this order.
	ServerOrder []string

	// Blocks maps server name to its opaque content.
	Blocks map[string]Block

	// ContainerKey is the recognized container key. Set for JSON templates only.
	ContainerKey string

	// topOrder lists all top-level JSON keys (container included) in source
	// order so rendering reproduces the original document shape.
	topOrder []string

	// metadata maps non-container top-level JSON keys to their raw values.
	metadata map[string]json.RawMessage

	// HeaderLines holds the TOML lines preceding the first server section,
	// with trailing blank lines stripped. Set for TOML templates only.
	HeaderLines []string
}

// HasServer reports whether name is defined by this template.
func (t *Template) HasServer(name string) bool {
	_, ok := t.Blocks[name]
	return ok
}

// Metadata returns the top-level JSON keys other than the container key,
// in source order. Empty for TOML templates.
func (t *Template) Metadata() []string {
	keys := make([]string, 0, len(t.metadata))
	for _, k := range t.topOrder {
		if k != t.ContainerKey {
			keys = append(keys, k)
		}
	}
	return keys
}
