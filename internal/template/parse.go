package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/mcpdeck/mcpdeck/pkg/fileutil"
)

// Sentinel errors for parse and render operations.
var (
	// ErrFormat indicates the file could not be decoded in its declared format.
	ErrFormat = errors.New("template not decodable in its declared format")

	// ErrSchema indicates a JSON template contains no recognized container key.
	ErrSchema = errors.New("no recognized server container key")

	// ErrRender indicates a JSON template is missing its container key at
	// render time. Unreachable when the template came from Parse.
	ErrRender = errors.New("json template missing container key")
)

// ParseError wraps errors that occur during parsing with path context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing template %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing template: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a template file and produces its normalized representation.
// The format is chosen by file extension: .toml is parsed as TOML, anything
// else as JSON. Errors are wrapped in *ParseError carrying the path.
func Parse(path string) (*Template, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	filename := filepath.Base(path)

	var tpl *Template
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		tpl, err = ParseTOML(filename, data)
	} else {
		tpl, err = ParseJSON(filename, data)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return tpl, nil
}

// ParseJSON parses a JSON template. The document must be a JSON object
// containing one of the recognized container keys, whose value is itself an
// object mapping server names to definitions. Key order of the source
// document is preserved for both the top level and the container.
func ParseJSON(filename string, data []byte) (*Template, error) {
	topKeys, topValues, err := decodeOrderedObject(data)
	if err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}

	containerKey := ""
	for _, candidate := range ContainerKeys {
		if _, ok := topValues[candidate]; ok {
			containerKey = candidate
			break
		}
	}
	if containerKey == "" {
		return nil, errors.Wrapf(ErrSchema, "tried %s", strings.Join(ContainerKeys, ", "))
	}

	serverNames, serverValues, err := decodeOrderedObject(topValues[containerKey])
	if err != nil {
		return nil, errors.Wrapf(ErrSchema, "container %q is not an object: %v", containerKey, err)
	}

	blocks := make(map[string]Block, len(serverNames))
	for _, name := range serverNames {
		blocks[name] = Block{Raw: serverValues[name]}
	}

	metadata := make(map[string]json.RawMessage, len(topKeys)-1)
	for _, key := range topKeys {
		if key != containerKey {
			metadata[key] = topValues[key]
		}
	}

	return &Template{
		Filename:     filename,
		DisplayName:  DisplayName(filename),
		Format:       FormatJSON,
		ServerOrder:  serverNames,
		Blocks:       blocks,
		ContainerKey: containerKey,
		topOrder:     topKeys,
		metadata:     metadata,
	}, nil
}

// ParseTOML parses a TOML template with a line scanner. Lines before the
// first [mcp_servers.<name>] section accumulate into the header; each section
// opens a block that runs (header line included) until the next section or
// end of file. Block content is opaque, so comments, nested tables, and
// arrays survive untouched. The document is first checked against a real
// TOML decoder so undecodable files fail with ErrFormat.
func ParseTOML(filename string, data []byte) (*Template, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}

	var (
		headerLines []string
		order       []string
		blocks      = make(map[string]Block)
		currentName string
		currentBlk  []string
	)

	flush := func() {
		if currentName == "" {
			return
		}
		if _, seen := blocks[currentName]; !seen {
			order = append(order, currentName)
		}
		blocks[currentName] = Block{Lines: append(blocks[currentName].Lines, currentBlk...)}
	}

	for _, line := range splitLines(data) {
		if name, ok := serverSectionName(line); ok {
			flush()
			currentName = name
			currentBlk = []string{line}
			continue
		}
		if currentName == "" {
			headerLines = append(headerLines, line)
		} else {
			currentBlk = append(currentBlk, line)
		}
	}
	flush()

	for len(headerLines) > 0 && strings.TrimSpace(headerLines[len(headerLines)-1]) == "" {
		headerLines = headerLines[:len(headerLines)-1]
	}

	return &Template{
		Filename:    filename,
		DisplayName: DisplayName(filename),
		Format:      FormatTOML,
		ServerOrder: order,
		Blocks:      blocks,
		HeaderLines: headerLines,
	}, nil
}

// serverSectionName extracts the server name from a [mcp_servers.<name>]
// section header. Sub-table headers like [mcp_servers.foo.env] yield "foo"
// so nested tables stay inside their server's block.
func serverSectionName(line string) (string, bool) {
	if !strings.HasPrefix(line, ServerTablePrefix) {
		return "", false
	}
	rest := strings.TrimSuffix(line[len(ServerTablePrefix):], "]")
	name, _, _ := strings.Cut(rest, ".")
	return name, true
}

// splitLines splits file content into lines without trailing newlines,
// mirroring a line-by-line read. A trailing newline does not produce an
// empty final line.
func splitLines(data []byte) []string {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// decodeOrderedObject decodes a JSON object keeping its key order.
// Values stay raw so nothing is reinterpreted before rendering.
func decodeOrderedObject(data []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errors.New("not a JSON object")
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, errors.New("object key is not a string")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}

		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = raw
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	return keys, values, nil
}
