package template

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// Ordered filters names against ServerOrder, returning the survivors in
// template order. Names the template does not define drop out; the
// iteration order of names is irrelevant. This is exactly the entry set a
// Render of the same names produces.
func (t *Template) Ordered(names []string) []string {
	want := make(map[string]struct{}, len(names))
	for _, name := range names {
		want[name] = struct{}{}
	}

	ordered := make([]string, 0, len(t.ServerOrder))
	for _, name := range t.ServerOrder {
		if _, ok := want[name]; ok {
			ordered = append(ordered, name)
		}
	}
	return ordered
}

// Render reproduces a complete file of the template's format containing
// exactly the selected entries. Output order always follows ServerOrder;
// the iteration order of selected is irrelevant, and names not defined by
// the template are silently dropped. Render is pure and deterministic.
func (t *Template) Render(selected []string) (string, error) {
	ordered := t.Ordered(selected)

	switch t.Format {
	case FormatJSON:
		return t.renderJSON(ordered)
	case FormatTOML:
		return t.renderTOML(ordered), nil
	default:
		return "", errors.Newf("unsupported format: %s", t.Format)
	}
}

// renderJSON writes the document with 2-space indentation, reproducing the
// original top-level key order. Server blocks are re-indented raw values,
// never decoded.
func (t *Template) renderJSON(ordered []string) (string, error) {
	if t.ContainerKey == "" {
		return "", ErrRender
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range t.topOrder {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		if err := writeJSONKey(&buf, key); err != nil {
			return "", err
		}

		if key == t.ContainerKey {
			if err := t.writeContainer(&buf, ordered); err != nil {
				return "", err
			}
			continue
		}
		if err := writeIndented(&buf, t.metadata[key], "  "); err != nil {
			return "", err
		}
	}

	buf.WriteString("\n}\n")
	return buf.String(), nil
}

// writeContainer writes the server container object with entries at the
// second indentation level.
func (t *Template) writeContainer(buf *bytes.Buffer, ordered []string) error {
	if len(ordered) == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteByte('{')
	for i, name := range ordered {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n    ")
		if err := writeJSONKey(buf, name); err != nil {
			return err
		}
		if err := writeIndented(buf, t.Blocks[name].Raw, "    "); err != nil {
			return err
		}
	}
	buf.WriteString("\n  }")
	return nil
}

// renderTOML concatenates the header and the selected blocks verbatim,
// separated by single blank lines, with trailing blanks stripped and one
// trailing newline.
func (t *Template) renderTOML(ordered []string) string {
	var lines []string

	if len(t.HeaderLines) > 0 {
		lines = append(lines, t.HeaderLines...)
		if strings.TrimSpace(lines[len(lines)-1]) != "" {
			lines = append(lines, "")
		}
	}

	for _, name := range ordered {
		block := t.Blocks[name].Lines
		lines = append(lines, block...)
		if len(block) > 0 && strings.TrimSpace(block[len(block)-1]) != "" {
			lines = append(lines, "")
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n") + "\n"
}

// writeJSONKey writes an escaped object key followed by ": ".
func writeJSONKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return errors.Wrapf(err, "encoding key %q", key)
	}
	buf.Write(encoded)
	buf.WriteString(": ")
	return nil
}

// writeIndented writes a raw JSON value re-indented for the given prefix
// depth, matching encoding/json's MarshalIndent layout.
func writeIndented(buf *bytes.Buffer, raw json.RawMessage, prefix string) error {
	if err := json.Indent(buf, raw, prefix, "  "); err != nil {
		return errors.Wrap(err, "indenting value")
	}
	return nil
}
