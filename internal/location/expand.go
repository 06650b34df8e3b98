package location

import "strings"

// expandVars expands $VAR, ${VAR}, and %VAR% references using lookup.
// References to unset variables are left untouched so a Windows-style path
// resolved on another platform stays inspectable instead of collapsing to
// fragments.
func expandVars(s string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		switch s[i] {
		case '%':
			if j := strings.IndexByte(s[i+1:], '%'); j > 0 {
				if val, ok := lookup(s[i+1 : i+1+j]); ok {
					b.WriteString(val)
					i += j + 2
					continue
				}
			}
			b.WriteByte('%')
			i++
		case '$':
			name, width := dollarName(s[i+1:])
			if width > 0 {
				if val, ok := lookup(name); ok {
					b.WriteString(val)
					i += width + 1
					continue
				}
			}
			b.WriteByte('$')
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// dollarName parses the variable reference following a '$', returning the
// name and the number of bytes the reference occupies (0 if none).
func dollarName(s string) (string, int) {
	if s == "" {
		return "", 0
	}
	if s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end <= 1 {
			return "", 0
		}
		return s[1:end], end + 1
	}

	n := 0
	for n < len(s) && isNameByte(s[n]) {
		n++
	}
	return s[:n], n
}

func isNameByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
