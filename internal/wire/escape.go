package wire

import "strings"

// Escape makes text safe for a content-line value. The backslash is
// replaced first so later replacements cannot double-escape.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	return s
}

// Unescape reverses Escape. An unknown escape sequence keeps the escaped
// character and drops the backslash; tightening this breaks legacy input.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// SplitStructured splits a structured value on unescaped semicolons.
// Escaped pairs are copied atomically so `\;` never delimits.
func SplitStructured(s string) []string {
	return splitEscaped(s, ';')
}

// SplitList splits a list value on unescaped commas.
func SplitList(s string) []string {
	return splitEscaped(s, ',')
}

// ParseStructured splits on semicolons and unescapes every component.
func ParseStructured(s string) []string {
	parts := SplitStructured(s)
	for i, p := range parts {
		parts[i] = Unescape(p)
	}
	return parts
}

// ParseList splits on commas and unescapes every component.
func ParseList(s string) []string {
	parts := SplitList(s)
	for i, p := range parts {
		parts[i] = Unescape(p)
	}
	return parts
}

// ParseStructuredList splits on semicolons, then each component on commas,
// and unescapes every leaf. Used for fields whose structured components are
// themselves comma-lists, e.g. N honorific suffixes.
func ParseStructuredList(s string) [][]string {
	segments := SplitStructured(s)
	out := make([][]string, len(segments))
	for i, seg := range segments {
		items := SplitList(seg)
		for j, item := range items {
			items[j] = Unescape(item)
		}
		out[i] = items
	}
	return out
}

func splitEscaped(s string, sep byte) []string {
	out := make([]string, 0, 4)
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			cur.WriteByte(s[i])
			i++
			cur.WriteByte(s[i])
		case s[i] == sep:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(s[i])
		}
	}
	return append(out, cur.String())
}
