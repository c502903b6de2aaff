// Package param owns the content-line parameter codec: an ordered
// name-to-value mapping whose values are a scalar-or-list sum.
package param

import (
	"fmt"
	"strings"
)

// TypeName is the accumulation target for legacy bare parameter tokens
// (vCard 2.1 syntax such as TEL;HOME;VOICE).
const TypeName = "TYPE"

// Value holds either a single string or an ordered list. A name becomes a
// list the second time it appears, never overwritten.
type Value struct {
	scalar string
	list   []string
}

// Scalar wraps a single-string value.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List wraps an ordered multi-value.
func List(items ...string) Value {
	return Value{list: items}
}

// IsList reports whether the value holds more than one member.
func (v Value) IsList() bool {
	return v.list != nil
}

// First returns the scalar, or the first list member.
func (v Value) First() string {
	if v.list != nil {
		if len(v.list) == 0 {
			return ""
		}
		return v.list[0]
	}
	return v.scalar
}

// Values returns every member in order. Scalars yield one element.
func (v Value) Values() []string {
	if v.list != nil {
		return v.list
	}
	return []string{v.scalar}
}

func (v Value) with(s string) Value {
	if v.list != nil {
		return Value{list: append(v.list, s)}
	}
	return Value{list: []string{v.scalar, s}}
}

// Entry pairs a normalized parameter name with its value.
type Entry struct {
	Name  string
	Value Value
}

// Set is an ordered parameter collection. Names are case-insensitive and
// stored upper-cased; input order among distinct names is preserved.
type Set struct {
	entries []Entry
}

// Add inserts one member, merging into a list when the name repeats.
func (s *Set) Add(name, value string) {
	name = strings.ToUpper(name)
	for i := range s.entries {
		if s.entries[i].Name == name {
			s.entries[i].Value = s.entries[i].Value.with(value)
			return
		}
	}
	s.entries = append(s.entries, Entry{Name: name, Value: Scalar(value)})
}

// Get looks a value up by case-insensitive name.
func (s Set) Get(name string) (Value, bool) {
	name = strings.ToUpper(name)
	for _, e := range s.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of distinct parameter names.
func (s Set) Len() int {
	return len(s.entries)
}

// Entries returns the ordered entries. The slice is shared, not copied.
func (s Set) Entries() []Entry {
	return s.entries
}

// Parse tokenizes one raw parameter segment. Quoted segments protect both
// the `;` entry delimiter and the `,` member delimiter. Malformed bare
// tokens are dropped and reported as notes, never as errors.
func Parse(segment string) (Set, []string) {
	var set Set
	var notes []string
	if segment == "" {
		return set, nil
	}
	for _, token := range splitQuoted(segment, ';') {
		if token == "" {
			continue
		}
		eq := strings.IndexByte(token, '=')
		if eq < 0 {
			bare := strings.TrimSpace(token)
			if !validBareToken(bare) {
				notes = append(notes, fmt.Sprintf("dropped malformed parameter %q", token))
				continue
			}
			set.Add(TypeName, strings.ToLower(bare))
			continue
		}
		name := strings.ToUpper(strings.TrimSpace(token[:eq]))
		if name == "" {
			notes = append(notes, fmt.Sprintf("dropped parameter with empty name %q", token))
			continue
		}
		for _, member := range splitMembers(token[eq+1:]) {
			set.Add(name, member)
		}
	}
	return set, notes
}

// Serialize renders the set in entry order, quoting any member that needs
// protection. The result carries no leading or trailing delimiter.
func (s Set) Serialize() string {
	var b strings.Builder
	for i, e := range s.entries {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(e.Name)
		b.WriteByte('=')
		for j, member := range e.Value.Values() {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteIfNeeded(member))
		}
	}
	return b.String()
}

// splitMembers cuts a raw parameter value into its members. Quotes are
// stripped after splitting; a quoted member that still carries commas is a
// comma-list itself and splits again.
func splitMembers(raw string) []string {
	parts := splitQuoted(raw, ',')
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		member := unquote(p)
		if strings.Contains(member, ",") {
			out = append(out, strings.Split(member, ",")...)
			continue
		}
		out = append(out, member)
	}
	return out
}

// splitQuoted splits on sep outside double-quoted segments.
func splitQuoted(s string, sep byte) []string {
	out := make([]string, 0, 4)
	start := 0
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// unquote strips one layer of surrounding quotes and unescapes internal
// `\"` and `\\`.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	inner := s[1 : len(s)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) && (inner[i+1] == '"' || inner[i+1] == '\\') {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

func quoteIfNeeded(s string) string {
	if !strings.ContainsAny(s, `;:,"`) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

func validBareToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
