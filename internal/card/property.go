package card

import (
	"strconv"
	"strings"

	"github.com/danmuck/cardctl/internal/wire"
	"github.com/danmuck/cardctl/internal/wire/dtime"
	"github.com/danmuck/cardctl/internal/wire/param"
)

// Property is one content line of a card. Value holds the wire form, still
// escaped, so unknown properties survive a round trip untouched.
type Property struct {
	Group  string
	Name   string
	Params param.Set
	Value  string
}

// NewProperty builds a property from a plain text value, escaping it for
// the wire.
func NewProperty(name, text string) Property {
	return Property{Name: strings.ToUpper(name), Value: wire.Escape(text)}
}

// Text returns the unescaped single text value.
func (p Property) Text() string {
	return wire.Unescape(p.decoded())
}

// TextList returns the comma-list members, unescaped.
func (p Property) TextList() []string {
	return wire.ParseList(p.decoded())
}

// Structured returns the semicolon components, unescaped.
func (p Property) Structured() []string {
	return wire.ParseStructured(p.decoded())
}

// StructuredList returns semicolon components whose members are themselves
// comma-lists, e.g. the N property.
func (p Property) StructuredList() [][]string {
	return wire.ParseStructuredList(p.decoded())
}

// Date parses the value as a date-and-or-time.
func (p Property) Date() (dtime.DateAndOrTime, error) {
	return dtime.Parse(wire.Unescape(p.decoded()))
}

// Kind reports how this property's value is interpreted, from the static
// name table. Unknown names read as opaque text.
func (p Property) Kind() ValueKind {
	return KindOf(p.Name)
}

// Pref returns the PREF ordinal, or 0 when absent or malformed.
func (p Property) Pref() int {
	v, ok := p.Params.Get("PREF")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.First()))
	if err != nil {
		return 0
	}
	return n
}

// Types returns the lowered TYPE members, legacy bare tokens included.
func (p Property) Types() []string {
	v, ok := p.Params.Get(param.TypeName)
	if !ok {
		return nil
	}
	members := v.Values()
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = strings.ToLower(m)
	}
	return out
}

// decoded undoes a declared legacy transfer encoding. Values without an
// ENCODING parameter pass through untouched.
func (p Property) decoded() string {
	v, ok := p.Params.Get("ENCODING")
	if !ok {
		return p.Value
	}
	for _, enc := range v.Values() {
		if strings.EqualFold(enc, "QUOTED-PRINTABLE") {
			return wire.DecodeQuotedPrintable(p.Value)
		}
	}
	return p.Value
}
