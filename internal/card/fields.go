package card

import "strings"

// ValueKind classifies how a property value is interpreted.
type ValueKind int

const (
	KindText ValueKind = iota
	KindTextList
	KindStructured
	KindDate
	KindURI
)

// fieldKinds is the static dispatch table from normalized property name to
// value kind. Unknown names fall back to opaque text and still round-trip.
var fieldKinds = map[string]ValueKind{
	"SOURCE":       KindURI,
	"KIND":         KindText,
	"XML":          KindText,
	"FN":           KindText,
	"N":            KindStructured,
	"NICKNAME":     KindTextList,
	"PHOTO":        KindURI,
	"BDAY":         KindDate,
	"ANNIVERSARY":  KindDate,
	"GENDER":       KindStructured,
	"ADR":          KindStructured,
	"TEL":          KindText,
	"EMAIL":        KindText,
	"IMPP":         KindURI,
	"LANG":         KindText,
	"TZ":           KindText,
	"GEO":          KindURI,
	"TITLE":        KindText,
	"ROLE":         KindText,
	"LOGO":         KindURI,
	"ORG":          KindStructured,
	"MEMBER":       KindURI,
	"RELATED":      KindURI,
	"CATEGORIES":   KindTextList,
	"NOTE":         KindText,
	"PRODID":       KindText,
	"REV":          KindDate,
	"SOUND":        KindURI,
	"UID":          KindText,
	"CLIENTPIDMAP": KindText,
	"URL":          KindURI,
}

// KindOf returns the value kind for a property name.
func KindOf(name string) ValueKind {
	if k, ok := fieldKinds[strings.ToUpper(name)]; ok {
		return k
	}
	return KindText
}

// String names the kind for diagnostics and API payloads.
func (k ValueKind) String() string {
	switch k {
	case KindTextList:
		return "text-list"
	case KindStructured:
		return "structured"
	case KindDate:
		return "date"
	case KindURI:
		return "uri"
	default:
		return "text"
	}
}
