package wire

import "strings"

// SerializeLine renders one content line, unfolded. Tokenizing the result
// of SerializeLine yields the same ContentLine back.
func SerializeLine(cl ContentLine) string {
	var b strings.Builder
	if cl.Group != "" {
		b.WriteString(cl.Group)
		b.WriteByte('.')
	}
	b.WriteString(cl.Name)
	if cl.Params.Len() > 0 {
		b.WriteByte(';')
		b.WriteString(cl.Params.Serialize())
	}
	b.WriteByte(':')
	b.WriteString(cl.Value)
	return b.String()
}

// AssembleOutput renders one complete block: BEGIN marker, the VERSION line
// first, every serialized content line, END marker. Every physical line is
// folded and CRLF-terminated.
func AssembleOutput(version string, lines []string) string {
	if strings.TrimSpace(version) == "" {
		version = DefaultVersion
	}
	var b strings.Builder
	b.WriteString(Fold(BeginMarker))
	b.WriteString(Fold(VersionName + ":" + version))
	for _, line := range lines {
		b.WriteString(Fold(line))
	}
	b.WriteString(Fold(EndMarker))
	return b.String()
}
