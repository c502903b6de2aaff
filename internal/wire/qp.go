package wire

// DecodeQuotedPrintable decodes a legacy quoted-printable value into UTF-8
// text. Soft line breaks (= before a line break) disappear. Decoded octets
// accumulate and are interpreted as UTF-8 once at the end, so a multi-byte
// sequence split across several =XX triplets reassembles correctly. An =
// that is not followed by two hex digits passes through unchanged.
func DecodeQuotedPrintable(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '=' {
			buf = append(buf, c)
			continue
		}
		if i+2 < len(s) && s[i+1] == '\r' && s[i+2] == '\n' {
			i += 2
			continue
		}
		if i+1 < len(s) && (s[i+1] == '\n' || s[i+1] == '\r') {
			i++
			continue
		}
		if i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				buf = append(buf, hi<<4|lo)
				i += 2
				continue
			}
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
