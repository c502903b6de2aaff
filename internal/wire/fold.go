package wire

import (
	"strings"
	"unicode/utf8"
)

// FoldWidth is the physical line budget in UTF-8 octets.
const FoldWidth = 75

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Unfold splits raw text into logical lines. All line-ending variants are
// normalized first; a break followed by a space or tab is a fold indicator
// and is deleted together with that one whitespace byte. Blank lines are
// dropped.
func Unfold(text string) []string {
	normalized := lineEndings.Replace(text)
	var lines []string
	var cur strings.Builder
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if c != '\n' {
			cur.WriteByte(c)
			continue
		}
		if i+1 < len(normalized) && (normalized[i+1] == ' ' || normalized[i+1] == '\t') {
			i++
			continue
		}
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
		}
		cur.Reset()
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Fold wraps one logical line to the octet budget and terminates every
// physical line with CRLF. Widths are counted per code point so multi-byte
// sequences are never split; continuation lines reserve one octet for the
// mandatory leading space. A code point wider than the remaining budget is
// force-included so folding always terminates.
func Fold(line string) string {
	if len(line) <= FoldWidth {
		return line + "\r\n"
	}
	var out strings.Builder
	var seg strings.Builder
	remaining := FoldWidth
	for i := 0; i < len(line); {
		_, w := utf8.DecodeRuneInString(line[i:])
		if w > remaining && seg.Len() > 0 {
			out.WriteString(seg.String())
			out.WriteString("\r\n ")
			seg.Reset()
			remaining = FoldWidth - 1
		}
		seg.WriteString(line[i : i+w])
		remaining -= w
		i += w
	}
	out.WriteString(seg.String())
	out.WriteString("\r\n")
	return out.String()
}
