package wire

import "strings"

// ParseBlocks unfolds raw text and groups tokenized lines between BEGIN and
// END markers. Content outside any block is ignored. Warnings for anomalies
// inside a block attach to that block; anomalies outside any block come back
// in the second result.
func ParseBlocks(text string) ([]Block, []Warning) {
	lines := Unfold(text)
	var blocks []Block
	var loose []Warning
	var cur *Block

	for i, line := range lines {
		pos := i + 1
		switch {
		case strings.EqualFold(line, BeginMarker):
			// A BEGIN inside an open block discards the unterminated state.
			cur = &Block{Version: DefaultVersion}
		case strings.EqualFold(line, EndMarker):
			if cur == nil {
				loose = append(loose, Warning{Line: pos, Message: "END marker without matching BEGIN"})
				continue
			}
			blocks = append(blocks, *cur)
			cur = nil
		case cur == nil:
			// Outside BEGIN/END is not an anomaly; surrounding text is legal.
		default:
			appendLine(cur, pos, line)
		}
	}

	if cur != nil {
		cur.Warnings = append(cur.Warnings, Warning{Message: "unclosed block at end of input"})
		blocks = append(blocks, *cur)
	}
	return blocks, loose
}

func appendLine(b *Block, pos int, line string) {
	cl, notes, err := Tokenize(line)
	for _, note := range notes {
		b.Warnings = append(b.Warnings, Warning{Line: pos, Message: note})
	}
	if err != nil {
		b.Warnings = append(b.Warnings, Warning{Line: pos, Message: err.Error()})
		return
	}
	// A VERSION line anywhere in the block updates the recorded version.
	if cl.Name == VersionName && cl.Group == "" {
		if v := strings.TrimSpace(cl.Value); v != "" {
			b.Version = v
		}
		return
	}
	b.Lines = append(b.Lines, cl)
}
