package wire

import (
	"strings"

	"github.com/danmuck/cardctl/internal/wire/param"
)

// Tokenize splits one unfolded line into group, name, parameter set and raw
// value. The value is not unescaped. Non-fatal parameter anomalies come back
// as notes; a returned error means the line must be dropped.
func Tokenize(line string) (ContentLine, []string, error) {
	sep := valueSeparator(line)
	if sep < 0 {
		return ContentLine{}, nil, ErrNoColon
	}
	head := line[:sep]
	value := line[sep+1:]

	var paramSegment string
	if semi := strings.IndexByte(head, ';'); semi >= 0 {
		paramSegment = head[semi+1:]
		head = head[:semi]
	}

	var group string
	name := head
	if dot := strings.IndexByte(head, '.'); dot >= 0 {
		group = head[:dot]
		name = head[dot+1:]
	}
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return ContentLine{}, nil, ErrEmptyName
	}

	params, notes := param.Parse(paramSegment)
	return ContentLine{
		Group:  group,
		Name:   name,
		Params: params,
		Value:  value,
	}, notes, nil
}

// valueSeparator locates the first colon outside a quoted parameter value.
func valueSeparator(line string) int {
	quoted := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			quoted = !quoted
		case ':':
			if !quoted {
				return i
			}
		}
	}
	return -1
}
