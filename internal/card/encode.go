package card

import "github.com/danmuck/cardctl/internal/wire"

// Encode renders the card as wire text, validating first. The VERSION line
// is always emitted first; every line is folded and CRLF-terminated.
func Encode(c Card) (string, error) {
	if err := Validate(c); err != nil {
		return "", err
	}
	return EncodeUnchecked(c), nil
}

// EncodeUnchecked renders without validation. Callers opting out of the
// write-side checks accept potentially non-compliant output.
func EncodeUnchecked(c Card) string {
	lines := make([]string, 0, len(c.Properties))
	for _, p := range c.Properties {
		lines = append(lines, wire.SerializeLine(wire.ContentLine{
			Group:  p.Group,
			Name:   p.Name,
			Params: p.Params,
			Value:  p.Value,
		}))
	}
	return wire.AssembleOutput(c.Version, lines)
}

// EncodeAll renders a sequence of cards, validating each.
func EncodeAll(cards []Card) (string, error) {
	var out string
	for _, c := range cards {
		text, err := Encode(c)
		if err != nil {
			return "", err
		}
		out += text
	}
	return out, nil
}
