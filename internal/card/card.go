package card

import (
	"errors"
	"strings"

	"github.com/danmuck/cardctl/internal/wire"
)

var ErrNoCard = errors.New("card: input contains no card")

// Card is one parsed contact record. Properties keep insertion order;
// Warnings carry every anomaly tolerated while reading this record.
type Card struct {
	Version    string
	Properties []Property
	Warnings   []wire.Warning
}

// ParseAll reads every card block from raw wire text. Warnings outside any
// block come back in the second result; per-card warnings ride on the card.
func ParseAll(text string) ([]Card, []wire.Warning) {
	blocks, loose := wire.ParseBlocks(text)
	cards := make([]Card, 0, len(blocks))
	for _, b := range blocks {
		c := Card{Version: b.Version, Warnings: b.Warnings}
		for _, cl := range b.Lines {
			c.Properties = append(c.Properties, Property{
				Group:  cl.Group,
				Name:   cl.Name,
				Params: cl.Params,
				Value:  cl.Value,
			})
		}
		cards = append(cards, c)
	}
	return cards, loose
}

// Parse reads exactly one card. Zero cards in the input is a caller error,
// not a tolerated anomaly.
func Parse(text string) (Card, []wire.Warning, error) {
	cards, loose := ParseAll(text)
	if len(cards) == 0 {
		return Card{}, loose, ErrNoCard
	}
	return cards[0], loose, nil
}

// Get returns every property with the given case-insensitive name, in
// input order.
func (c *Card) Get(name string) []Property {
	name = strings.ToUpper(name)
	var out []Property
	for _, p := range c.Properties {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// Add appends a property, normalizing its name.
func (c *Card) Add(p Property) {
	p.Name = strings.ToUpper(p.Name)
	c.Properties = append(c.Properties, p)
}

// Preferred selects the property with the lowest valid PREF ordinal
// (1..100). Properties without a usable PREF rank last; ties keep input
// order.
func (c *Card) Preferred(name string) (Property, bool) {
	props := c.Get(name)
	if len(props) == 0 {
		return Property{}, false
	}
	best := 0
	bestRank := prefRank(props[0])
	for i := 1; i < len(props); i++ {
		if r := prefRank(props[i]); r < bestRank {
			best, bestRank = i, r
		}
	}
	return props[best], true
}

func prefRank(p Property) int {
	n := p.Pref()
	if n < 1 || n > 100 {
		return 101
	}
	return n
}
