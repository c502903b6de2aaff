package card

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError names the property that makes a card unwritable.
type ValidationError struct {
	Property string
	Reason   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("card: invalid %s: %s", e.Property, e.Reason)
}

// Enumerated KIND values; experimental x- names are also accepted.
var cardKinds = map[string]bool{
	"individual":  true,
	"group":       true,
	"org":         true,
	"location":    true,
	"application": true,
}

// Validate applies the write-side structural checks. Reading is tolerant;
// writing is strict and fails before any output is produced.
func Validate(c Card) error {
	if len(c.Get("FN")) == 0 {
		return ValidationError{Property: "FN", Reason: "required property missing"}
	}
	for _, p := range c.Properties {
		v, ok := p.Params.Get("PREF")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v.First()))
		if err != nil || n < 1 || n > 100 {
			return ValidationError{Property: p.Name, Reason: "PREF must be an integer in 1..100"}
		}
	}
	for _, p := range c.Get("KIND") {
		kind := strings.ToLower(p.Text())
		if !cardKinds[kind] && !strings.HasPrefix(kind, "x-") {
			return ValidationError{Property: "KIND", Reason: fmt.Sprintf("unknown kind %q", kind)}
		}
	}
	for _, p := range c.Get("REV") {
		if _, err := p.Date(); err != nil {
			return ValidationError{Property: "REV", Reason: "not a date-and-or-time"}
		}
	}
	return nil
}
