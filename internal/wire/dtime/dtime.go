// Package dtime owns the reduced-precision date-and-or-time codec: partial
// dates, year-omitted forms, and times with a trailing UTC offset.
package dtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unset marks an absent numeric component.
const Unset = -1

var ErrEmpty = errors.New("dtime: no date and no time component")

// DateAndOrTime carries independently optional calendar and clock
// components. A value with HasTime false and no date component is invalid.
type DateAndOrTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Offset               string // "Z" or ±HHMM, empty when absent
	HasTime              bool
}

// Empty reports whether no component at all is populated.
func (d DateAndOrTime) Empty() bool {
	return !d.HasTime && d.Year == Unset && d.Month == Unset && d.Day == Unset
}

// Parse reads the date-and-or-time grammar. Basic and extended (hyphen and
// colon separated) forms both parse; Format always emits the basic form.
func Parse(s string) (DateAndOrTime, error) {
	s = strings.TrimSpace(s)
	d := DateAndOrTime{
		Year: Unset, Month: Unset, Day: Unset,
		Hour: Unset, Minute: Unset, Second: Unset,
	}
	datePart := s
	if ti := strings.IndexAny(s, "Tt"); ti >= 0 {
		datePart = s[:ti]
		d.HasTime = true
		parseTime(&d, s[ti+1:])
	}
	if datePart != "" {
		parseDate(&d, datePart)
	}
	if d.Empty() {
		return DateAndOrTime{}, ErrEmpty
	}
	return d, nil
}

// Format emits the shortest-specificity basic form: --MMDD, ---DD or
// YYYY[MM[DD]], then T plus zero-padded hour[minute[second]] and the offset
// suffix when a time is present.
func Format(d DateAndOrTime) string {
	var b strings.Builder
	switch {
	case d.Year != Unset:
		fmt.Fprintf(&b, "%04d", d.Year)
		if d.Month != Unset {
			fmt.Fprintf(&b, "%02d", d.Month)
			if d.Day != Unset {
				fmt.Fprintf(&b, "%02d", d.Day)
			}
		}
	case d.Month != Unset:
		fmt.Fprintf(&b, "--%02d", d.Month)
		if d.Day != Unset {
			fmt.Fprintf(&b, "%02d", d.Day)
		}
	case d.Day != Unset:
		fmt.Fprintf(&b, "---%02d", d.Day)
	}
	if d.HasTime {
		b.WriteByte('T')
		if d.Hour != Unset {
			fmt.Fprintf(&b, "%02d", d.Hour)
			if d.Minute != Unset {
				fmt.Fprintf(&b, "%02d", d.Minute)
				if d.Second != Unset {
					fmt.Fprintf(&b, "%02d", d.Second)
				}
			}
		}
		b.WriteString(d.Offset)
	}
	return b.String()
}

func parseDate(d *DateAndOrTime, s string) {
	switch {
	case strings.HasPrefix(s, "---"):
		digits := strings.ReplaceAll(s[3:], "-", "")
		d.Day = digitsAt(digits, 0, 2)
	case strings.HasPrefix(s, "--"):
		digits := strings.ReplaceAll(s[2:], "-", "")
		d.Month = digitsAt(digits, 0, 2)
		d.Day = digitsAt(digits, 2, 2)
	default:
		digits := strings.ReplaceAll(s, "-", "")
		d.Year = digitsAt(digits, 0, 4)
		d.Month = digitsAt(digits, 4, 2)
		d.Day = digitsAt(digits, 6, 2)
	}
}

func parseTime(d *DateAndOrTime, s string) {
	if n := len(s); n > 0 && (s[n-1] == 'Z' || s[n-1] == 'z') {
		d.Offset = "Z"
		s = s[:n-1]
	} else if idx := strings.LastIndexAny(s, "+-"); idx >= 0 && validOffset(s[idx:]) {
		d.Offset = strings.ReplaceAll(s[idx:], ":", "")
		s = s[:idx]
	}
	digits := strings.ReplaceAll(s, ":", "")
	d.Hour = digitsAt(digits, 0, 2)
	d.Minute = digitsAt(digits, 2, 2)
	d.Second = digitsAt(digits, 4, 2)
}

// digitsAt reads width digits at offset, Unset when absent or malformed.
func digitsAt(s string, offset, width int) int {
	if len(s) < offset+width {
		return Unset
	}
	v, err := strconv.Atoi(s[offset : offset+width])
	if err != nil || v < 0 {
		return Unset
	}
	return v
}

// validOffset accepts ±HHMM and ±HH:MM.
func validOffset(s string) bool {
	if len(s) == 6 && s[3] == ':' {
		s = s[:3] + s[4:]
	}
	if len(s) != 5 {
		return false
	}
	if s[0] != '+' && s[0] != '-' {
		return false
	}
	for i := 1; i < 5; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
