package card

import (
	"testing"

	"github.com/danmuck/cardctl/internal/testutil/testlog"
)

func TestPropertyLegacyQuotedPrintableDecoding(t *testing.T) {
	testlog.Start(t)
	c, _, err := Parse("BEGIN:VCARD\r\n" +
		"VERSION:2.1\r\n" +
		"FN;ENCODING=QUOTED-PRINTABLE:Fr=C3=A4nk M=C3=BCller\r\n" +
		"END:VCARD\r\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := c.Get("FN")[0].Text(); got != "Fränk Müller" {
		t.Fatalf("quoted-printable not decoded: %q", got)
	}
}

func TestPropertyWithoutEncodingUntouched(t *testing.T) {
	testlog.Start(t)
	p := Property{Name: "NOTE", Value: "50=50"}
	if got := p.Text(); got != "50=50" {
		t.Fatalf("undeclared encoding decoded anyway: %q", got)
	}
}

func TestPropertyDateAccessor(t *testing.T) {
	testlog.Start(t)
	c, _, err := Parse("BEGIN:VCARD\r\nFN:J\r\nBDAY:--0203\r\nEND:VCARD\r\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d, err := c.Get("BDAY")[0].Date()
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if d.Month != 2 || d.Day != 3 {
		t.Fatalf("unexpected date: %+v", d)
	}
}

func TestPropertyPrefMalformedIsZero(t *testing.T) {
	testlog.Start(t)
	c, _, err := Parse("BEGIN:VCARD\r\nFN:J\r\nEMAIL;PREF=soon:j@example.com\r\nEND:VCARD\r\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := c.Get("EMAIL")[0].Pref(); got != 0 {
		t.Fatalf("malformed PREF not zero: %d", got)
	}
}

func TestNewPropertyEscapesText(t *testing.T) {
	testlog.Start(t)
	p := NewProperty("note", "a;b,c")
	if p.Name != "NOTE" || p.Value != `a\;b\,c` {
		t.Fatalf("unexpected property: %+v", p)
	}
	if p.Text() != "a;b,c" {
		t.Fatalf("round trip broken: %q", p.Text())
	}
}
