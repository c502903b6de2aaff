package wire

import (
	"errors"
	"testing"

	"github.com/danmuck/cardctl/internal/testutil/testlog"
)

func TestTokenizeSimpleLine(t *testing.T) {
	testlog.Start(t)
	cl, notes, err := Tokenize("fn:Jane Doe")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("unexpected notes: %v", notes)
	}
	if cl.Name != "FN" || cl.Group != "" || cl.Value != "Jane Doe" {
		t.Fatalf("unexpected line: %+v", cl)
	}
}

func TestTokenizeGroupAndParams(t *testing.T) {
	testlog.Start(t)
	cl, _, err := Tokenize("item1.TEL;TYPE=work;PREF=1:+1-555-0100")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if cl.Group != "item1" || cl.Name != "TEL" {
		t.Fatalf("unexpected group/name: %+v", cl)
	}
	if v, ok := cl.Params.Get("pref"); !ok || v.First() != "1" {
		t.Fatalf("PREF not parsed: %+v", cl.Params)
	}
	if cl.Value != "+1-555-0100" {
		t.Fatalf("unexpected value: %q", cl.Value)
	}
}

func TestTokenizeQuotedColonNotASeparator(t *testing.T) {
	testlog.Start(t)
	cl, _, err := Tokenize(`URL;LABEL="see: homepage":https://example.com`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if cl.Value != "https://example.com" {
		t.Fatalf("colon inside quotes split the line: %q", cl.Value)
	}
	if v, ok := cl.Params.Get("LABEL"); !ok || v.First() != "see: homepage" {
		t.Fatalf("label lost: %+v", cl.Params)
	}
}

func TestTokenizeNoColonIsDeterministic(t *testing.T) {
	testlog.Start(t)
	_, _, err := Tokenize("THIS LINE HAS NO SEPARATOR")
	if !errors.Is(err, ErrNoColon) {
		t.Fatalf("expected ErrNoColon, got %v", err)
	}
}

func TestTokenizeEmptyNameIsDeterministic(t *testing.T) {
	testlog.Start(t)
	_, _, err := Tokenize(":value only")
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	_, _, err = Tokenize("group.:value")
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName for empty name after group, got %v", err)
	}
}

func TestTokenizeValueKeepsEscapes(t *testing.T) {
	testlog.Start(t)
	cl, _, err := Tokenize(`NOTE:line one\nline two\, with comma`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if cl.Value != `line one\nline two\, with comma` {
		t.Fatalf("value was unescaped too early: %q", cl.Value)
	}
}

func TestSerializeLineTokenizeIdempotent(t *testing.T) {
	testlog.Start(t)
	lines := []string{
		"FN:Jane Doe",
		"item1.TEL;TYPE=work,voice;PREF=1:+1-555-0100",
		`EMAIL;TYPE=internet:jane@example.com`,
		`NOTE:semi\; colon`,
	}
	for _, line := range lines {
		cl, _, err := Tokenize(line)
		if err != nil {
			t.Fatalf("tokenize %q: %v", line, err)
		}
		out := SerializeLine(cl)
		if out != line {
			t.Fatalf("serialize not idempotent: %q -> %q", line, out)
		}
	}
}
