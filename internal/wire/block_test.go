package wire

import (
	"strings"
	"testing"

	"github.com/danmuck/cardctl/internal/testutil/testlog"
)

const sampleCard = "BEGIN:VCARD\r\n" +
	"VERSION:4.0\r\n" +
	"FN:Jane Doe\r\n" +
	"EMAIL;TYPE=work:jane@example.com\r\n" +
	"END:VCARD\r\n"

func TestParseBlocksSingleCard(t *testing.T) {
	testlog.Start(t)
	blocks, loose := ParseBlocks(sampleCard)
	if len(loose) != 0 {
		t.Fatalf("unexpected loose warnings: %v", loose)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.Version != "4.0" {
		t.Fatalf("unexpected version: %q", b.Version)
	}
	if len(b.Lines) != 2 {
		t.Fatalf("expected 2 content lines, got %d", len(b.Lines))
	}
	if b.Lines[0].Name != "FN" || b.Lines[1].Name != "EMAIL" {
		t.Fatalf("unexpected lines: %+v", b.Lines)
	}
}

func TestParseBlocksDefaultVersionWhenAbsent(t *testing.T) {
	testlog.Start(t)
	blocks, _ := ParseBlocks("BEGIN:VCARD\r\nFN:Jane\r\nEND:VCARD\r\n")
	if len(blocks) != 1 || blocks[0].Version != DefaultVersion {
		t.Fatalf("default version not applied: %+v", blocks)
	}
}

func TestParseBlocksVersionAnywhereUpdates(t *testing.T) {
	testlog.Start(t)
	blocks, _ := ParseBlocks("BEGIN:VCARD\r\nFN:Jane\r\nVERSION:3.0\r\nEND:VCARD\r\n")
	if len(blocks) != 1 || blocks[0].Version != "3.0" {
		t.Fatalf("late version ignored: %+v", blocks)
	}
	// The version marker is recorded, not kept as a content line.
	for _, cl := range blocks[0].Lines {
		if cl.Name == VersionName {
			t.Fatalf("version marker leaked into lines")
		}
	}
}

func TestParseBlocksMarkersCaseInsensitive(t *testing.T) {
	testlog.Start(t)
	blocks, _ := ParseBlocks("begin:vcard\r\nFN:Jane\r\nEnd:VCard\r\n")
	if len(blocks) != 1 || len(blocks[0].Lines) != 1 {
		t.Fatalf("case-insensitive markers not honored: %+v", blocks)
	}
}

func TestParseBlocksStrayEndWarnsWithoutBlock(t *testing.T) {
	testlog.Start(t)
	blocks, loose := ParseBlocks("END:VCARD\r\n")
	if len(blocks) != 0 {
		t.Fatalf("stray END produced a block: %+v", blocks)
	}
	if len(loose) != 1 || !strings.Contains(loose[0].Message, "without matching BEGIN") {
		t.Fatalf("missing stray END warning: %v", loose)
	}
}

func TestParseBlocksUnclosedBlockFinalizedWithWarning(t *testing.T) {
	testlog.Start(t)
	blocks, _ := ParseBlocks("BEGIN:VCARD\r\nFN:Jane\r\n")
	if len(blocks) != 1 {
		t.Fatalf("unclosed block dropped: %+v", blocks)
	}
	b := blocks[0]
	if len(b.Lines) != 1 || b.Lines[0].Name != "FN" {
		t.Fatalf("accumulated lines lost: %+v", b.Lines)
	}
	found := false
	for _, w := range b.Warnings {
		if strings.Contains(w.Message, "unclosed") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing unclosed warning: %v", b.Warnings)
	}
}

func TestParseBlocksContentOutsideMarkersIgnored(t *testing.T) {
	testlog.Start(t)
	text := "junk before\r\n" + sampleCard + "junk after\r\n"
	blocks, loose := ParseBlocks(text)
	if len(blocks) != 1 || len(blocks[0].Lines) != 2 {
		t.Fatalf("surrounding junk affected parse: %+v", blocks)
	}
	if len(loose) != 0 {
		t.Fatalf("surrounding junk warned: %v", loose)
	}
}

func TestParseBlocksLineWithoutColonWarnedAndDropped(t *testing.T) {
	testlog.Start(t)
	blocks, _ := ParseBlocks("BEGIN:VCARD\r\nFN:Jane\r\nBROKEN LINE\r\nEND:VCARD\r\n")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block")
	}
	b := blocks[0]
	if len(b.Lines) != 1 {
		t.Fatalf("broken line kept: %+v", b.Lines)
	}
	if len(b.Warnings) != 1 || b.Warnings[0].Line != 3 {
		t.Fatalf("warning missing line position: %v", b.Warnings)
	}
}

func TestParseBlocksBeginInsideBlockDiscardsSilently(t *testing.T) {
	testlog.Start(t)
	text := "BEGIN:VCARD\r\nFN:Lost\r\nBEGIN:VCARD\r\nFN:Kept\r\nEND:VCARD\r\n"
	blocks, _ := ParseBlocks(text)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].Lines) != 1 || blocks[0].Lines[0].Value != "Kept" {
		t.Fatalf("restart did not discard prior state: %+v", blocks[0].Lines)
	}
}

func TestParseBlocksMultipleCards(t *testing.T) {
	testlog.Start(t)
	blocks, _ := ParseBlocks(sampleCard + sampleCard)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestParseBlocksFoldedInputRoundTrip(t *testing.T) {
	testlog.Start(t)
	long := "NOTE:" + strings.Repeat("word ", 40)
	text := Fold(BeginMarker) + Fold("VERSION:4.0") + Fold(long) + Fold(EndMarker)
	blocks, _ := ParseBlocks(text)
	if len(blocks) != 1 || len(blocks[0].Lines) != 1 {
		t.Fatalf("folded card did not parse: %+v", blocks)
	}
	if got := SerializeLine(blocks[0].Lines[0]); got != long {
		t.Fatalf("folded line round trip broken: %q", got)
	}
}

func TestAssembleOutputShape(t *testing.T) {
	testlog.Start(t)
	out := AssembleOutput("4.0", []string{"FN:Jane Doe"})
	want := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Jane Doe\r\nEND:VCARD\r\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", out, want)
	}
	if blocks, _ := ParseBlocks(out); len(blocks) != 1 || len(blocks[0].Lines) != 1 {
		t.Fatalf("assembled output does not re-parse")
	}
}
