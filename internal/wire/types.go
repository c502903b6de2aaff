package wire

import "github.com/danmuck/cardctl/internal/wire/param"

// Wire markers and defaults.
const (
	BeginMarker    = "BEGIN:VCARD"
	EndMarker      = "END:VCARD"
	VersionName    = "VERSION"
	DefaultVersion = "4.0"
)

// ContentLine is one tokenized, unfolded property line. Value is kept
// escaped exactly as read; callers unescape through the typing layer.
type ContentLine struct {
	Group  string
	Name   string
	Params param.Set
	Value  string
}

// Warning is a tolerated input anomaly. It is data, not a failure signal.
type Warning struct {
	Line    int // 1-based logical line, 0 when unknown
	Message string
}

// Block is one record between BEGIN and END markers. It lives for one
// parse pass only.
type Block struct {
	Version  string
	Lines    []ContentLine
	Warnings []Warning
}
