package olirtf

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyInput reports a zero-length document.
	ErrEmptyInput = errors.New("empty input")
	// ErrNoFileHeader reports a document without the 0x1B 0x1B header marker.
	ErrNoFileHeader = errors.New("no file header marker found")
	// ErrLooksLikeText reports input that appears to be ordinary text.
	ErrLooksLikeText = errors.New("input looks like plain text")
)

const (
	sniffWindow     = 512
	minTextSample   = 64
	maxControlPct   = 2
	maxHeaderLength = 256
)

var fileHeaderMarker = []byte{0x1B, 0x1B}

// Sniff inspects the start of src and reports why it might not be a source
// document. The result is advisory: Tokenize accepts any input.
func Sniff(src []byte) error {
	if len(src) == 0 {
		return ErrEmptyInput
	}
	window := src[:min(len(src), sniffWindow)]
	if bytes.Contains(window, fileHeaderMarker) {
		return nil
	}
	if len(src) >= minTextSample && utf8.Valid(window) && controlShare(window) < maxControlPct {
		return ErrLooksLikeText
	}
	return ErrNoFileHeader
}

// controlShare returns the percentage of control bytes in b, not counting
// line breaks and tabs.
func controlShare(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	control := 0
	for _, c := range b {
		if isControlByte(c) {
			control++
		}
	}
	return control * 100 / len(b)
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F || b == 0xFF
}

// HeaderText returns the readable part of the file header: the bytes after
// the first 0x1B 0x1B marker up to the first line break or section end, with every
// non-printable byte shown as a space and runs of spaces collapsed. The
// header usually names the producing program version and a date.
func HeaderText(src []byte) string {
	start := bytes.Index(src, fileHeaderMarker)
	if start < 0 {
		return ""
	}
	rest := src[start+len(fileHeaderMarker):]
	for i, c := range rest {
		if c == 0xFF || c == '\n' || c == '\r' {
			rest = rest[:i]
			break
		}
	}
	if len(rest) > maxHeaderLength {
		rest = rest[:maxHeaderLength]
	}
	var b strings.Builder
	for _, c := range rest {
		if isPrintableByte(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
