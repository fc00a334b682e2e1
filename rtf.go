package olirtf

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
)

// preamble is the fixed document header: info block, font table, color
// table, page geometry and section defaults.
//
//go:embed preamble.rtf
var preamble string

// Preamble returns the fixed RTF header written before the first paragraph.
func Preamble() string {
	return preamble
}

const (
	rtfEmphasisOpen  = `{{\ul `
	rtfEmphasisClose = `}}`
	rtfIndent        = "  \t"
)

type rtfDialect struct{}

// RTFDialect returns the markup used for RTF output.
func RTFDialect() Dialect {
	return rtfDialect{}
}

func (rtfDialect) EmphasisOpen() string  { return rtfEmphasisOpen }
func (rtfDialect) EmphasisClose() string { return rtfEmphasisClose }
func (rtfDialect) Indent() string        { return rtfIndent }

// Accent returns a \u escape followed by two spaces.
func (rtfDialect) Accent(k TokenKind) string {
	r, ok := k.Accent()
	if !ok {
		return ""
	}
	return `\u` + strconv.Itoa(int(r)) + "  "
}

// rtfSink writes paragraphs as RTF groups, one per line.
type rtfSink struct {
	w        io.Writer
	fragment bool
}

func (s *rtfSink) Begin() error {
	if s.fragment {
		return nil
	}
	_, err := io.WriteString(s.w, preamble+"\n")
	return err
}

func (s *rtfSink) WriteParagraph(p Paragraph) error {
	_, err := io.WriteString(s.w, rtfParagraph(p))
	return err
}

func (s *rtfSink) End() error {
	if s.fragment {
		return nil
	}
	_, err := io.WriteString(s.w, "}\n")
	return err
}

func rtfParagraph(p Paragraph) string {
	pageBreak := ""
	if p.PageBreak {
		pageBreak = `\pagebb `
	}
	if p.Text == "" {
		return fmt.Sprintf("{\\pard %s\\par}\n", pageBreak)
	}
	return fmt.Sprintf("{\\pard %s\\q%s %s \\par}\n", pageBreak, p.Align.Code(), p.Text)
}
