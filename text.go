package olirtf

import (
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const (
	sgrUnderline    = "\x1b[4m"
	sgrUnderlineOff = "\x1b[24m"
	textIndent      = "    "
	pageRuleWidth   = 40
)

// textDialect renders accents as UTF-8 letters and underline as ANSI SGR.
type textDialect struct {
	ansi bool
}

// TextDialect returns the markup used for terminal text output.
func TextDialect(ansiEnabled bool) Dialect {
	return textDialect{ansi: ansiEnabled}
}

func (d textDialect) EmphasisOpen() string {
	if d.ansi {
		return sgrUnderline
	}
	return ""
}

func (d textDialect) EmphasisClose() string {
	if d.ansi {
		return sgrUnderlineOff
	}
	return ""
}

func (textDialect) Indent() string { return textIndent }

func (textDialect) Accent(k TokenKind) string {
	r, ok := k.Accent()
	if !ok {
		return ""
	}
	return string(r)
}

type textSink struct {
	w     io.Writer
	width int
}

func (s *textSink) Begin() error { return nil }
func (s *textSink) End() error   { return nil }

func (s *textSink) WriteParagraph(p Paragraph) error {
	var b strings.Builder
	if p.PageBreak {
		rule := s.width
		if rule <= 0 {
			rule = pageRuleWidth
		}
		b.WriteString(strings.Repeat("─", rule))
		b.WriteByte('\n')
	}
	text := strings.ReplaceAll(p.Text, "\t", textIndent)
	if s.width > 0 {
		text = wordwrap.String(text, s.width)
	}
	for _, line := range strings.Split(text, "\n") {
		if p.Align == AlignCenter && s.width > 0 {
			if pad := (s.width - ansi.PrintableRuneWidth(line)) / 2; pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(s.w, b.String())
	return err
}
