package olirtf

import (
	"strings"
	"unicode"
)

// Alignment is the horizontal alignment of a paragraph.
type Alignment uint8

const (
	AlignJustify Alignment = iota
	AlignCenter
	AlignLeft
)

// Code returns the RTF alignment letter used after \q.
func (a Alignment) Code() string {
	switch a {
	case AlignCenter:
		return "c"
	case AlignLeft:
		return "l"
	default:
		return "j"
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	default:
		return "justify"
	}
}

// Paragraph is one flushed paragraph. Text already carries the markup of
// the Dialect that built it.
type Paragraph struct {
	Text      string
	Align     Alignment
	PageBreak bool
}

// Dialect supplies the markup embedded into paragraph text.
type Dialect interface {
	EmphasisOpen() string
	EmphasisClose() string
	// Accent returns the markup for an accent token kind.
	Accent(TokenKind) string
	Indent() string
}

// State is the running state of a render pass. Apply is its transition
// function; State does no I/O.
type State struct {
	// Section counts the end-of-section markers seen so far.
	Section int
	// Align applies to the paragraph being built.
	Align Alignment
	// Emphasis reports an underline span left open in the paragraph text.
	Emphasis bool

	dialect Dialect
	text    strings.Builder
}

// NewState returns a State at the start of a document.
func NewState(d Dialect) *State {
	if d == nil {
		d = RTFDialect()
	}
	return &State{dialect: d}
}

// Text returns the paragraph text accumulated since the last flush.
func (s *State) Text() string {
	return s.text.String()
}

// Visible reports whether content in the current section reaches the output.
// Only the first and third sections carry document text.
func (s *State) Visible() bool {
	return s.Section == 0 || s.Section == 2
}

// Apply consumes tok. next is the token that follows it, when hasNext is
// true. The returned paragraph is valid only when flushed is true.
func (s *State) Apply(tok, next Token, hasNext bool) (p Paragraph, flushed bool) {
	if tok.Kind == TokenEndSection {
		if s.text.Len() > 0 {
			p, flushed = s.flush(false), true
		}
		s.Section++
		return p, flushed
	}
	if !s.Visible() {
		return Paragraph{}, false
	}
	switch tok.Kind {
	case TokenPrintable:
		s.text.WriteRune(tok.Char)
		if s.Emphasis && hasNext && !continuesEmphasis(next) {
			s.text.WriteString(s.dialect.EmphasisClose())
			s.Emphasis = false
		}
	case TokenAGrave, TokenEGrave, TokenEAcute, TokenIGrave, TokenOGrave, TokenUGrave:
		s.text.WriteString(s.dialect.Accent(tok.Kind))
	case TokenNewLine:
		return s.flush(false), true
	case TokenNewPage:
		return s.flush(true), true
	case TokenAlignCenter:
		s.Align = AlignCenter
	case TokenAlignLeft:
		s.Align = AlignLeft
	case TokenIndent:
		s.text.WriteString(s.dialect.Indent())
	case TokenUnderline:
		if !s.Emphasis {
			s.text.WriteString(s.dialect.EmphasisOpen())
			s.Emphasis = true
		}
	}
	return Paragraph{}, false
}

// continuesEmphasis reports whether an open underline span carries on into
// t. A span covers one word: toggles and non-space characters extend it.
func continuesEmphasis(t Token) bool {
	switch t.Kind {
	case TokenUnderline:
		return true
	case TokenPrintable:
		return !unicode.IsSpace(t.Char)
	}
	return false
}

func (s *State) flush(pageBreak bool) Paragraph {
	p := Paragraph{
		Text:      s.text.String(),
		Align:     s.Align,
		PageBreak: pageBreak,
	}
	s.text.Reset()
	s.Align = AlignJustify
	return p
}
