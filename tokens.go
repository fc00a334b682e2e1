package olirtf

import "strconv"

// Token is one decoded unit of the source document.
type Token struct {
	Kind TokenKind
	// Char holds the character of a TokenPrintable and is zero otherwise.
	Char rune
}

// TokenKind identifies what a Token represents.
type TokenKind uint8

const (
	// TokenPrintable is a literal character.
	TokenPrintable TokenKind = iota
	// TokenEndSection marks a section boundary (a run of 0xFF bytes).
	TokenEndSection
	// TokenFileHeader marks the start of the document metadata (0x1B 0x1B).
	TokenFileHeader
	// TokenUnderline toggles underline on the following characters.
	TokenUnderline
	// TokenIndent is a paragraph indent.
	TokenIndent
	// TokenNewLine ends a paragraph.
	TokenNewLine
	// TokenAlignCenter centers the current paragraph.
	TokenAlignCenter
	// TokenAlignLeft left-aligns the current paragraph.
	TokenAlignLeft
	// TokenNewPage ends a paragraph and starts a new page.
	TokenNewPage
	TokenAGrave
	TokenEGrave
	TokenEAcute
	TokenIGrave
	TokenOGrave
	TokenUGrave
)

var tokenKindNames = [...]string{
	TokenPrintable:   "Printable",
	TokenEndSection:  "EndSection",
	TokenFileHeader:  "FileHeader",
	TokenUnderline:   "Underline",
	TokenIndent:      "Indent",
	TokenNewLine:     "NewLine",
	TokenAlignCenter: "AlignCenter",
	TokenAlignLeft:   "AlignLeft",
	TokenNewPage:     "NewPage",
	TokenAGrave:      "AGrave",
	TokenEGrave:      "EGrave",
	TokenEAcute:      "EAcute",
	TokenIGrave:      "IGrave",
	TokenOGrave:      "OGrave",
	TokenUGrave:      "UGrave",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Accent returns the accented letter an accent kind stands for.
func (k TokenKind) Accent() (rune, bool) {
	switch k {
	case TokenAGrave:
		return 'à', true
	case TokenEGrave:
		return 'è', true
	case TokenEAcute:
		return 'é', true
	case TokenIGrave:
		return 'ì', true
	case TokenOGrave:
		return 'ò', true
	case TokenUGrave:
		return 'ù', true
	}
	return 0, false
}

// String returns a debug form: quoted characters for printable tokens and
// the kind name for everything else.
func (t Token) String() string {
	if t.Kind == TokenPrintable {
		return strconv.QuoteRune(t.Char)
	}
	return t.Kind.String()
}

func printable(c rune) Token {
	return Token{Kind: TokenPrintable, Char: c}
}

func marker(k TokenKind) Token {
	return Token{Kind: k}
}
