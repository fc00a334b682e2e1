package olirtf

// Tokenize decodes a source document into its token sequence.
//
// Decoding is total: every byte is consumed exactly once and bytes that
// match no rule are dropped without producing a token, so any input yields
// some output.
func Tokenize(src []byte) []Token {
	l := lexer{
		cur: cursor{buf: src},
		out: make([]Token, 0, len(src)),
	}
	for {
		b, ok := l.cur.next()
		if !ok {
			break
		}
		l.dispatch(b)
	}
	return l.out
}

type lexer struct {
	cur cursor
	out []Token
}

func (l *lexer) emit(t Token) {
	l.out = append(l.out, t)
}

func (l *lexer) lastIs(k TokenKind) bool {
	return len(l.out) > 0 && l.out[len(l.out)-1].Kind == k
}

func (l *lexer) dispatch(b byte) {
	switch {
	case b == 0x00:
		if tok, ok := l.formatTag(false); ok {
			l.emit(tok)
		}
	case b == 0x04:
		// 0x04 0x00 ... 0x7F: paragraph formatting, implies a line break.
		if !l.cur.is(0x00) {
			return
		}
		if tok, ok := l.formatTag(true); ok {
			l.emit(tok)
			if !l.cur.is('\r') {
				l.emit(marker(TokenNewLine))
			}
		}
	case b == 0x1B:
		if l.cur.probe(0x1B) {
			l.emit(marker(TokenFileHeader))
		}
	case b == 0xFF:
		l.cur.skipRun(0xFF)
		l.emit(marker(TokenEndSection))
	case b == 0x1E:
		if l.cur.probe(0x02, 0x1F) {
			l.emit(marker(TokenUnderline))
		}
	case b == '\t':
		if l.lastIs(TokenNewLine) {
			l.emit(marker(TokenIndent))
		} else {
			l.emit(printable('\t'))
		}
	case b == '\n' || b == '\r':
		l.emit(marker(TokenNewLine))
	case b == 0x0B:
		l.emit(printable(rune(b)))
	case b == 0x0C:
		l.emit(marker(TokenNewPage))
	case isPrintableByte(b):
		l.letter(b)
	case isSpaceByte(b):
		l.emit(printable(' '))
	}
}

// formatTag scans a formatting tag up to its 0x7F terminator. The last
// recognized directive wins. In a strict tag any other byte aborts the tag;
// a lenient tag maps unknown bytes to centering instead.
func (l *lexer) formatTag(lenient bool) (Token, bool) {
	var (
		pending Token
		found   bool
	)
	for {
		b, ok := l.cur.next()
		if !ok {
			return Token{}, false
		}
		switch b {
		case 0x23:
			pending, found = marker(TokenIndent), true
		case 0x28:
			pending, found = marker(TokenAlignLeft), true
		case 0x7F:
			return pending, found
		default:
			if !lenient {
				return Token{}, false
			}
			// The real meaning of these bytes is unknown; centering matches
			// the documents seen so far.
			pending, found = marker(TokenAlignCenter), true
		}
	}
}

var graveAccents = map[byte]TokenKind{
	'a': TokenAGrave,
	'e': TokenEGrave,
	'i': TokenIGrave,
	'o': TokenOGrave,
	'u': TokenUGrave,
}

// letter handles a printable byte, folding a following backtick into an
// accented letter.
func (l *lexer) letter(b byte) {
	accented := false
	if b == 'h' {
		l.emit(printable('h'))
		accented = l.afterH()
	} else if kind, ok := graveAccents[b]; ok && l.cur.is('`') {
		l.cur.advance()
		l.emit(marker(kind))
		accented = true
	} else {
		l.emit(printable(rune(b)))
	}
	if !accented {
		return
	}
	// Accented words are not reliably delimited in the source.
	if c, ok := l.cur.peek(); ok && c > ' ' && c <= 0x7E {
		l.emit(printable(' '))
	}
}

// afterH decodes the bytes after an 'h'. The sequence h e ` stands for h
// followed by e-acute.
func (l *lexer) afterH() bool {
	c, ok := l.cur.next()
	if !ok {
		return false
	}
	if c != 'e' {
		l.emit(printable(rune(c)))
		return false
	}
	d, ok := l.cur.next()
	switch {
	case !ok:
		l.emit(printable('e'))
	case d == '`':
		l.emit(marker(TokenEAcute))
		return true
	default:
		l.emit(printable('e'))
		if isPrintableByte(d) {
			l.emit(printable(rune(d)))
		} else if isSpaceByte(d) {
			l.emit(printable(' '))
		}
	}
	return false
}

func isPrintableByte(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// isSpaceByte reports bytes in 0x80-0x8D, which the source appears to use
// as spaces.
func isSpaceByte(b byte) bool {
	return b >= 0x80 && b <= 0x8D
}
