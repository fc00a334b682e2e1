package olirtf

// cursor walks an in-memory buffer with one byte of lookahead.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos], true
}

func (c *cursor) advance() {
	if c.pos < len(c.buf) {
		c.pos++
	}
}

// next consumes and returns the current byte.
func (c *cursor) next() (byte, bool) {
	b, ok := c.peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// is reports whether the current byte equals b without consuming it.
func (c *cursor) is(b byte) bool {
	got, ok := c.peek()
	return ok && got == b
}

// probe consumes up to len(want) bytes and reports whether all of them were
// present and matched. Mismatching bytes are consumed as well.
func (c *cursor) probe(want ...byte) bool {
	ok := true
	for _, w := range want {
		b, more := c.next()
		if !more || b != w {
			ok = false
		}
		if !more {
			break
		}
	}
	return ok
}

// skipRun consumes every consecutive occurrence of b.
func (c *cursor) skipRun(b byte) {
	for c.is(b) {
		c.pos++
	}
}
