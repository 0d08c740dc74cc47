package lexer

// Cursor is a forward-only byte position over an immutable source buffer.
// Reads at or past the end return the NUL sentinel instead of panicking.
type Cursor struct {
	source string
	pos    int
}

// NewCursor creates a cursor at offset 0 of source.
func NewCursor(source string) Cursor {
	return Cursor{source: source}
}

// Current returns the byte at the cursor, or 0 at end of input.
func (c *Cursor) Current() byte {
	if c.pos >= len(c.source) {
		return 0
	}
	return c.source[c.pos]
}

// Peek returns the byte after the current one.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos+1 >= len(c.source) {
		return 0, false
	}
	return c.source[c.pos+1], true
}

// Advance moves forward n bytes, clamped to the end of the buffer.
// Negative values are ignored; the cursor never moves backward.
func (c *Cursor) Advance(n int) {
	if n <= 0 {
		return
	}
	if n > len(c.source)-c.pos {
		n = len(c.source) - c.pos
	}
	c.pos += n
}

// Bump advances a single byte.
func (c *Cursor) Bump() { c.Advance(1) }

// AtEnd reports whether the whole buffer has been consumed.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.source) }

// Position returns the current byte offset.
func (c *Cursor) Position() int { return c.pos }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.source) }

// Rest returns the unconsumed part of the buffer.
func (c *Cursor) Rest() string { return c.source[c.pos:] }

// Slice returns source[start:end] without copying. Out-of-range bounds are
// clamped and an inverted range yields "".
func (c *Cursor) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(c.source) {
		end = len(c.source)
	}
	if start >= end {
		return ""
	}
	return c.source[start:end]
}
