package lexer

import (
	"fmt"
	"unicode/utf8"

	"stant/token"
)

// handler consumes at least one byte and sets the in-progress token's kind.
type handler func(*Lexer)

// handlers maps every byte value to the function that lexes a token starting
// with it. A nil entry is an unrecognized byte.
var handlers = buildHandlers()

// identBytes marks the bytes that may continue an identifier.
var identBytes = buildIdentBytes()

func buildIdentBytes() (table [256]bool) {
	for b := '0'; b <= '9'; b++ {
		table[b] = true
	}
	for b := 'a'; b <= 'z'; b++ {
		table[b] = true
		table[b-'a'+'A'] = true
	}
	table['_'] = true

	return
}

func buildHandlers() (table [256]handler) {
	table[0] = lexNUL

	for _, b := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		table[b] = lexWhitespace
	}

	for b, ok := range identBytes {
		if ok {
			table[b] = lexIdentifier
		}
	}
	table['$'] = lexIdentifier

	// Letters that start a keyword classify the scanned word against
	// the keyword table; everything else skips the lookup.
	for _, spelling := range token.Spellings() {
		if first := spelling[0]; first < utf8.RuneSelf && identBytes[first] {
			table[first] = lexKeyword
		}
	}

	table['`'] = lexQuotedIdentifier
	table['+'] = lexPlus

	for b := utf8.RuneSelf; b < len(table); b++ {
		table[b] = lexNonASCII
	}

	return
}

// lexNUL skips an embedded NUL byte. The driver stops at the real end of the
// buffer before dispatching, so a NUL seen here is always followed by more input.
func lexNUL(l *Lexer) {
	start := l.cursor.Position()
	l.cursor.Bump()
	l.token.Kind = token.Empty
	l.report(ErrUnexpectedNUL, start, "unexpected NUL byte [0]")
}

func lexWhitespace(l *Lexer) {
	l.cursor.Bump()
	l.token.Kind = token.Empty
}

// lexPlus lexes `+` and `+=`.
func lexPlus(l *Lexer) {
	if next, ok := l.cursor.Peek(); ok && next == '=' {
		l.cursor.Advance(2)
		l.token.Kind = token.PlusEq
		return
	}

	l.cursor.Bump()
	l.token.Kind = token.Plus
}

// lexIdentifier lexes identifiers, including those starting with `$`, `_` or a digit.
func lexIdentifier(l *Lexer) {
	l.scanIdentifier()
	l.token.Kind = token.Identifier
}

func lexKeyword(l *Lexer) {
	l.token.Kind = token.Lookup(l.scanIdentifier())
}

// lexQuotedIdentifier lexes `name`. The result is always an identifier, even
// when name is spelled like a keyword.
func lexQuotedIdentifier(l *Lexer) {
	start := l.cursor.Position()
	l.cursor.Bump()

	for !l.cursor.AtEnd() && identBytes[l.cursor.Current()] {
		l.cursor.Bump()
	}

	if l.cursor.AtEnd() || l.cursor.Current() != '`' {
		l.token.Kind = token.Invalid
		l.report(ErrUnterminatedQuotedIdentifier, start, "unterminated quoted identifier")
		return
	}

	empty := l.cursor.Position() == start+1
	l.cursor.Bump()

	if empty {
		l.token.Kind = token.Invalid
		l.report(ErrEmptyQuotedIdentifier, start, "empty quoted identifier")
		return
	}

	l.token.Kind = token.Identifier
}

// lexNonASCII rejects a multi-byte sequence as a whole. Invalid UTF-8 is
// skipped one byte at a time.
func lexNonASCII(l *Lexer) {
	start := l.cursor.Position()

	r, size := utf8.DecodeRuneInString(l.cursor.Rest())
	l.cursor.Advance(size)
	l.token.Kind = token.Empty

	if r == utf8.RuneError && size == 1 {
		l.report(ErrUnsupportedCharacter, start, fmt.Sprintf("invalid UTF-8 byte 0x%02X", l.cursor.source[start]))
		return
	}
	l.report(ErrUnsupportedCharacter, start, fmt.Sprintf("unsupported character %q (%U)", r, r))
}

// scanIdentifier consumes the byte under the cursor and the maximal run of
// identifier bytes after it.
func (l *Lexer) scanIdentifier() string {
	start := l.cursor.Position()
	l.cursor.Bump()

	for !l.cursor.AtEnd() && identBytes[l.cursor.Current()] {
		l.cursor.Bump()
	}

	return l.cursor.Slice(start, l.cursor.Position())
}
