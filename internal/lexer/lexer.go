// Package lexer turns source text into tokens with one table dispatch per
// token start byte.
package lexer

import (
	"fmt"
	"iter"

	"github.com/davecgh/go-spew/spew"
	"github.com/tliron/commonlog"

	"stant/internal/arena"
	"stant/token"
)

const defaultFilename = "<input>"

// Lexer is a single, pull-based lexing session over a borrowed buffer.
// It must not be used from more than one goroutine at a time; independent
// sessions may share the same buffer.
type Lexer struct {
	cursor Cursor
	// token is the in-progress token; handlers only set its kind.
	token token.Token

	filename string
	errors   []ScanError

	logger commonlog.Logger
	debug  bool
	arena  *arena.Arena[token.Token]
}

// New creates a lexing session over source.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		cursor:   NewCursor(source),
		filename: defaultFilename,
		logger:   commonlog.GetLogger("stant.lexer"),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Next lexes one token. Whitespace and skipped bytes come back as token.Empty
// and should be ignored by the caller. Once AtEnd reports true, Next keeps
// returning an empty token at the end of the buffer.
func (l *Lexer) Next() token.Token {
	if l.cursor.AtEnd() {
		end := l.cursor.Position()
		return token.Token{Span: token.Span{Start: end, End: end}}
	}

	b := l.cursor.Current()
	l.token.Span.Start = l.cursor.Position()

	if h := handlers[b]; h != nil {
		h(l)
	} else {
		l.cursor.Bump()
		l.report(ErrUnrecognizedByte, l.token.Span.Start, fmt.Sprintf("unexpected byte %q [%d]", b, b))
	}

	l.token.Span.End = l.cursor.Position()

	tok := l.token
	l.token = token.Token{}

	if l.debug {
		l.logger.Debugf("%s: %s %q\n%s", l.filename, tok.Kind, l.Text(tok.Span), spew.Sdump(tok))
	}

	return tok
}

// AtEnd reports whether the buffer is exhausted.
func (l *Lexer) AtEnd() bool { return l.cursor.AtEnd() }

// Position returns the byte offset of the next unread byte.
func (l *Lexer) Position() int { return l.cursor.Position() }

// Text returns the source text covered by span without copying.
func (l *Lexer) Text(span token.Span) string { return l.cursor.Slice(span.Start, span.End) }

// Source returns the buffer being lexed.
func (l *Lexer) Source() string { return l.cursor.source }

// Filename returns the name used in diagnostics.
func (l *Lexer) Filename() string { return l.filename }

// Errors returns the diagnostics collected so far, in source order.
func (l *Lexer) Errors() []ScanError { return l.errors }

// Arena returns the arena attached with WithArena, if any.
func (l *Lexer) Arena() *arena.Arena[token.Token] { return l.arena }

// Tokens yields the remaining non-empty tokens.
func (l *Lexer) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for !l.cursor.AtEnd() {
			tok := l.Next()
			if tok.Kind == token.Empty {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Drain lexes the rest of the buffer into the session's arena and returns it.
// A new arena is created when none was attached.
func (l *Lexer) Drain() *arena.Arena[token.Token] {
	if l.arena == nil {
		l.arena = arena.New[token.Token](0)
	}
	for tok := range l.Tokens() {
		l.arena.Alloc(tok)
	}
	return l.arena
}

// Tokenize lexes the whole of source and returns its non-empty tokens along
// with any diagnostics.
func Tokenize(source string, opts ...Option) ([]token.Token, []ScanError) {
	l := New(source, opts...)

	var tokens []token.Token
	for tok := range l.Tokens() {
		tokens = append(tokens, tok)
	}

	return tokens, l.Errors()
}

func (l *Lexer) report(err error, start int, message string) {
	se := ScanError{
		Err:     err,
		Message: message,
		Span:    token.Span{Start: start, End: l.cursor.Position()},
		Byte:    l.cursor.source[start],
	}
	l.errors = append(l.errors, se)

	l.logger.Warningf("%s:%d: %s", l.filename, start, message)
}
