package grammar

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	scan "stant/internal/lexer"
	"stant/token"
)

// StantLexer adapts the hand-written lexer to participle. Token type names are
// the token.Kind names, so grammars refer to them directly (`@Identifier`).
var StantLexer = newDefinition()

type definition struct {
	symbols map[string]lexer.TokenType
}

var (
	_ lexer.Definition       = (*definition)(nil)
	_ lexer.StringDefinition = (*definition)(nil)
)

func newDefinition() *definition {
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for _, kind := range token.Kinds() {
		if kind == token.Empty {
			continue
		}
		symbols[kind.String()] = lexer.TokenType(kind)
	}
	return &definition{symbols: symbols}
}

func (d *definition) Symbols() map[string]lexer.TokenType { return d.symbols }

func (d *definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(data))
}

func (d *definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return &stream{
		lex:   scan.New(input, scan.WithFilename(filename)),
		where: tracker{filename: filename, source: input, line: 1, column: 1},
	}, nil
}

// stream feeds non-empty tokens to participle and turns the first scan error
// into a lexer error.
type stream struct {
	lex   *scan.Lexer
	where tracker
	seen  int
}

func (s *stream) Next() (lexer.Token, error) {
	for !s.lex.AtEnd() {
		tok := s.lex.Next()

		if errs := s.lex.Errors(); len(errs) > s.seen {
			se := errs[s.seen]
			s.seen++
			return lexer.Token{}, &lexer.Error{Msg: se.Message, Pos: s.where.at(se.Span.Start)}
		}

		if tok.Kind == token.Empty {
			continue
		}

		return lexer.Token{
			Type:  lexer.TokenType(tok.Kind),
			Value: s.lex.Text(tok.Span),
			Pos:   s.where.at(tok.Span.Start),
		}, nil
	}

	return lexer.EOFToken(s.where.at(s.lex.Position())), nil
}

// tracker converts increasing byte offsets to positions in one forward pass.
type tracker struct {
	filename string
	source   string
	offset   int
	line     int
	column   int
}

func (t *tracker) at(offset int) lexer.Position {
	for ; t.offset < offset && t.offset < len(t.source); t.offset++ {
		if t.source[t.offset] == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
	}

	return lexer.Position{Filename: t.filename, Offset: t.offset, Line: t.line, Column: t.column}
}
