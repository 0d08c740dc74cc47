package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"stant/internal/lexer"
)

// Locate converts a byte offset into a 1-based line and column.
// Columns count bytes.
func Locate(source string, offset int) Position {
	offset = min(max(offset, 0), len(source))

	line := 1 + strings.Count(source[:offset], "\n")
	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1

	return Position{Line: line, Column: offset - lineStart + 1, Offset: offset}
}

// FromScanError converts a lexer diagnostic into a compiler error.
func FromScanError(source string, se lexer.ScanError) CompilerError {
	pos := Locate(source, se.Span.Start)
	length := max(se.Span.Len(), 1)

	switch {
	case stderrors.Is(se, lexer.ErrUnrecognizedByte):
		return NewError(ErrorUnrecognizedByte, se.Message, pos).
			WithLength(length).
			WithNote("the byte was skipped and lexing continued").
			Build()

	case stderrors.Is(se, lexer.ErrUnterminatedQuotedIdentifier):
		name := strings.TrimPrefix(source[se.Span.Start:se.Span.End], "`")
		return NewError(ErrorUnterminatedQuotedIdentifier, se.Message, pos).
			WithLength(length).
			WithReplacement("add the closing backtick", fmt.Sprintf("`%s`", name), pos, length).
			Build()

	case stderrors.Is(se, lexer.ErrEmptyQuotedIdentifier):
		return NewError(ErrorEmptyQuotedIdentifier, se.Message, pos).
			WithLength(length).
			WithHelp("write a name between the backticks, e.g. `await`").
			Build()

	case stderrors.Is(se, lexer.ErrUnsupportedCharacter):
		return NewError(ErrorUnsupportedCharacter, se.Message, pos).
			WithLength(length).
			WithNote("identifiers are limited to ASCII letters, digits, `_` and `$`").
			Build()

	default:
		return NewError(ErrorUnrecognizedByte, se.Error(), pos).WithLength(length).Build()
	}
}
