package lexer

import (
	"errors"
	"fmt"

	"stant/token"
)

// Scan errors. None of them abort a session.
var (
	ErrUnrecognizedByte             = errors.New("unrecognized byte")
	ErrUnterminatedQuotedIdentifier = errors.New("unterminated quoted identifier")
	ErrEmptyQuotedIdentifier        = errors.New("empty quoted identifier")
	ErrUnsupportedCharacter         = errors.New("unsupported character")

	// ErrUnexpectedNUL is the unrecognized byte 0x00.
	ErrUnexpectedNUL = fmt.Errorf("%w: NUL", ErrUnrecognizedByte)
)

// ScanError describes a problem found while producing a single token.
type ScanError struct {
	Err     error
	Message string
	Span    token.Span
	Byte    byte // first offending byte
}

func (e ScanError) Error() string { return e.Message }

func (e ScanError) Unwrap() error { return e.Err }
