// Package token SPDX-License-Identifier: Apache-2.0
package token

import "strconv"

// Kind classifies a lexed token. The zero value is Empty.
type Kind uint8

const (
	// Empty means no token was produced (whitespace, skipped bytes).
	Empty Kind = iota
	// Invalid marks a malformed token such as an unterminated quoted identifier.
	Invalid

	operatorBeg
	Plus   // +
	PlusEq // +=
	operatorEnd

	Identifier

	keywordBeg
	// Declarations
	AssociatedType
	Class
	Deinit
	Enum
	Extension
	FilePrivate
	Func
	Import
	Init
	Inout
	Internal
	Let
	Open
	Operator
	Private
	PrecedenceGroup
	Protocol
	Public
	Rethrows
	Static
	Subscript
	TypeAlias
	Var

	// Statements
	Break
	Case
	Catch
	Continue
	Default
	Defer
	Do
	Else
	FallThrough
	For
	Guard
	If
	In
	Repeat
	Return
	Throw
	Throws
	True
	Try

	// Expressions and types
	Any
	As
	Await
	False
	Is
	Nil
	LSelf // self
	USelf // Self
	Super

	// Patterns
	Underscore

	// Directives
	HashAvailable
	HashColorLiteral
	HashElse
	HashElseIf
	HashEndIf
	HashFileLiteral
	HashIf
	HashImageLiteral
	HashKeyPath
	HashSelector
	HashSourceLocation
	HashUnavailable
	keywordEnd
)

var kindNames = [...]string{
	Empty:      "Empty",
	Invalid:    "Invalid",
	Plus:       "Plus",
	PlusEq:     "PlusEq",
	Identifier: "Identifier",

	AssociatedType:  "AssociatedType",
	Class:           "Class",
	Deinit:          "Deinit",
	Enum:            "Enum",
	Extension:       "Extension",
	FilePrivate:     "FilePrivate",
	Func:            "Func",
	Import:          "Import",
	Init:            "Init",
	Inout:           "Inout",
	Internal:        "Internal",
	Let:             "Let",
	Open:            "Open",
	Operator:        "Operator",
	Private:         "Private",
	PrecedenceGroup: "PrecedenceGroup",
	Protocol:        "Protocol",
	Public:          "Public",
	Rethrows:        "Rethrows",
	Static:          "Static",
	Subscript:       "Subscript",
	TypeAlias:       "TypeAlias",
	Var:             "Var",

	Break:       "Break",
	Case:        "Case",
	Catch:       "Catch",
	Continue:    "Continue",
	Default:     "Default",
	Defer:       "Defer",
	Do:          "Do",
	Else:        "Else",
	FallThrough: "FallThrough",
	For:         "For",
	Guard:       "Guard",
	If:          "If",
	In:          "In",
	Repeat:      "Repeat",
	Return:      "Return",
	Throw:       "Throw",
	Throws:      "Throws",
	True:        "True",
	Try:         "Try",

	Any:   "Any",
	As:    "As",
	Await: "Await",
	False: "False",
	Is:    "Is",
	Nil:   "Nil",
	LSelf: "LSelf",
	USelf: "USelf",
	Super: "Super",

	Underscore: "Underscore",

	HashAvailable:      "HashAvailable",
	HashColorLiteral:   "HashColorLiteral",
	HashElse:           "HashElse",
	HashElseIf:         "HashElseIf",
	HashEndIf:          "HashEndIf",
	HashFileLiteral:    "HashFileLiteral",
	HashIf:             "HashIf",
	HashImageLiteral:   "HashImageLiteral",
	HashKeyPath:        "HashKeyPath",
	HashSelector:       "HashSelector",
	HashSourceLocation: "HashSourceLocation",
	HashUnavailable:    "HashUnavailable",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsOperator reports whether k is an operator kind.
func (k Kind) IsOperator() bool { return operatorBeg < k && k < operatorEnd }

// IsKeyword reports whether k is one of the reserved keyword kinds, wired or not.
func (k Kind) IsKeyword() bool { return keywordBeg < k && k < keywordEnd }

// Kinds returns every named kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for i, name := range kindNames {
		if name != "" {
			kinds = append(kinds, Kind(i))
		}
	}
	return kinds
}

// Span is a half-open byte range [Start, End) into the source buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Token is a classified span. It does not own any source bytes.
type Token struct {
	Kind Kind
	Span Span
}

// Text recovers the token's text from the buffer it was lexed from.
func (t Token) Text(source string) string {
	if t.Span.Start < 0 || t.Span.End > len(source) || t.Span.Start > t.Span.End {
		return ""
	}
	return source[t.Span.Start:t.Span.End]
}
