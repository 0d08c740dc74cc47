package token

import (
	"slices"

	"golang.org/x/exp/maps"
)

// keywords maps the exact, case-sensitive spelling of every recognized keyword
// to its kind. Reserved kinds without an entry lex as identifiers. The table is
// fixed at compile time: lexer dispatch is derived from it once at init.
var keywords = map[string]Kind{
	"await": Await,
	"As":    As,
}

// Lookup classifies scanned identifier text.
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// Spellings returns every keyword spelling in sorted order. The slice is a
// fresh copy on each call.
func Spellings() []string {
	spellings := maps.Keys(keywords)
	slices.Sort(spellings)
	return spellings
}
