package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	"stant/internal/arena"
	"stant/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies lexed tokens. Tokens never span lines, so
// a single forward walk over the text is enough to place them. Columns and
// lengths are in UTF-16 code units.
func collectSemanticTokens(text string, tokens *arena.Arena[token.Token]) []SemanticToken {
	result := make([]SemanticToken, 0, tokens.Len())

	var line, char, offset int
	for _, tok := range tokens.All() {
		tokenType, ok := semanticType(tok.Kind)
		if !ok {
			continue
		}

		// Token starts always fall on rune boundaries.
		for offset < tok.Span.Start {
			r, size := utf8.DecodeRuneInString(text[offset:])
			if r == '\n' {
				line++
				char = 0
			} else {
				char += utf16.RuneLen(r)
			}
			offset += size
		}

		result = append(result, SemanticToken{
			Line:      uint32(line),
			StartChar: uint32(char),
			Length:    uint32(utf16Len(tok.Text(text))),
			TokenType: indexOf(tokenType, SemanticTokenTypes),
		})
	}

	return result
}

func semanticType(kind token.Kind) (string, bool) {
	switch {
	case kind.IsKeyword():
		return "keyword", true
	case kind.IsOperator():
		return "operator", true
	case kind == token.Identifier:
		return "variable", true
	default:
		return "", false
	}
}

// encodeSemanticTokens encodes tokens into LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
