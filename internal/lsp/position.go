package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// positionAt converts a byte offset into an LSP position. Character counts
// UTF-16 code units, as clients expect.
func positionAt(text string, offset int) protocol.Position {
	prefix := text[:min(max(offset, 0), len(text))]
	lineStart := strings.LastIndexByte(prefix, '\n') + 1

	return protocol.Position{
		Line:      protocol.UInteger(strings.Count(prefix, "\n")),
		Character: protocol.UInteger(utf16Len(prefix[lineStart:])),
	}
}

// utf16Len counts UTF-16 code units in s. Invalid UTF-8 bytes count as one
// unit each, like the U+FFFD an editor shows in their place.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
