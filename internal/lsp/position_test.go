package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, utf16Len(""))
	assert.Equal(t, 3, utf16Len("abc"))
	assert.Equal(t, 1, utf16Len("é"))
	assert.Equal(t, 2, utf16Len("𝄞"))
	assert.Equal(t, 1, utf16Len("\xff"))
}

func TestPositionAt(t *testing.T) {
	text := "é x\n𝄞 await"

	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, positionAt(text, 0))
	assert.Equal(t, protocol.Position{Line: 0, Character: 2}, positionAt(text, 3))
	assert.Equal(t, protocol.Position{Line: 1, Character: 0}, positionAt(text, 5))
	assert.Equal(t, protocol.Position{Line: 1, Character: 3}, positionAt(text, 10))
	assert.Equal(t, protocol.Position{Line: 1, Character: 8}, positionAt(text, len(text)))
	assert.Equal(t, protocol.Position{Line: 1, Character: 8}, positionAt(text, 99), "offset is clamped")

	// Round trip through glsp's UTF-16 to byte conversion.
	for _, offset := range []int{0, 2, 3, 4, 5, 9, 10, len(text)} {
		assert.Equal(t, offset, positionAt(text, offset).IndexIn(text), "offset %d", offset)
	}
}
