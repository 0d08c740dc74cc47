package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	c := NewCursor("+=")

	assert.Equal(t, byte('+'), c.Current())
	next, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, byte('='), next)

	c.Bump()
	assert.Equal(t, 1, c.Position())
	_, ok = c.Peek()
	assert.False(t, ok, "peek past the last byte")

	c.Advance(10)
	assert.True(t, c.AtEnd())
	assert.Equal(t, 2, c.Position(), "advance is clamped to the buffer")
	assert.Equal(t, byte(0), c.Current(), "reads at end return the NUL sentinel")
	assert.Equal(t, "", c.Rest())

	c.Advance(-1)
	assert.Equal(t, 2, c.Position(), "cursor never moves backward")
}

func TestCursorSlice(t *testing.T) {
	c := NewCursor("hello swift")

	assert.Equal(t, "swift", c.Slice(6, 11))
	assert.Equal(t, "hello swift", c.Slice(-3, 99))
	assert.Equal(t, "", c.Slice(5, 2))
	assert.Equal(t, "", c.Slice(3, 3))
}

func TestEmptyCursor(t *testing.T) {
	c := NewCursor("")

	assert.True(t, c.AtEnd())
	assert.Equal(t, byte(0), c.Current())
	_, ok := c.Peek()
	assert.False(t, ok)
}
