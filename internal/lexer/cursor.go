package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"fitscript/internal/source"
)

// Cursor is a byte position in the input buffer.
type Cursor struct {
	Input []byte
	Off   uint32
}

// NewCursor creates a cursor at the start of input.
func NewCursor(input []byte) Cursor {
	if _, err := safecast.Conv[uint32](len(input)); err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Cursor{Input: input, Off: 0}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.Input)
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Input[c.Off]
}

// Peek2 reads the current and next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.Off)+1 >= len(c.Input) {
		return 0, 0, false
	}
	return c.Input[c.Off], c.Input[c.Off+1], true
}

// Bump advances the cursor one byte and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Input[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Input[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved cursor position used to produce spans.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span from a mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

// Reset rewinds the cursor to a mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
