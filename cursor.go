package calculator

import (
	"fmt"
	"strings"
)

const eof = -1

// Cursor is an immutable position within an input string.  Advancing
// never mutates the receiver, it derives a new Cursor one rune
// further into the same input.  That makes backtracking trivial:
// whoever kept the old Cursor value still holds the pristine
// position, so an alternative that failed leaves nothing to undo.
type Cursor struct {
	input []rune
	pos   int
}

// NewCursor builds the starting Cursor for an input string.  The
// input is stripped of leading and trailing whitespace, so the
// tokenizer only ever has to deal with trailing space.
func NewCursor(input string) Cursor {
	return Cursor{input: []rune(strings.TrimSpace(input))}
}

// Peek returns the rune under the cursor, or eof if the entire input
// has been consumed
func (c Cursor) Peek() rune {
	if c.pos >= len(c.input) {
		return eof
	}
	return c.input[c.pos]
}

// Require returns the rune under the cursor, erroring out at the end
// of the input
func (c Cursor) Require() (rune, error) {
	r := c.Peek()
	if r == eof {
		return 0, c.failf("unexpected end of input")
	}
	return r, nil
}

// Advance derives a Cursor one rune further into the input.  Callers
// are expected to have checked Peek or Require first; advancing past
// the end just saturates at the input length.
func (c Cursor) Advance() Cursor {
	if c.pos >= len(c.input) {
		return c
	}
	return Cursor{input: c.input, pos: c.pos + 1}
}

// Remaining returns the unconsumed suffix of the input.  The caller
// of a top-level parse checks it to detect trailing garbage after a
// successful match.
func (c Cursor) Remaining() string {
	return string(c.input[c.pos:])
}

// Locate scans the input from the start counting newlines and
// reports the 1-based line and column of the cursor, plus the text
// of that line.  Used for diagnostics only.
func (c Cursor) Locate() (line, column int, lineText string) {
	line = 1
	lineStart := 0
	for i := 0; i < c.pos; i++ {
		if c.input[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(c.input) && c.input[lineEnd] != '\n' {
		lineEnd++
	}
	return line, c.pos - lineStart + 1, string(c.input[lineStart:lineEnd])
}

// failf creates a backtrackable error anchored at this cursor
func (c Cursor) failf(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Cursor: c}
}
