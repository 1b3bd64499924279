package calculator

import "fmt"

// ParseError is the error produced when the input doesn't match the
// expected shape at the current position.  It is handled and
// discarded when an ordered choice moves on to its next alternative.
type ParseError struct {
	Message string
	Cursor  Cursor
}

// Error returns the human readable representation of a parse error
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Location())
}

// Location returns the diagnostic position of the failure, formatted
// as `line:column: line_text`
func (e *ParseError) Location() string {
	line, column, text := e.Cursor.Locate()
	return fmt.Sprintf("%d:%d: %s", line, column, text)
}

// EvalError is raised while evaluating an already matched expression,
// e.g. on division by zero.  It can't be caught by the backtrack
// system and errors right away.
type EvalError struct {
	Message string
}

// Error returns the human readable representation of an evaluation error
func (e *EvalError) Error() string {
	return e.Message
}

// isBacktracking reports whether an error may be discarded by Choice
// in favor of the next alternative
func isBacktracking(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}
