package calculator

// Parse evaluates an arithmetic expression at the start of `input`,
// which is trimmed of surrounding whitespace first.  On success it
// returns the value together with the unconsumed remainder of the
// input; a non-empty remainder means the expression ended before the
// input did, which callers should report as trailing input rather
// than a parse failure.  On failure the error is either a
// *ParseError with the diagnostic position, or an *EvalError when
// the expression matched but couldn't be evaluated.
func Parse(input string) (value float64, remainder string, err error) {
	value, cursor, err := Expr(NewCursor(input))
	if err != nil {
		return 0, "", err
	}
	return value, cursor.Remaining(), nil
}
