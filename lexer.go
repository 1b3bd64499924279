package calculator

var spacingRunes = map[rune]struct{}{
	' ':  {},
	'\t': {},
	'\r': {},
	'\n': {},
}

func isSpacing(r rune) bool {
	_, ok := spacingRunes[r]
	return ok
}

// Space matches zero or more whitespace runes.  It always succeeds,
// possibly consuming nothing.
var Space = ZeroOrMore(Satisfy(isSpacing))

// Token runs p and then consumes any trailing whitespace, yielding
// p's value.  Leading whitespace is never an issue: the initial
// cursor comes from trimmed input and every preceding token already
// ate the space behind it.
func Token[T any](p Parser[T]) Parser[T] {
	return Bind(p, func(v T) Parser[T] {
		return Bind(Space, func([]rune) Parser[T] {
			return Succeed(v)
		})
	})
}

// Symbol matches a punctuation or operator lexeme
func Symbol(s string) Parser[string] {
	return Token(ExpectLiteral(s))
}
