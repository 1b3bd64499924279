package calculator

// Parser is the signature of a parsing function.  It takes a Cursor
// and either succeeds with a value and the Cursor past the consumed
// input, or fails with an error anchored at the failure point.  By
// being generic on its return, parsers with different result types
// compose through the same small set of combinators; every grammar
// rule is just a composed Parser.
//
// On failure a Parser returns the Cursor it was given, so the caller
// still holds the pristine position for the next alternative.
type Parser[T any] func(c Cursor) (T, Cursor, error)

// Succeed returns a Parser that always succeeds with v, consuming no
// input
func Succeed[T any](v T) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		return v, c, nil
	}
}

// Fail returns a Parser that always fails with a backtrackable error
// at the current position
func Fail[T any](msg string) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		return zero, c, c.failf("%s", msg)
	}
}

// Any matches any rune under the cursor, and will error out at the
// end of the input
func Any(c Cursor) (rune, Cursor, error) {
	r, err := c.Require()
	if err != nil {
		return 0, c, err
	}
	return r, c.Advance(), nil
}

// Satisfy matches a single rune for which pred holds
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(c Cursor) (rune, Cursor, error) {
		r, err := c.Require()
		if err != nil {
			return 0, c, err
		}
		if !pred(r) {
			return 0, c, c.failf("unexpected character `%c`", r)
		}
		return r, c.Advance(), nil
	}
}

// ExpectRune matches exactly the rune v
func ExpectRune(v rune) Parser[rune] {
	return func(c Cursor) (rune, Cursor, error) {
		r, err := c.Require()
		if err != nil {
			return 0, c, err
		}
		if r != v {
			return 0, c, c.failf("expected `%c` but got `%c`", v, r)
		}
		return r, c.Advance(), nil
	}
}

// ExpectLiteral matches the literal rune by rune.  It fails on the
// first mismatch, with the error anchored at the mismatch point; the
// surrounding Choice restarts the next alternative from the original
// cursor, so no rollback happens here.
func ExpectLiteral(literal string) Parser[string] {
	return func(c Cursor) (string, Cursor, error) {
		cur := c
		for _, v := range literal {
			_, next, err := ExpectRune(v)(cur)
			if err != nil {
				return "", c, err
			}
			cur = next
		}
		return literal, cur, nil
	}
}

// Bind sequences two parsers: it runs p, feeds the value into f to
// obtain the continuation parser, and runs that on the remaining
// input.  On failure the continuation is never invoked and the error
// propagates untouched.  Every multi-step grammar rule in this
// package is a chain of Binds.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(c Cursor) (U, Cursor, error) {
		v, next, err := p(c)
		if err != nil {
			var zero U
			return zero, c, err
		}
		return f(v)(next)
	}
}

// Choice walks through the options and returns the first to succeed.
// Every alternative starts from the original cursor, and a failed
// alternative commits nothing, so ordered backtracking is safe.  If
// all alternatives fail, only the last failure is surfaced — earlier
// ones are discarded.  Errors that aren't backtrackable, like an
// EvalError, abort the choice right away.
func Choice[T any](options ...Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var (
			zero T
			err  error
		)
		for _, p := range options {
			var (
				v    T
				next Cursor
			)
			v, next, err = p(c)
			if err == nil {
				return v, next, nil
			}
			if !isBacktracking(err) {
				return zero, c, err
			}
		}
		if err == nil {
			err = c.failf("no alternatives")
		}
		return zero, c, err
	}
}

// ZeroOrMore matches p repeatedly until it fails, collecting the
// results.  It never fails with a parse error itself — zero matches
// succeed with an empty slice — but an EvalError from p still aborts
// it.  If p can succeed without consuming input this loops forever;
// none of the parsers in this package do that.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, error) {
		var output []T
		for {
			v, next, err := p(c)
			if err != nil {
				if !isBacktracking(err) {
					return nil, c, err
				}
				return output, c, nil
			}
			output = append(output, v)
			c = next
		}
	}
}

// OneOrMore matches p once and then hands over to ZeroOrMore.  It
// fails iff the first match fails.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(head T) Parser[[]T] {
		return Bind(ZeroOrMore(p), func(tail []T) Parser[[]T] {
			return Succeed(append([]T{head}, tail...))
		})
	})
}
