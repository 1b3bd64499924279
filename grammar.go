package calculator

import "strconv"

// The arithmetic grammar, a recursive descent over the lexical
// layer.  Evaluation is immediate: every rule yields a float64
// straight away, there is no separate tree-then-eval phase.
//
// Both operator tiers recurse on their own rule for the right
// operand, so `+ - * /` all chain to the right: 10-3-2 parses as
// 10-(3-2) = 9 and 12/3/2 as 12/(3/2) = 8.  Parenthesize to group
// differently.

// binOp applies an operator to its evaluated operands.  Division by
// zero surfaces as an EvalError, which the backtrack system lets
// through untouched.
type binOp func(a, b float64) (float64, error)

// opSymbol matches the operator lexeme s and yields its function
func opSymbol(s string, fn binOp) Parser[binOp] {
	return Bind(Symbol(s), func(string) Parser[binOp] {
		return Succeed(fn)
	})
}

// GR: AddOp <- '+' / '-'
var addOp = Choice(
	opSymbol("+", func(a, b float64) (float64, error) { return a + b, nil }),
	opSymbol("-", func(a, b float64) (float64, error) { return a - b, nil }),
)

// GR: MulOp <- '*' / '/'
var mulOp = Choice(
	opSymbol("*", func(a, b float64) (float64, error) { return a * b, nil }),
	opSymbol("/", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &EvalError{Message: "division by zero"}
		}
		return a / b, nil
	}),
)

// operator sequences left operand, operator symbol and right operand,
// then applies the operator to the two values
func operator(op Parser[binOp], left, right Parser[float64]) Parser[float64] {
	return Bind(left, func(a float64) Parser[float64] {
		return Bind(op, func(apply binOp) Parser[float64] {
			return Bind(right, func(b float64) Parser[float64] {
				return func(c Cursor) (float64, Cursor, error) {
					v, err := apply(a, b)
					if err != nil {
						return 0, c, err
					}
					return v, c, nil
				}
			})
		})
	})
}

// GR: Expr <- Term AddOp Expr / Term
//
// Expr is the grammar's start rule.  The rules below are plain
// functions rather than package-level Parser values so the mutual
// recursion needs no deferred binding.
func Expr(c Cursor) (float64, Cursor, error) {
	return Choice(operator(addOp, term, Expr), term)(c)
}

// GR: Term <- Factor MulOp Term / Factor
func term(c Cursor) (float64, Cursor, error) {
	return Choice(operator(mulOp, factor, term), factor)(c)
}

// GR: Factor <- Number / '(' Expr ')'
func factor(c Cursor) (float64, Cursor, error) {
	return Choice(number, parenthesized)(c)
}

// GR: Number <- Token([0-9.]+)
//
// No sign handling: a leading `-` only ever comes from the
// subtraction operator.  A run that matches the charset but isn't a
// valid float, like `1.2.3`, fails at the literal's start.
func number(c Cursor) (float64, Cursor, error) {
	digits, next, err := Token(OneOrMore(Satisfy(isDigitOrDot)))(c)
	if err != nil {
		return 0, c, err
	}
	v, err := strconv.ParseFloat(string(digits), 64)
	if err != nil {
		return 0, c, c.failf("malformed number `%s`", string(digits))
	}
	return v, next, nil
}

func isDigitOrDot(r rune) bool {
	return r == '.' || (r >= '0' && r <= '9')
}

func parenthesized(c Cursor) (float64, Cursor, error) {
	return Bind(Symbol("("), func(string) Parser[float64] {
		return Bind(Parser[float64](Expr), func(n float64) Parser[float64] {
			return Bind(Symbol(")"), func(string) Parser[float64] {
				return Succeed(n)
			})
		})
	})(c)
}
