package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Input     string
		Value     float64
		Remainder string
	}{
		{
			Name:  "integer literal",
			Input: "42",
			Value: 42,
		},
		{
			Name:  "float literal",
			Input: "3.14",
			Value: 3.14,
		},
		{
			Name:  "surrounding whitespace trimmed",
			Input: "  7  ",
			Value: 7,
		},
		{
			Name:  "addition without spaces",
			Input: "1+2",
			Value: 3,
		},
		{
			Name:  "addition with spaces",
			Input: "1 + 2",
			Value: 3,
		},
		{
			Name:  "newline between tokens",
			Input: "1 +\n2",
			Value: 3,
		},
		{
			Name:  "subtraction chains to the right",
			Input: "10-3-2",
			Value: 9,
		},
		{
			Name:  "division chains to the right",
			Input: "12/3/2",
			Value: 8,
		},
		{
			Name:  "parentheses override associativity",
			Input: "(10-3)-2",
			Value: 5,
		},
		{
			Name:  "multiplication binds tighter",
			Input: "2+3*4",
			Value: 14,
		},
		{
			Name:  "parentheses override precedence",
			Input: "(2+3)*4",
			Value: 20,
		},
		{
			Name:  "nested parentheses",
			Input: "((1+2)*(3+4))",
			Value: 21,
		},
		{
			Name:  "zero dividend",
			Input: "0/5",
			Value: 0,
		},
		{
			Name:      "trailing garbage is a remainder, not a failure",
			Input:     "1+2)",
			Value:     3,
			Remainder: ")",
		},
		{
			Name:      "operator without right operand",
			Input:     "1+2+",
			Value:     3,
			Remainder: "+",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			value, remainder, err := Parse(test.Input)
			require.NoError(t, err)
			assert.Equal(t, test.Value, value)
			assert.Equal(t, test.Remainder, remainder)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	for _, test := range []struct {
		Name  string
		Input string
	}{
		{Name: "empty input", Input: ""},
		{Name: "unmatched open parenthesis", Input: "(1+2"},
		{Name: "empty parentheses", Input: "()"},
		{Name: "not an expression", Input: "hello"},
		{Name: "bare operator", Input: "+"},
		{Name: "two dots in a number", Input: "1.2.3"},
	} {
		t.Run(test.Name, func(t *testing.T) {
			_, _, err := Parse(test.Input)
			require.Error(t, err)
			assert.IsType(t, &ParseError{}, err)
		})
	}
}

func TestParse_UnmatchedParenDiagnostic(t *testing.T) {
	_, _, err := Parse("(1+2")
	require.Error(t, err)

	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, "unexpected end of input", perr.Message)
	assert.Equal(t, "1:5: (1+2", perr.Location())
}

func TestParse_DivisionByZero(t *testing.T) {
	for _, test := range []struct {
		Name  string
		Input string
	}{
		{Name: "literal zero divisor", Input: "1/0"},
		{Name: "computed zero divisor", Input: "5/(2-2)"},
	} {
		t.Run(test.Name, func(t *testing.T) {
			_, _, err := Parse(test.Input)
			require.Error(t, err)

			// the input is syntactically fine; this is an
			// evaluation failure, not a parse failure
			assert.IsType(t, &EvalError{}, err)
			assert.Contains(t, err.Error(), "division by zero")
		})
	}
}

func TestParse_NoSignedLiterals(t *testing.T) {
	// a leading minus only ever comes from the subtraction
	// operator, so a negative literal doesn't parse
	_, _, err := Parse("-1")
	require.Error(t, err)
	assert.IsType(t, &ParseError{}, err)
}

func TestParse_Idempotence(t *testing.T) {
	const input = "(2+3)*4"
	v1, r1, err1 := Parse(input)
	v2, r2, err2 := Parse(input)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, r1, r2)
}
