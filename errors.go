package infix

import "strconv"

// DivisionByZeroError is an error indicating a division whose right operand
// is exactly zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the operator, or 0 when unknown.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// InvalidOperatorError is an error indicating that a token outside the fixed
// operator set reached operator application. With the default strict mode
// this is unreachable from Evaluate; in lenient mode an unmatched open
// bracket drained into the output triggers it. It implements InputError.
type InvalidOperatorError struct {
	// Col is the position of the operator, or 0 when unknown.
	Col int
	// Operator is the token that could not be applied.
	Operator string
}

func (err *InvalidOperatorError) Error() string {
	return errpos(err.Col, "invalid operator "+strconv.Quote(err.Operator))
}

func (err *InvalidOperatorError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating structurally invalid
// input: unbalanced brackets, unrecognized characters, malformed literals,
// missing operands, or surplus values left after evaluation. It implements
// InputError.
type MalformedExpressionError struct {
	// Col is the position of the offending token, or 0 when the defect has
	// no single position, e.g. an empty expression.
	Col int
	// Msg describes the defect.
	Msg string
}

func (err *MalformedExpressionError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes of the
	// whitespace-free input up to and including the token that caused the
	// error, or 0 when no single position applies.
	Pos() int
}

var (
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*InvalidOperatorError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
)
