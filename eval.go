package infix

import (
	"math"
	"strconv"
)

// Evaluate evaluates an infix arithmetic expression and returns its value.
// It strips all whitespace, converts the expression to postfix form, and
// reduces the result. Every call uses fresh state, so Evaluate is safe for
// concurrent use and evaluating the same string twice yields the same value.
//
// Division by a zero right operand fails with DivisionByZeroError.
// Structurally invalid input fails with MalformedExpressionError unless the
// Lenient option is given. Non-finite results are not an error; "0^-1"
// evaluates to +Inf.
func Evaluate(expr string, opts ...Option) (float64, error) {
	c := makeconfig(opts)
	seq, err := shunt(sanitize(expr), c)
	if err != nil {
		return 0, err
	}
	return evalPostfix(seq, c)
}

// EvalPostfix evaluates a postfix token sequence, such as one produced by
// ToPostfix.
func EvalPostfix(seq []Token, opts ...Option) (float64, error) {
	return evalPostfix(seq, makeconfig(opts))
}

func evalPostfix(seq []Token, c config) (float64, error) {
	var stack []float64
	for _, t := range seq {
		switch t.kind {
		case tokenNum:
			stack = append(stack, t.num)
		case tokenOp:
			if len(stack) < 2 {
				return 0, &MalformedExpressionError{Col: t.pos, Msg: "operator " + strconv.QuoteRune(t.op) + " missing operands"}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := apply(a, b, t.op, t.pos)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		default:
			panic("infix: invalid token " + t.String())
		}
	}
	switch {
	case len(stack) == 1:
		return stack[0], nil
	case len(stack) == 0:
		return 0, &MalformedExpressionError{Msg: "empty expression"}
	case c.lenient:
		// The original calculator returned the bottom of the stack and
		// discarded the rest.
		return stack[0], nil
	default:
		return 0, &MalformedExpressionError{Msg: strconv.Itoa(len(stack)) + " values left on stack"}
	}
}

// apply computes a single binary operation with a as the left operand and b
// as the right.
func apply(a, b float64, op rune, pos int) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, &DivisionByZeroError{Col: pos}
		}
		return a / b, nil
	case '^':
		return math.Pow(a, b), nil
	default:
		return 0, &InvalidOperatorError{Col: pos, Operator: string(op)}
	}
}
