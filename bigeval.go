package infix

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// EvaluateBig evaluates an infix expression using arbitrary-precision
// floating-point arithmetic at prec bits. The grammar and the
// left-associative operator rules match Evaluate exactly; only the numeric
// domain differs. Literals are reparsed from their source text, so values
// beyond float64 precision survive.
//
// big.Float has no NaN, so malformed literals are rejected even in lenient
// mode, and operations whose result would be NaN (0/0, inf/inf, a negative
// base raised to a power) fail with DomainError.
func EvaluateBig(expr string, prec uint, opts ...Option) (*big.Float, error) {
	c := makeconfig(opts)
	seq, err := shunt(sanitize(expr), c)
	if err != nil {
		return nil, err
	}
	return evalPostfixBig(seq, prec, c)
}

func evalPostfixBig(seq []Token, prec uint, c config) (*big.Float, error) {
	var stack []*big.Float
	for _, t := range seq {
		switch t.kind {
		case tokenNum:
			v, err := bignum(t, prec)
			if err != nil {
				return nil, err
			}
			stack = append(stack, v)
		case tokenOp:
			if len(stack) < 2 {
				return nil, &MalformedExpressionError{Col: t.pos, Msg: "operator " + strconv.QuoteRune(t.op) + " missing operands"}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			if err := applyBig(a, b, t.op, t.pos); err != nil {
				return nil, err
			}
		default:
			panic("infix: invalid token " + t.String())
		}
	}
	switch {
	case len(stack) == 1:
		return stack[0], nil
	case len(stack) == 0:
		return nil, &MalformedExpressionError{Msg: "empty expression"}
	case c.lenient:
		return stack[0], nil
	default:
		return nil, &MalformedExpressionError{Msg: strconv.Itoa(len(stack)) + " values left on stack"}
	}
}

// bignum converts a literal token to a big.Float at the given precision,
// preferring the source text over the rounded float64 value.
func bignum(t Token, prec uint) (*big.Float, error) {
	if t.text == "" {
		return new(big.Float).SetPrec(prec).SetFloat64(t.num), nil
	}
	v, _, err := new(big.Float).SetPrec(prec).Parse(t.text, 10)
	if err != nil {
		return nil, &MalformedExpressionError{Col: t.pos, Msg: "invalid number " + strconv.Quote(t.text)}
	}
	return v, nil
}

// applyBig computes a op b in place into a.
func applyBig(a, b *big.Float, op rune, pos int) error {
	switch op {
	case '+':
		a.Add(a, b)
	case '-':
		a.Sub(a, b)
	case '*':
		a.Mul(a, b)
	case '/':
		if b.Sign() == 0 {
			return &DivisionByZeroError{Col: pos}
		}
		if a.IsInf() && b.IsInf() {
			return &DomainError{X: b, Op: "/"}
		}
		a.Quo(a, b)
	case '^':
		// bigfloat.Pow panics on a negative base.
		if a.Signbit() {
			return &DomainError{X: a, Op: "^"}
		}
		bigfloat.Pow(a, a, b)
	default:
		return &InvalidOperatorError{Col: pos, Operator: string(op)}
	}
	return nil
}

// DomainError is an error returned when an arbitrary-precision operation is
// applied to operands outside its domain.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Op is the operator being applied.
	Op string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Op != "" {
		r += " of " + err.Op
	}
	return r
}
