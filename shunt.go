package infix

import (
	"math"
	"strconv"
	"strings"
)

// Option configures conversion and evaluation.
type Option interface {
	option(config) config
}

type config struct {
	lenient bool
}

type lenientopt struct{}

func (lenientopt) option(c config) config {
	c.lenient = true
	return c
}

// Lenient reproduces the permissive behavior of the original calculator:
// unrecognized characters are dropped, unbalanced brackets are tolerated,
// malformed literals evaluate to NaN, and surplus values left on the
// evaluation stack are discarded in favor of the bottom one. The default is
// to reject all of these with MalformedExpressionError.
func Lenient() Option {
	return lenientopt{}
}

func makeconfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		c = opt.option(c)
	}
	return c
}

// ToPostfix converts an infix expression to its postfix token sequence using
// the shunting-yard algorithm. Whitespace is stripped first. Operators pop
// the stack while the stacked operator's precedence is greater than or equal
// to their own, which makes every operator left-associative, ^ included.
func ToPostfix(expr string, opts ...Option) ([]Token, error) {
	return shunt(sanitize(expr), makeconfig(opts))
}

// shunt runs the conversion over a whitespace-free string.
func shunt(src string, c config) ([]Token, error) {
	var (
		out   []Token
		stack []rune
		lit   strings.Builder
		start int
	)
	flush := func() error {
		if lit.Len() == 0 {
			return nil
		}
		text := lit.String()
		lit.Reset()
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			if !c.lenient {
				return &MalformedExpressionError{Col: start, Msg: "invalid number " + strconv.Quote(text)}
			}
			// The original scanner fed whatever it had accumulated straight
			// to the number parser and used the result as-is.
			v = math.NaN()
		}
		out = append(out, Token{kind: tokenNum, text: text, num: v, pos: start})
		return nil
	}
	pos := 0
	for _, r := range src {
		pos++
		switch {
		case isLiteralRune(r):
			if lit.Len() == 0 {
				start = pos
			}
			lit.WriteRune(r)
			continue
		case r == '(':
			if err := flush(); err != nil {
				return nil, err
			}
			stack = append(stack, '(')
		case r == ')':
			if err := flush(); err != nil {
				return nil, err
			}
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top == '(' {
					matched = true
					break
				}
				out = append(out, Token{kind: tokenOp, op: top, pos: pos})
			}
			if !matched && !c.lenient {
				return nil, &MalformedExpressionError{Col: pos, Msg: "close bracket with no open bracket"}
			}
		case isOperator(r):
			if err := flush(); err != nil {
				return nil, err
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top == '(' || precedence(top) < precedence(r) {
					break
				}
				stack = stack[:len(stack)-1]
				out = append(out, Token{kind: tokenOp, op: top, pos: pos})
			}
			stack = append(stack, r)
		default:
			if !c.lenient {
				return nil, &MalformedExpressionError{Col: pos, Msg: "unrecognized character " + strconv.QuoteRune(r)}
			}
			// Dropped silently, as the original did.
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == '(' && !c.lenient {
			return nil, &MalformedExpressionError{Col: pos, Msg: "open bracket with no close bracket"}
		}
		// In lenient mode the unmatched marker reaches the output and later
		// fails operator application, like the original.
		out = append(out, Token{kind: tokenOp, op: top, pos: pos})
	}
	return out, nil
}
