package infix

import "strconv"

// Token is a single element of a postfix sequence: either a numeric literal
// or a binary operator.
type Token struct {
	kind tokenKind
	// text is the literal as written in the source, kept so that
	// arbitrary-precision evaluation can reparse it without rounding through
	// float64. It is empty for tokens built with Num.
	text string
	num  float64
	op   rune
	// pos is the 1-based rune position of the token in the sanitized
	// source, or 0 when unknown.
	pos int
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is a binary operator. In lenient mode an unmatched open
	// bracket drained off the operator stack also appears with this kind.
	tokenOp
)

// Num creates a numeric literal token.
func Num(v float64) Token {
	return Token{kind: tokenNum, num: v}
}

// Op creates an operator token. r should be one of + - * / ^; anything else
// fails evaluation with InvalidOperatorError.
func Op(r rune) Token {
	return Token{kind: tokenOp, op: r}
}

// Number returns the token's numeric value. ok is false if the token is not
// a numeric literal.
func (t Token) Number() (v float64, ok bool) {
	return t.num, t.kind == tokenNum
}

// Operator returns the token's operator rune. ok is false if the token is
// not an operator.
func (t Token) Operator() (r rune, ok bool) {
	return t.op, t.kind == tokenOp
}

func (t Token) String() string {
	switch t.kind {
	case tokenNum:
		if t.text != "" {
			return t.text
		}
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenOp:
		return string(t.op)
	default:
		return "<none>"
	}
}
