package infix

import (
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// isOperator reports whether r is one of the supported binary operators.
func isOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// precedence returns the binding strength of an operator rune. Unknown
// runes, in particular the open bracket marker on the operator stack, rank 0
// so that they never win a precedence comparison.
func precedence(r rune) int {
	switch r {
	case '^':
		return 3
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// isLiteralRune reports whether r may appear inside a numeric literal.
func isLiteralRune(r rune) bool {
	return r == '.' || '0' <= r && r <= '9'
}

// sanitize removes all whitespace from s. Positions reported in errors count
// runes of the sanitized string.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
