// Package infix evaluates arithmetic expressions written in ordinary infix
// notation, with the binary operators + - * / ^, parentheses, and decimal
// literals.
//
// Input is converted to postfix (reverse Polish) form with the shunting-yard
// algorithm and then reduced with a value stack. All operators are
// left-associative, including exponentiation: "2^3^2" is (2^3)^2 = 64, not
// 2^(3^2) = 512. This matches the calculator this package descends from and
// deviates from the usual mathematical convention; callers who need
// right-associative powers must parenthesize.
//
// By default malformed input, such as unbalanced brackets, stray characters,
// or missing operands, is rejected with a MalformedExpressionError. The
// Lenient option restores the original calculator's permissive behavior,
// which silently drops what it does not understand.
package infix
