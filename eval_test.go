package infix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/evermoor/infix"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "5", 5},
		{"decimal", "3.5+1.5", 5},
		{"add", "2 + 2", 4},
		{"tight", "2+2", 4},
		{"padded", " 2 + 2 ", 4},
		{"prec", "2 + 2 * 2", 6},
		{"brackets", "(2 + 2) * 2", 8},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		// Exponentiation is left-associative: (2^3)^2, not 2^(3^2).
		{"pow", "2 ^ 3 ^ 2", 64},
		{"pow-prec", "2*3^2", 18},
		{"mixed", "1+2*3-4/2", 5},
		{"nested", "((1+2)*(3+4))", 21},
		{"overflow", "10^1000", math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := infix.Evaluate(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"div-zero", "10 / 0", &infix.DivisionByZeroError{}},
		{"div-zero-deep", "1+2/(3-3)", &infix.DivisionByZeroError{}},
		{"empty", "", &infix.MalformedExpressionError{}},
		{"blank", "   ", &infix.MalformedExpressionError{}},
		{"open", "(2+2", &infix.MalformedExpressionError{}},
		{"close", "2+2)", &infix.MalformedExpressionError{}},
		{"stray", "2+x", &infix.MalformedExpressionError{}},
		{"dangling-op", "2+", &infix.MalformedExpressionError{}},
		{"leading-op", "+2", &infix.MalformedExpressionError{}},
		{"bad-number", "1.2.3", &infix.MalformedExpressionError{}},
		{"surplus", "(2)(3)", &infix.MalformedExpressionError{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := infix.Evaluate(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %g", c.src, r)
			}
			switch c.err.(type) {
			case *infix.DivisionByZeroError:
				if _, ok := err.(*infix.DivisionByZeroError); !ok {
					t.Errorf("error was %#v, not DivisionByZeroError", err)
				}
			case *infix.MalformedExpressionError:
				if _, ok := err.(*infix.MalformedExpressionError); !ok {
					t.Errorf("error was %#v, not MalformedExpressionError", err)
				}
			}
			if _, ok := err.(infix.InputError); !ok {
				t.Errorf("error %#v does not implement InputError", err)
			}
		})
	}
}

func TestEvaluateLenient(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		// Stray characters are dropped.
		{"stray", "2+$2", 4},
		// An unmatched close bracket is tolerated.
		{"close", "2+2)", 4},
		// Surplus values are discarded; the bottom of the stack wins.
		{"surplus", "(2)(3)", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := infix.Evaluate(c.src, infix.Lenient())
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
	t.Run("bad-number", func(t *testing.T) {
		r, err := infix.Evaluate("1.2.3+1", infix.Lenient())
		if err != nil {
			t.Fatalf("failed to evaluate: %v", err)
		}
		if !math.IsNaN(r) {
			t.Errorf("want NaN, got %g", r)
		}
	})
	t.Run("open", func(t *testing.T) {
		// The unmatched open bracket is drained into the output and fails
		// operator application, like the original.
		_, err := infix.Evaluate("2+(3", infix.Lenient())
		if _, ok := err.(*infix.InvalidOperatorError); !ok {
			t.Errorf("error was %#v, not InvalidOperatorError", err)
		}
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	srcs := []string{"2+2", "2 ^ 3 ^ 2", "(2 + 2) * 2", "4/5/6"}
	for _, src := range srcs {
		a, err := infix.Evaluate(src)
		if err != nil {
			t.Fatalf("%q failed to evaluate: %v", src, err)
		}
		b, err := infix.Evaluate(src)
		if err != nil {
			t.Fatalf("%q failed to evaluate again: %v", src, err)
		}
		if a != b {
			t.Errorf("%q: %g then %g", src, a, b)
		}
	}
}

func TestEvalPostfix(t *testing.T) {
	// a b + c * with a=1 b=2 c=3 is (1+2)*3.
	seq := []infix.Token{infix.Num(1), infix.Num(2), infix.Op('+'), infix.Num(3), infix.Op('*')}
	r, err := infix.EvalPostfix(seq)
	if err != nil {
		t.Fatalf("failed to evaluate: %v", err)
	}
	if r != 9 {
		t.Errorf("want 9, got %g", r)
	}
	if _, err := infix.EvalPostfix([]infix.Token{infix.Num(1), infix.Num(2), infix.Op('?')}); err != nil {
		if _, ok := err.(*infix.InvalidOperatorError); !ok {
			t.Errorf("error was %#v, not InvalidOperatorError", err)
		}
	} else {
		t.Error("applying ? gave no error")
	}
}

func Example() {
	r, err := infix.Evaluate("(2 + 2) * 2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output: 8
}
