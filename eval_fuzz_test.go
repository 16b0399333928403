package infix_test

import (
	"math"
	"testing"

	"github.com/evermoor/infix"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2+2*2")
	f.Add("(2 + 2) * 2")
	f.Add("2^3^2")
	f.Add("10/0")
	f.Add("1.2.3")
	f.Add("2+(3")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := infix.Evaluate(s)
		lr, lerr := infix.Evaluate(s, infix.Lenient())
		if err != nil {
			return
		}
		// Strict acceptance implies lenient acceptance with the same value.
		if lerr != nil {
			t.Fatalf("%q: strict gave %g, lenient gave %v", s, r, lerr)
		}
		if r != lr && !(math.IsNaN(r) && math.IsNaN(lr)) {
			t.Errorf("%q: strict gave %g, lenient gave %g", s, r, lr)
		}
		// No hidden state: a second evaluation agrees.
		r2, err2 := infix.Evaluate(s)
		if err2 != nil {
			t.Fatalf("%q: second evaluation failed: %v", s, err2)
		}
		if r != r2 && !(math.IsNaN(r) && math.IsNaN(r2)) {
			t.Errorf("%q: %g then %g", s, r, r2)
		}
	})
}

func FuzzToPostfix(f *testing.F) {
	f.Add("2+2*2")
	f.Add("((1+2)*(3+4))")
	f.Add(")(")
	f.Fuzz(func(t *testing.T, s string) {
		infix.ToPostfix(s)
		infix.ToPostfix(s, infix.Lenient())
	})
}
