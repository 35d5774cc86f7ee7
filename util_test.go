package abelfunctions

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got complex128, epsilon float64) {
	t.Helper()
	if cmplx.Abs(want-got) > epsilon {
		t.Errorf("got %g, want %g (within %g)", got, want, epsilon)
	}
}

func mustPoly(t testing.TB, terms map[[2]int]complex128) Poly {
	t.Helper()
	p, err := NewPoly(terms)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// testCurve returns f(x, y) = y³ − x³y + 2x⁷, the project's standard test
// curve. Its finite branch points are x = 0 and the five roots of x⁵ = 1/27,
// which lie on the circle |x| = 27^(−1/5) ≈ 0.5173.
func testCurve(t testing.TB) Poly {
	return mustPoly(t, map[[2]int]complex128{
		{0, 3}: 1,
		{3, 1}: -1,
		{7, 0}: 2,
	})
}

// mustFibre computes the full fibre of testCurve-style polynomials above x.
func mustFibre(t testing.TB, f Poly, x complex128) Fibre {
	t.Helper()
	ys, err := Roots(f.EvalY(x))
	if err != nil {
		t.Fatal(err)
	}
	if len(ys) != f.DegY() {
		t.Fatalf("got %d roots above %g, want %d", len(ys), x, f.DegY())
	}
	return NewFibre(ys)
}
