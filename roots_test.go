package abelfunctions

import (
	"math/cmplx"
	"testing"
)

// containsRoot reports whether want appears among roots within epsilon.
func containsRoot(roots []complex128, want complex128, epsilon float64) bool {
	for _, r := range roots {
		if cmplx.Abs(r-want) < epsilon {
			return true
		}
	}
	return false
}

func TestRootsCubic(t *testing.T) {
	// (z − 1)(z − 2i)(z + 3) = z³ + (2−2i)z² + (−3−4i)z + 6i
	c := []complex128{6i, -3 - 4i, 2 - 2i, 1}
	roots, err := Roots(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(roots))
	}
	for _, want := range []complex128{1, 2i, -3} {
		if !containsRoot(roots, want, 1e-10) {
			t.Errorf("missing root %g in %v", want, roots)
		}
	}
}

func TestRootsResidual(t *testing.T) {
	c := []complex128{-2 + 1i, 3, 0, -1.5 + 0.5i, 0, 2, 1}
	roots, err := Roots(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 6 {
		t.Fatalf("got %d roots, want 6", len(roots))
	}
	for _, r := range roots {
		p, _ := hornerWithDeriv(c, r)
		if cmplx.Abs(p) > 1e-9 {
			t.Errorf("|p(%g)| = %g, want < 1e-9", r, cmplx.Abs(p))
		}
	}
}

func TestRootsLinear(t *testing.T) {
	roots, err := Roots([]complex128{-4, 2})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []complex128{2}, roots)
}

func TestRootsAtOrigin(t *testing.T) {
	// z³(z − 1)
	roots, err := Roots([]complex128{0, 0, 0, -1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 4 {
		t.Fatalf("got %d roots, want 4", len(roots))
	}
	zeros := 0
	for _, r := range roots {
		if r == 0 {
			zeros++
		}
	}
	diff(t, 3, zeros)
	if !containsRoot(roots, 1, 1e-10) {
		t.Errorf("missing root 1 in %v", roots)
	}
}

func TestRootsConstant(t *testing.T) {
	if _, err := Roots(nil); err == nil {
		t.Error("expected an error for an empty coefficient slice")
	}
	if _, err := Roots([]complex128{}); err == nil {
		t.Error("expected an error for an empty coefficient slice")
	}
	if _, err := Roots([]complex128{5}); err == nil {
		t.Error("expected an error for a constant polynomial")
	}
	if _, err := Roots([]complex128{5, 0, 0}); err == nil {
		t.Error("expected an error for a constant polynomial with zero padding")
	}
}

func TestHornerWithDeriv(t *testing.T) {
	// p(z) = 1 + 2z + 3z², p'(z) = 2 + 6z
	c := []complex128{1, 2, 3}
	z := complex(1.5, -2.0)
	p, dp := hornerWithDeriv(c, z)
	assertNear(t, 1+2*z+3*z*z, p, 1e-13)
	assertNear(t, 2+6*z, dp, 1e-13)
}
