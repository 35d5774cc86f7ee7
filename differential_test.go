package abelfunctions

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestNewDifferentialError(t *testing.T) {
	xOnly := mustPoly(t, map[[2]int]complex128{{2, 0}: 1})
	num := mustPoly(t, map[[2]int]complex128{{0, 0}: 1})
	if _, err := NewDifferential(num, xOnly); err == nil {
		t.Error("a curve without y should fail")
	}
}

func TestDifferentialEval(t *testing.T) {
	f, _ := hyperellipticCurve(t)
	num := mustPoly(t, map[[2]int]complex128{{0, 0}: 1})
	omega, err := NewDifferential(num, f)
	if err != nil {
		t.Fatal(err)
	}
	// ω = dx / (2y) on y² = x² − 1.
	x, y := complex(3, 0), complex(2, 1)
	assertNear(t, 1/(2*y), omega.Eval(x, y), 1e-14)
}

func TestIntegrateContractibleLoop(t *testing.T) {
	// A loop enclosing no branch point integrates a holomorphic function,
	// so the result vanishes by Cauchy's theorem.
	f, _ := hyperellipticCurve(t)
	c := NewSmaleContinuator(f)
	num := mustPoly(t, map[[2]int]complex128{{0, 0}: 1})
	omega, err := NewDifferential(num, f)
	if err != nil {
		t.Fatal(err)
	}

	x0 := complex(3.5, 0)
	y0 := mustFibre(t, f, x0)
	loop := []PathSegment{
		{Seg: ArcSegment{R: 0.5, Center: 3, Theta: 0, DTheta: twoPi}, Cont: c},
	}
	p, err := NewPath(x0, y0, loop, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := omega.Integrate(p)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(got) > 1e-8 {
		t.Errorf("contractible loop integral = %g, want ~0", got)
	}
}

func TestIntegrateAroundBranchCut(t *testing.T) {
	// Around a circle enclosing both branch points of y² = x² − 1 the
	// integrand expands as 1/(2y) = ±(1/(2x))(1 + x⁻²/2 + …), so only the
	// 1/x term contributes: ∮ dx/(2y) = ±πi exactly.
	f, _ := hyperellipticCurve(t)
	c := NewSmaleContinuator(f)
	num := mustPoly(t, map[[2]int]complex128{{0, 0}: 1})
	omega, err := NewDifferential(num, f)
	if err != nil {
		t.Fatal(err)
	}

	x0 := complex(3, 0)
	y0 := mustFibre(t, f, x0)
	loop := []PathSegment{
		{Seg: ArcSegment{R: 3, Center: 0, Theta: 0, DTheta: twoPi}, Cont: c},
	}
	p, err := NewPath(x0, y0, loop, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := omega.Integrate(p)
	if err != nil {
		t.Fatal(err)
	}
	if d := math.Abs(cmplx.Abs(got) - math.Pi); d > 1e-6 {
		t.Errorf("|∮ dx/2y| = %g, want π (off by %g)", cmplx.Abs(got), d)
	}
	if re := math.Abs(real(got)); re > 1e-6 {
		t.Errorf("Re ∮ dx/2y = %g, want 0", re)
	}
}

func TestIntegrateMatchesPathReversal(t *testing.T) {
	f, _ := hyperellipticCurve(t)
	c := NewSmaleContinuator(f)
	num := mustPoly(t, map[[2]int]complex128{{0, 0}: 1})
	omega, err := NewDifferential(num, f)
	if err != nil {
		t.Fatal(err)
	}

	x0 := complex(3, 0)
	y0 := mustFibre(t, f, x0)
	p, err := NewPath(x0, y0, []PathSegment{
		{Seg: LineSegment{A: x0, B: 3 + 2i}, Cont: c},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	back, err := p.Reverse()
	if err != nil {
		t.Fatal(err)
	}
	fwd, err := omega.Integrate(p)
	if err != nil {
		t.Fatal(err)
	}
	rev, err := omega.Integrate(back)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, -fwd, rev, 1e-9)
}
