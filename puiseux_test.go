package abelfunctions

import (
	"math/cmplx"
	"testing"
)

// sqrtSeries is the Puiseux expansion of y² = x at the origin:
// x = t², y = t.
func sqrtSeries() PuiseuxSeries {
	return PuiseuxSeries{
		X0:    0,
		Alpha: 1,
		Ram:   2,
		Terms: []PuiseuxTerm{{Coeff: 1, Exp: 1}},
	}
}

func TestPuiseuxSeriesEval(t *testing.T) {
	s := sqrtSeries()
	for _, tt := range []complex128{0.1, 0.2 + 0.3i, -1, 2i} {
		assertNear(t, tt*tt, s.XAt(tt), 1e-14)
		assertNear(t, tt, s.YAt(tt), 1e-14)
	}
}

func TestPuiseuxTAtBranches(t *testing.T) {
	s := sqrtSeries()
	x := complex(0.04, 0)
	// Both square-root branches invert x, and tNear selects between them.
	tPos := s.TAt(x, 0.2)
	tNeg := s.TAt(x, -0.2)
	assertNear(t, 0.2, tPos, 1e-12)
	assertNear(t, -0.2, tNeg, 1e-12)
	assertNear(t, x, s.XAt(tPos), 1e-12)
	diff(t, complex128(0), s.TAt(0, 0.5))
}

func TestNewPuiseuxContinuatorErrors(t *testing.T) {
	if _, err := NewPuiseuxContinuator(nil); err == nil {
		t.Error("empty bundle should fail")
	}
	if _, err := NewPuiseuxContinuator([]PuiseuxSeries{{X0: 0, Alpha: 1, Ram: 0}}); err == nil {
		t.Error("ramification index 0 should fail")
	}
	if _, err := NewPuiseuxContinuator([]PuiseuxSeries{{X0: 0, Alpha: 0, Ram: 1}}); err == nil {
		t.Error("zero x-coefficient should fail")
	}
	if _, err := NewPuiseuxContinuator([]PuiseuxSeries{
		{X0: 0, Alpha: 1, Ram: 1},
		{X0: 1, Alpha: 1, Ram: 1},
	}); err == nil {
		t.Error("mismatched centers should fail")
	}
}

func TestPuiseuxContinueTrivialStep(t *testing.T) {
	c, err := NewPuiseuxContinuator([]PuiseuxSeries{sqrtSeries()})
	if err != nil {
		t.Fatal(err)
	}
	y0 := NewFibre([]complex128{0.2, -0.2})
	y1, err := c.Continue(0.04, y0, 0.04)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, y0.Values(), y1.Values())
}

func TestPuiseuxContinueTooFewBranches(t *testing.T) {
	c, err := NewPuiseuxContinuator([]PuiseuxSeries{sqrtSeries()})
	if err != nil {
		t.Fatal(err)
	}
	y0 := NewFibre([]complex128{0.2, -0.2, 7})
	if _, err := c.Continue(0.04, y0, 0.09); err == nil {
		t.Error("three sheets cannot be tracked by two branches")
	}
}

func TestPuiseuxMatchesSmale(t *testing.T) {
	// y² − x has the exact Puiseux parametrization x = t², y = t, so both
	// continuators must agree wherever the Smale continuator is valid.
	f := mustPoly(t, map[[2]int]complex128{{0, 2}: 1, {1, 0}: -1})
	smale := NewSmaleContinuator(f)
	puiseux, err := NewPuiseuxContinuator([]PuiseuxSeries{sqrtSeries()})
	if err != nil {
		t.Fatal(err)
	}

	x0, x1 := complex(0.04, 0), complex(0.09, 0.02)
	y0 := NewFibre([]complex128{0.2, -0.2})
	a, err := smale.Continue(x0, y0, x1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := puiseux.Continue(x0, y0, x1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < a.Len(); i++ {
		assertNear(t, a.Sheet(i), b.Sheet(i), 1e-10)
	}
}

func TestPuiseuxMonodromy(t *testing.T) {
	// One counterclockwise turn around the branch point of y² = x must
	// swap the two sheets, and the Puiseux continuator works arbitrarily
	// close to the branch point.
	c, err := NewPuiseuxContinuator([]PuiseuxSeries{sqrtSeries()})
	if err != nil {
		t.Fatal(err)
	}
	const r = 0.01
	const steps = 8
	fib := NewFibre([]complex128{0.1, -0.1})
	x := complex(r, 0)
	for k := 1; k <= steps; k++ {
		next := complex(r, 0) * cmplx.Exp(complex(0, twoPi*float64(k)/steps))
		fib, err = c.Continue(x, fib, next)
		if err != nil {
			t.Fatal(err)
		}
		x = next
	}
	assertNear(t, -0.1, fib.Sheet(0), 1e-12)
	assertNear(t, 0.1, fib.Sheet(1), 1e-12)
}

func TestPowInt(t *testing.T) {
	z := complex(1.2, -0.7)
	want := complex128(1)
	for n := 0; n < 9; n++ {
		got := powInt(z, n)
		if cmplx.Abs(got-want) > 1e-12*cmplx.Abs(want) {
			t.Errorf("z^%d: got %g, want %g", n, got, want)
		}
		want *= z
	}
	if got := powInt(z, 0); got != 1 {
		t.Errorf("z^0 = %g, want 1", got)
	}
}
