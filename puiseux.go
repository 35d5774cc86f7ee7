package abelfunctions

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// A PuiseuxTerm is one term c·t^n of a parametric Puiseux series.
type PuiseuxTerm struct {
	Coeff complex128
	Exp   int
}

// A PuiseuxSeries is a parametric Puiseux expansion of the curve at a
// discriminant point x0:
//
//	x(t) = α·t^e + x0
//	y(t) = Σ c_k·t^{n_k}
//
// where e is the ramification index. The series covers e sheets of the curve,
// one per branch of the e-th root in the inversion t(x). Series data is
// produced by a symbolic layer (Newton polygon plus coefficient recursion)
// and consumed here purely numerically.
type PuiseuxSeries struct {
	X0    complex128
	Alpha complex128
	Ram   int
	Terms []PuiseuxTerm
}

// XAt evaluates the x-parametrization at t.
func (s PuiseuxSeries) XAt(t complex128) complex128 {
	return s.Alpha*powInt(t, s.Ram) + s.X0
}

// YAt evaluates the y-series at t.
func (s PuiseuxSeries) YAt(t complex128) complex128 {
	var y complex128
	for _, term := range s.Terms {
		y += term.Coeff * powInt(t, term.Exp)
	}
	return y
}

// TAt inverts the x-parametrization at x, choosing the branch of the e-th
// root whose t-value lies closest to tNear. Passing the t of the previous
// continuation step keeps a sheet on its branch while x winds around x0.
func (s PuiseuxSeries) TAt(x complex128, tNear complex128) complex128 {
	w := (x - s.X0) / s.Alpha
	if w == 0 {
		return 0
	}
	principal := cmplx.Pow(w, complex(1.0/float64(s.Ram), 0))
	best := principal
	bestDist := math.Inf(1)
	for k := 0; k < s.Ram; k++ {
		phase := cmplx.Exp(complex(0, 2.0*math.Pi*float64(k)/float64(s.Ram)))
		t := principal * phase
		if d := cmplx.Abs(t - tNear); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// powInt computes z^n for n ≥ 0 by repeated squaring.
func powInt(z complex128, n int) complex128 {
	acc := complex128(1)
	for n > 0 {
		if n&1 == 1 {
			acc *= z
		}
		z *= z
		n >>= 1
	}
	return acc
}

// puiseuxPlace is one sheet of the covering as seen by a series bundle: a
// series together with a branch of its t-inversion.
type puiseuxPlace struct {
	series int
	t      complex128
}

// PuiseuxContinuator analytically continues fibres in the neighbourhood of a
// single discriminant point, where Newton iteration is unreliable, by
// evaluating precomputed Puiseux series instead.
//
// It satisfies the same contract as [SmaleContinuator]; the two are selected
// per path segment and know nothing about each other.
type PuiseuxContinuator struct {
	series []PuiseuxSeries
}

var _ Continuator = (*PuiseuxContinuator)(nil)

// NewPuiseuxContinuator bundles the Puiseux series at one discriminant
// point. All series must be centered at the same x0; their ramification
// indices sum to the number of sheets the bundle can track.
func NewPuiseuxContinuator(series []PuiseuxSeries) (*PuiseuxContinuator, error) {
	if len(series) == 0 {
		return nil, errors.New("abelfunctions: no Puiseux series given")
	}
	for _, s := range series {
		if s.Ram < 1 {
			return nil, fmt.Errorf("abelfunctions: ramification index %d < 1", s.Ram)
		}
		if s.Alpha == 0 {
			return nil, errors.New("abelfunctions: Puiseux series has zero x-coefficient")
		}
		if s.X0 != series[0].X0 {
			return nil, fmt.Errorf("abelfunctions: series centers %g and %g differ", s.X0, series[0].X0)
		}
	}
	return &PuiseuxContinuator{series: series}, nil
}

// Center returns the discriminant point the series bundle expands around.
func (c *PuiseuxContinuator) Center() complex128 { return c.series[0].X0 }

// Continue advances the fibre y0 from x0 to x1. Each incoming sheet is
// matched to the series branch whose value at x0 lies nearest; the sheet's
// new value is that branch evaluated at x1. The sheet labelling of y0 is
// preserved.
func (c *PuiseuxContinuator) Continue(x0 complex128, y0 Fibre, x1 complex128) (Fibre, error) {
	if cmplx.Abs(x1-x0) < stepMin {
		return y0, nil
	}

	// Enumerate every (series, root branch) place above x0.
	var places []puiseuxPlace
	for i, s := range c.series {
		t0 := s.TAt(x0, 0)
		for k := 0; k < s.Ram; k++ {
			phase := cmplx.Exp(complex(0, 2.0*math.Pi*float64(k)/float64(s.Ram)))
			places = append(places, puiseuxPlace{series: i, t: t0 * phase})
		}
	}
	if len(places) < y0.Len() {
		return Fibre{}, fmt.Errorf("abelfunctions: %d Puiseux branches cannot track %d sheets", len(places), y0.Len())
	}

	// Match each sheet to the nearest unclaimed place.
	ys := make([]complex128, y0.Len())
	claimed := make([]bool, len(places))
	for i := 0; i < y0.Len(); i++ {
		best := -1
		bestDist := math.Inf(1)
		for j, pl := range places {
			if claimed[j] {
				continue
			}
			yj := c.series[pl.series].YAt(pl.t)
			if d := cmplx.Abs(y0.Sheet(i) - yj); d < bestDist {
				best, bestDist = j, d
			}
		}
		pl := places[best]
		claimed[best] = true

		// Follow the matched branch to x1.
		s := c.series[pl.series]
		t1 := s.TAt(x1, pl.t)
		ys[i] = s.YAt(t1)
	}
	return NewFibre(ys), nil
}
