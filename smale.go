package abelfunctions

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultMaxDepth is the default bisection depth bound of a
// [SmaleContinuator]. Each bisection halves the step, so 64 levels take the
// sub-step length far below stepMin before the bound is ever reached; in
// practice the depth guard only fires when the path runs into an actual
// branch point.
const DefaultMaxDepth = 64

// maxNewtonIter bounds the per-sheet Newton refinement. A step that passed
// the alpha check converges quadratically and needs only a handful of
// iterations; hitting the bound is counted in [Stats].
const maxNewtonIter = 100

// Stats counts the noteworthy events of a continuator's lifetime. The
// counters accumulate across calls to Continue.
type Stats struct {
	// Bisections is the number of steps that failed the alpha or
	// separation check and were split in half.
	Bisections int
	// NewtonStalls counts sheets whose Newton refinement stopped because
	// |∂f/∂y| fell below tolerance. The current iterate is kept in that
	// case; a nonzero count near a suspected degeneracy deserves a second
	// look.
	NewtonStalls int
	// NonConverged counts sheets whose Newton refinement hit the
	// iteration bound before the step tolerance. The last iterate is
	// kept.
	NonConverged int
}

// SmaleContinuator analytically continues fibres by Newton iteration,
// certified by Smale's alpha theory.
//
// For each step x0 → x1 it checks, at the target point x1 and with the
// current roots as starting guesses, that
//
//   - every root satisfies α(f, x1, y) = β·γ ≤ α₀, so Newton iteration is
//     guaranteed to converge, and
//   - every pair of roots is separated by more than 3(β_j + β_k), so two
//     sheets cannot converge to the same root.
//
// If either check fails the step is bisected and the halves are retried, down
// to MaxDepth levels. The continuator is valid away from branch points; near
// them the checks can never be satisfied and Continue returns
// [ErrBisectionLimit].
//
// A SmaleContinuator is not safe for concurrent use because it accumulates
// Stats; distinct continuators share no mutable state and may run in
// parallel.
type SmaleContinuator struct {
	// MaxDepth bounds the bisection depth. The zero value means
	// DefaultMaxDepth.
	MaxDepth int

	df    []Poly
	fact  []float64
	stats Stats
}

var _ Continuator = (*SmaleContinuator)(nil)

// NewSmaleContinuator builds a continuator for the curve f(x, y) = 0. The
// derivative family [f, f_y, f_yy, …] and the factorial table are computed
// once and reused for every step.
func NewSmaleContinuator(f Poly) *SmaleContinuator {
	fact := make([]float64, f.DegY()+1)
	fact[0] = 1
	for n := 1; n <= f.DegY(); n++ {
		fact[n] = fact[n-1] * float64(n)
	}
	return &SmaleContinuator{
		MaxDepth: DefaultMaxDepth,
		df:       f.Derivatives(),
		fact:     fact,
	}
}

// Stats returns the accumulated event counters.
func (c *SmaleContinuator) Stats() Stats { return c.stats }

// ResetStats zeroes the event counters.
func (c *SmaleContinuator) ResetStats() { c.stats = Stats{} }

// smaleStep is one pending sub-step of a continuation call.
type smaleStep struct {
	x0, x1 complex128
	depth  int
}

// Continue advances the fibre y0 from x0 to x1.
func (c *SmaleContinuator) Continue(x0 complex128, y0 Fibre, x1 complex128) (Fibre, error) {
	if cmplx.Abs(x1-x0) < stepMin {
		return y0, nil
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	ys := y0.Values()
	betas := make([]float64, len(ys))

	// Bisection as an explicit LIFO work list: the left half is pushed
	// last so sub-steps complete in path order, each leaf updating ys
	// before the next one starts.
	stack := []smaleStep{{x0, x1, 0}}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.stepCertified(st.x1, ys, betas) {
			for i, y := range ys {
				ys[i] = c.newton(st.x1, y)
			}
			continue
		}
		if st.depth >= maxDepth || cmplx.Abs(st.x1-st.x0) < stepMin {
			return Fibre{}, fmt.Errorf("%w after %d bisections near x = %g", ErrBisectionLimit, st.depth, st.x1)
		}
		c.stats.Bisections++
		mid := 0.5 * (st.x0 + st.x1)
		stack = append(stack,
			smaleStep{mid, st.x1, st.depth + 1},
			smaleStep{st.x0, mid, st.depth + 1},
		)
	}
	return NewFibre(ys), nil
}

// stepCertified reports whether Newton iteration from the roots ys is
// guaranteed to converge at x, with provably disjoint basins. betas is
// scratch space for the per-sheet Newton step sizes.
func (c *SmaleContinuator) stepCertified(x complex128, ys []complex128, betas []float64) bool {
	for i, y := range ys {
		b := c.beta(x, y)
		alpha := b * c.gamma(x, y)
		// A NaN alpha (0/0 at an exact critical point) fails the
		// comparison but must still force a bisection.
		if !(alpha <= SmaleAlpha0) {
			return false
		}
		betas[i] = b
	}
	for j := range ys {
		for k := j + 1; k < len(ys); k++ {
			if cmplx.Abs(ys[j]-ys[k]) < 3.0*(betas[j]+betas[k]) {
				return false
			}
		}
	}
	return true
}

// beta is the size of one Newton step at (x, y): |f / f_y|.
func (c *SmaleContinuator) beta(x, y complex128) float64 {
	return cmplx.Abs(c.df[0].Eval(x, y) / c.df[1].Eval(x, y))
}

// gamma is Smale's gamma function at (x, y): the maximum over derivative
// orders n ≥ 2 of |fⁿ / (n!·f_y)|^(1/(n-1)).
func (c *SmaleContinuator) gamma(x, y complex128) float64 {
	fy := c.df[1].Eval(x, y)
	var g float64
	for n := 2; n < len(c.df); n++ {
		t := cmplx.Abs(c.df[n].Eval(x, y)/fy) / c.fact[n]
		g = math.Max(g, math.Pow(t, 1.0/float64(n-1)))
	}
	return g
}

// newton refines one root of f(x, ·) = 0 starting from y. It stops when the
// step falls below newtonTol, or immediately when |f_y| does, keeping the
// current iterate rather than dividing by a vanishing derivative.
func (c *SmaleContinuator) newton(x, y complex128) complex128 {
	for iter := 0; iter < maxNewtonIter; iter++ {
		dy := c.df[1].Eval(x, y)
		if cmplx.Abs(dy) < newtonTol {
			c.stats.NewtonStalls++
			return y
		}
		step := c.df[0].Eval(x, y) / dy
		y -= step
		if cmplx.Abs(step) < newtonTol {
			return y
		}
	}
	c.stats.NonConverged++
	return y
}
