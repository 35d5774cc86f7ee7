package abelfunctions

import "errors"

// SmaleAlpha0 is the universal convergence threshold of Smale's alpha theory,
// (13 − 2√17)/4. Newton iteration started at an approximate root with
// α(f, y) below this constant is guaranteed to converge quadratically to the
// exact root.
const SmaleAlpha0 = 1.1884471871911697

// stepMin is the x-distance below which a continuation step is degenerate
// and the fibre is returned unchanged.
const stepMin = 1e-15

// newtonTol bounds both the Newton step size at convergence and the smallest
// |∂f/∂y| we are willing to divide by.
const newtonTol = 1e-14

// ErrBisectionLimit is returned when a continuation step keeps failing the
// alpha or separation checks no matter how finely it is bisected. This
// happens when the path passes too close to a branch point; that region must
// be handled by a [PuiseuxContinuator] instead.
var ErrBisectionLimit = errors.New("abelfunctions: step did not converge within bisection limit")

// A Continuator analytically continues a fibre of y-roots on the curve
// f(x, y) = 0 from x0 to x1.
//
// The returned fibre has the same length as y0 and preserves the sheet
// labelling: sheet i of the result is the analytic continuation of sheet i of
// the input. Implementations either return a complete valid fibre or an
// error, never a partial result.
type Continuator interface {
	Continue(x0 complex128, y0 Fibre, x1 complex128) (Fibre, error)
}
