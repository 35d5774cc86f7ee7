package abelfunctions

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// rootsTol is the convergence tolerance for the simultaneous root iteration.
const rootsTol = 1e-14

// maxRootsIter bounds the Aberth iteration. Well-conditioned polynomials of
// moderate degree converge in well under a hundred sweeps.
const maxRootsIter = 500

// Roots computes all complex roots of the univariate polynomial
//
//	c[0] + c[1]·z + … + c[n]·z^n
//
// by Aberth-Ehrlich simultaneous iteration. The returned slice has exactly
// deg(c) entries in an unspecified but deterministic order. It returns an
// error if the polynomial is constant or if the iteration fails to converge.
func Roots(c []complex128) ([]complex128, error) {
	if len(c) == 0 {
		return nil, errors.New("abelfunctions: cannot take roots of an empty polynomial")
	}
	// Strip a (numerically) vanishing leading coefficient.
	n := len(c) - 1
	for n > 0 && c[n] == 0 {
		n--
	}
	c = c[:n+1]
	switch n {
	case 0:
		return nil, errors.New("abelfunctions: cannot take roots of a constant polynomial")
	case 1:
		return []complex128{-c[0] / c[1]}, nil
	}

	// Factor out roots at the origin so the Cauchy bound is meaningful.
	var zeros int
	for zeros < n && c[zeros] == 0 {
		zeros++
	}
	c = c[zeros:]
	n -= zeros

	roots := make([]complex128, n)
	if n > 0 {
		// Cauchy bound on the root moduli.
		var bound float64
		for _, ci := range c[:n] {
			bound = math.Max(bound, cmplx.Abs(ci/c[n]))
		}
		bound += 1.0
		// Initial guesses on a circle, rotated off the axes to break
		// symmetry with real-coefficient input.
		for k := range roots {
			theta := 2.0*math.Pi*float64(k)/float64(n) + 0.4
			roots[k] = complex(bound, 0) * cmplx.Exp(complex(0, theta))
		}

		converged := false
		for iter := 0; iter < maxRootsIter; iter++ {
			delta := 0.0
			for k, zk := range roots {
				p, dp := hornerWithDeriv(c, zk)
				if dp == 0 {
					// Nudge off the critical point and retry next sweep.
					roots[k] += complex(rootsTol, rootsTol)
					delta = math.Inf(1)
					continue
				}
				w := p / dp
				var sum complex128
				for j, zj := range roots {
					if j != k {
						sum += 1.0 / (zk - zj)
					}
				}
				corr := w / (1.0 - w*sum)
				roots[k] = zk - corr
				delta = math.Max(delta, cmplx.Abs(corr))
			}
			if delta < rootsTol {
				converged = true
				break
			}
		}
		if !converged {
			return nil, fmt.Errorf("abelfunctions: root iteration did not converge for degree %d", n)
		}
	}

	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}
	return roots, nil
}

// hornerWithDeriv evaluates the univariate polynomial with ascending
// coefficients c and its derivative at z in a single pass.
func hornerWithDeriv(c []complex128, z complex128) (p, dp complex128) {
	for i := len(c) - 1; i >= 0; i-- {
		dp = dp*z + p
		p = p*z + c[i]
	}
	return p, dp
}
