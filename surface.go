package abelfunctions

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

const twoPi = 2 * math.Pi

// DefaultKappa scales the bounding circles placed around discriminant
// points: the radius at b is κ/2 times the distance from b to its nearest
// neighbour. Values below 1 keep the circles disjoint with room for paths to
// pass between them.
const DefaultKappa = 3.0 / 5.0

// A RiemannSurface is a thin wrapper around an algebraic curve f(x, y) = 0
// together with the symbolic data the numeric core consumes: the curve's
// discriminant points and, optionally, a basis of holomorphic differential
// numerators. It owns a base point in the x-plane, a fixed ordering of the
// y-sheets above it, and a Smale continuator for the curve.
type RiemannSurface struct {
	f          Poly
	smale      *SmaleContinuator
	basePoint  complex128
	baseFibre  Fibre
	discPoints []complex128
	diffs      []Differential
	kappa      float64
	mono       *MonodromyGroup
}

// NewRiemannSurface builds the surface of the curve f(x, y) = 0.
// discriminantPoints are the roots of the discriminant of f with respect to
// y, supplied by a symbolic layer; differentials may be nil. The base point
// is placed one unit to the left of the leftmost discriminant point and the
// base sheets are the numerically computed roots of f(x₀, y) = 0, in the
// order the root finder returns them.
func NewRiemannSurface(f Poly, discriminantPoints []complex128, differentials []Differential) (*RiemannSurface, error) {
	if f.DegY() < 1 {
		return nil, errors.New("abelfunctions: curve does not depend on y")
	}
	base := complex(-1, 0)
	if len(discriminantPoints) > 0 {
		leftmost := discriminantPoints[0]
		for _, b := range discriminantPoints[1:] {
			if real(b) < real(leftmost) {
				leftmost = b
			}
		}
		base = leftmost - 1
		// Step further left until the base point clears every bounding
		// circle. Widely spaced discriminant points have large radii.
		for moved := true; moved; {
			moved = false
			for _, b := range discriminantPoints {
				r := nearestRadius(discriminantPoints, b, DefaultKappa)
				if !math.IsInf(r, 1) && cmplx.Abs(base-b) < r {
					base -= 1
					moved = true
				}
			}
		}
	}
	ys, err := Roots(f.EvalY(base))
	if err != nil {
		return nil, fmt.Errorf("abelfunctions: base fibre at %g: %w", base, err)
	}
	if len(ys) != f.DegY() {
		return nil, fmt.Errorf("abelfunctions: leading coefficient of f vanishes at base point %g", base)
	}
	rs := &RiemannSurface{
		f:          f,
		smale:      NewSmaleContinuator(f),
		basePoint:  base,
		baseFibre:  NewFibre(ys),
		discPoints: append([]complex128(nil), discriminantPoints...),
		diffs:      append([]Differential(nil), differentials...),
		kappa:      DefaultKappa,
	}
	return rs, nil
}

// Curve returns the defining polynomial.
func (rs *RiemannSurface) Curve() Poly { return rs.f }

// BasePoint returns the base x-point of the surface.
func (rs *RiemannSurface) BasePoint() complex128 { return rs.basePoint }

// BaseFibre returns the fixed ordering of the y-sheets above the base point.
func (rs *RiemannSurface) BaseFibre() Fibre { return rs.baseFibre }

// DiscriminantPoints returns a copy of the discriminant points.
func (rs *RiemannSurface) DiscriminantPoints() []complex128 {
	return append([]complex128(nil), rs.discPoints...)
}

// Differentials returns a copy of the holomorphic differential basis the
// surface was constructed with.
func (rs *RiemannSurface) Differentials() []Differential {
	return append([]Differential(nil), rs.diffs...)
}

// Continuator returns the surface's Smale continuator.
func (rs *RiemannSurface) Continuator() *SmaleContinuator { return rs.smale }

// DiscRadius returns the bounding-circle radius of the discriminant point b:
// κ/2 times the distance to the nearest other discriminant point, or to the
// base point if b is the only one. It returns 0 if b is not a discriminant
// point of the surface.
func (rs *RiemannSurface) DiscRadius(b complex128) float64 {
	found := false
	for _, bi := range rs.discPoints {
		if cmplx.Abs(b-bi) < stepMin {
			found = true
			break
		}
	}
	if !found {
		return 0
	}
	r := nearestRadius(rs.discPoints, b, rs.kappa)
	if math.IsInf(r, 1) {
		r = 0.5 * rs.kappa * cmplx.Abs(b-rs.basePoint)
	}
	return r
}

// nearestRadius is the bounding-circle radius of b among points: κ/2 times
// the distance to the nearest other point, or +Inf if there is none.
func nearestRadius(points []complex128, b complex128, kappa float64) float64 {
	nearest := math.Inf(1)
	for _, bi := range points {
		if d := cmplx.Abs(b - bi); d >= stepMin {
			nearest = math.Min(nearest, d)
		}
	}
	return 0.5 * kappa * nearest
}

// PathTo continues the base fibre along the straight line from the base
// point to x1. The caller is responsible for choosing an x1 whose chord from
// the base point stays clear of the discriminant points.
func (rs *RiemannSurface) PathTo(x1 complex128, samples int) (*Path, error) {
	segs := []PathSegment{
		{Seg: LineSegment{A: rs.basePoint, B: x1}, Cont: rs.smale},
	}
	return NewPath(rs.basePoint, rs.baseFibre, segs, samples)
}

// Genus computes the genus of the surface from the cycle structure of its
// monodromy group via the Riemann-Hurwitz formula,
//
//	2 − 2g = 2n − B,
//
// where n is the number of sheets and B the total branching index.
func (rs *RiemannSurface) Genus() (int, error) {
	mono, err := rs.Monodromy()
	if err != nil {
		return 0, err
	}
	n := rs.baseFibre.Len()
	b := mono.Branching()
	if (b-2*n+2)%2 != 0 || b-2*n+2 < 0 {
		return 0, fmt.Errorf("abelfunctions: inconsistent branching index %d on %d sheets", b, n)
	}
	return (b - 2*n + 2) / 2, nil
}
