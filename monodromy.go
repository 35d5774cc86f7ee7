package abelfunctions

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"slices"
)

// A MonodromyGroup records, for every branch point of the curve, the
// permutation of the y-sheets induced by continuing the base fibre once
// counterclockwise around it. Discriminant points whose permutation is the
// identity are not branch points and are omitted.
//
// The loops form a standard Hurwitz system: they are based at the surface's
// base point, visit the discriminant points in lexicographic (Re, Im) order,
// and detour over the upper side of intervening bounding circles, so the
// ordered product of the permutations is the inverse of the permutation at
// infinity.
type MonodromyGroup struct {
	BranchPoints []complex128
	Permutations []Permutation
	// Infinity is the sheet permutation around the point at infinity.
	// It may be the identity.
	Infinity Permutation
}

// Branching returns the total branching index B = Σ (len(cycle) − 1) over
// all cycles of all permutations, including the one at infinity. It is the
// correction term of the Riemann-Hurwitz formula.
func (m *MonodromyGroup) Branching() int {
	b := 0
	for _, p := range m.Permutations {
		for _, cycle := range p.Cycles() {
			b += len(cycle) - 1
		}
	}
	for _, cycle := range m.Infinity.Cycles() {
		b += len(cycle) - 1
	}
	return b
}

// circleCrossing is a bounding circle pierced by a straight chord, with the
// chord parameters of the entry and exit points.
type circleCrossing struct {
	s1, s2 float64
	c      complex128
	r      float64
}

// avoidingTrace traces the straight line from a to b, detouring along the
// bounding circle of every discriminant point other than target that the
// line would pierce. Detours consistently pass over the upper side of the
// circle, keeping the loops of one surface in a common homotopy convention.
func (rs *RiemannSurface) avoidingTrace(a, b, target complex128) []Segment {
	d := b - a
	dd := real(d)*real(d) + imag(d)*imag(d)

	var crossings []circleCrossing
	for _, c := range rs.discPoints {
		if cmplx.Abs(c-target) < stepMin {
			continue
		}
		r := rs.DiscRadius(c)
		ac := a - c
		// |a + s·d − c|² = r², a quadratic in the chord parameter s.
		b1 := 2 * (real(d)*real(ac) + imag(d)*imag(ac))
		c0 := real(ac)*real(ac) + imag(ac)*imag(ac) - r*r
		disc := b1*b1 - 4*dd*c0
		if disc <= 0 {
			continue
		}
		sq := math.Sqrt(disc)
		s1 := (-b1 - sq) / (2 * dd)
		s2 := (-b1 + sq) / (2 * dd)
		// Tangential grazes and circles behind or beyond the chord
		// need no detour.
		if s2-s1 < 1e-9 || s2 <= 1e-9 || s1 >= 1-1e-9 {
			continue
		}
		crossings = append(crossings, circleCrossing{s1: s1, s2: s2, c: c, r: r})
	}
	slices.SortFunc(crossings, func(x, y circleCrossing) int { return cmp.Compare(x.s1, y.s1) })

	var segs []Segment
	cur := a
	for _, cr := range crossings {
		p1 := a + complex(cr.s1, 0)*d
		p2 := a + complex(cr.s2, 0)*d
		theta1 := cmplx.Phase(p1 - cr.c)
		theta2 := cmplx.Phase(p2 - cr.c)
		dccw := math.Mod(theta2-theta1, twoPi)
		if dccw <= 0 {
			dccw += twoPi
		}
		dcw := dccw - twoPi
		dtheta := dccw
		if math.Sin(theta1+0.5*dccw) < math.Sin(theta1+0.5*dcw) {
			dtheta = dcw
		}
		segs = append(segs,
			LineSegment{A: cur, B: p1},
			ArcSegment{R: cr.r, Center: cr.c, Theta: theta1, DTheta: dtheta},
		)
		cur = cr.c + complex(cr.r, 0)*cmplx.Exp(complex(0, theta1+dtheta))
	}
	return append(segs, LineSegment{A: cur, B: b})
}

// MonodromyPath builds the loop around the discriminant point b: an
// obstacle-avoiding approach from the base point to the bounding circle of
// b, one full counterclockwise turn around the circle, and the reversed
// approach back.
func (rs *RiemannSurface) MonodromyPath(b complex128) (*Path, error) {
	r := rs.DiscRadius(b)
	if r == 0 {
		return nil, fmt.Errorf("abelfunctions: %g is not a discriminant point", b)
	}
	phi := cmplx.Phase(rs.basePoint - b)
	enter := b + complex(r, 0)*cmplx.Exp(complex(0, phi))
	approach := rs.avoidingTrace(rs.basePoint, enter, b)

	segs := make([]PathSegment, 0, 2*len(approach)+1)
	for _, s := range approach {
		segs = append(segs, PathSegment{Seg: s, Cont: rs.smale})
	}
	segs = append(segs, PathSegment{
		Seg:  ArcSegment{R: r, Center: b, Theta: phi, DTheta: twoPi},
		Cont: rs.smale,
	})
	for k := len(approach) - 1; k >= 0; k-- {
		segs = append(segs, PathSegment{Seg: approach[k].Reversed(), Cont: rs.smale})
	}
	return NewPath(rs.basePoint, rs.baseFibre, segs, DefaultSamples)
}

// Monodromy computes the monodromy group of the curve by continuing the base
// fibre around each discriminant point in turn, in lexicographic (Re, Im)
// order. The result is cached on the surface.
func (rs *RiemannSurface) Monodromy() (*MonodromyGroup, error) {
	if rs.mono != nil {
		return rs.mono, nil
	}
	ordered := append([]complex128(nil), rs.discPoints...)
	slices.SortFunc(ordered, func(a, b complex128) int {
		if c := cmp.Compare(real(a), real(b)); c != 0 {
			return c
		}
		return cmp.Compare(imag(a), imag(b))
	})

	group := &MonodromyGroup{}
	prod := IdentityPermutation(rs.baseFibre.Len())
	for _, b := range ordered {
		gamma, err := rs.MonodromyPath(b)
		if err != nil {
			return nil, fmt.Errorf("monodromy at %g: %w", b, err)
		}
		// Sheet i of the end fibre is the continuation of base sheet
		// i, so matching it back against the base fibre reads off the
		// permutation.
		sigma, err := MatchingPermutation(gamma.EndFibre(), rs.baseFibre)
		if err != nil {
			return nil, fmt.Errorf("monodromy at %g: %w", b, err)
		}
		prod = prod.Then(sigma)
		if sigma.IsIdentity() {
			continue
		}
		group.BranchPoints = append(group.BranchPoints, b)
		group.Permutations = append(group.Permutations, sigma)
	}
	group.Infinity = prod.Inverse()
	rs.mono = group
	return group, nil
}
