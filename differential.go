package abelfunctions

import "errors"

// A Differential is a holomorphic one-form on the surface of the curve
// f(x, y) = 0, represented in the standard adjoint form
//
//	ω = P(x, y) / f_y(x, y) · dx
//
// with the numerator P supplied by a symbolic layer (adjoint polynomial
// linear system). Only evaluation and path integration happen here.
type Differential struct {
	num Poly
	den Poly
}

// NewDifferential builds the one-form P/f_y·dx on the curve f.
func NewDifferential(num, f Poly) (Differential, error) {
	den := f.DiffY()
	if den.IsZero() {
		return Differential{}, errors.New("abelfunctions: curve does not depend on y")
	}
	return Differential{num: num, den: den}, nil
}

// Eval evaluates the coefficient P/f_y of the one-form at a place (x, y) of
// the surface.
func (d Differential) Eval(x, y complex128) complex128 {
	return d.num.Eval(x, y) / d.den.Eval(x, y)
}

// Integrate computes ∫ ω along the path, on the sheet labelled 0 of the
// path's fibre:
//
//	∫₀¹ ω(x(t), y₀(t)) · x′(t) dt
//
// Each segment is integrated by composite Gauss-Legendre quadrature, one
// 16-point rule per continuation sample, threading the fibre through the
// quadrature nodes in order.
func (d Differential) Integrate(p *Path) (complex128, error) {
	var total complex128
	for k, seg := range p.segments {
		fib := p.checkpoints[k]
		xPrev := seg.Seg.X(0)
		for i := 0; i < p.samples; i++ {
			a := float64(i) / float64(p.samples)
			b := float64(i+1) / float64(p.samples)
			half := 0.5 * (b - a)
			mid := 0.5 * (a + b)
			for _, wx := range gaussLegendre16 {
				t := half*wx[1] + mid
				x := seg.Seg.X(t)
				var err error
				fib, err = seg.Cont.Continue(xPrev, fib, x)
				if err != nil {
					return 0, err
				}
				xPrev = x
				total += complex(wx[0]*half, 0) * d.Eval(x, fib.Sheet(0)) * seg.Seg.DX(t)
			}
			// Park the fibre at the end of the sample interval so
			// the next rule starts from a clean boundary.
			xEnd := seg.Seg.X(b)
			var err error
			fib, err = seg.Cont.Continue(xPrev, fib, xEnd)
			if err != nil {
				return 0, err
			}
			xPrev = xEnd
		}
	}
	return total, nil
}

// 16-point Gauss-Legendre rule on [-1, 1] as (weight, node) pairs, nodes in
// ascending order. Adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
var gaussLegendre16 = [...][2]float64{
	{0.0271524594117541, -0.9894009349916499},
	{0.0622535239386479, -0.9445750230732326},
	{0.0951585116824928, -0.8656312023878318},
	{0.1246289712555339, -0.7554044083550030},
	{0.1495959888165767, -0.6178762444026438},
	{0.1691565193950025, -0.4580167776572274},
	{0.1826034150449236, -0.2816035507792589},
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}
