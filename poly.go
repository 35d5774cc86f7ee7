package abelfunctions

import (
	"errors"
	"fmt"
	"strings"
)

// Poly is an immutable bivariate polynomial f(x, y) over the complex numbers.
//
// Coefficients are stored densely: coeffs[j][i] is the coefficient of
// x^i·y^j. The layout is chosen for evaluation by a nested Horner scheme,
// which costs O(terms) per call and allocates nothing.
type Poly struct {
	coeffs [][]complex128
	degX   int
	degY   int
}

// NewPoly constructs a polynomial from a sparse term map keyed by
// (x-degree, y-degree). Zero-valued terms are ignored. It returns an error if
// any exponent is negative or if no nonzero term remains.
func NewPoly(terms map[[2]int]complex128) (Poly, error) {
	degX, degY := -1, -1
	for k, c := range terms {
		if k[0] < 0 || k[1] < 0 {
			return Poly{}, fmt.Errorf("abelfunctions: negative exponent x^%d y^%d", k[0], k[1])
		}
		if c == 0 {
			continue
		}
		degX = max(degX, k[0])
		degY = max(degY, k[1])
	}
	if degX < 0 || degY < 0 {
		return Poly{}, errors.New("abelfunctions: polynomial has no nonzero terms")
	}
	coeffs := make([][]complex128, degY+1)
	for j := range coeffs {
		coeffs[j] = make([]complex128, degX+1)
	}
	for k, c := range terms {
		if c != 0 {
			coeffs[k[1]][k[0]] = c
		}
	}
	return Poly{coeffs: coeffs, degX: degX, degY: degY}, nil
}

// zeroPoly is the internal representation of the zero polynomial. NewPoly
// never returns it, but formal derivatives can.
func zeroPoly() Poly {
	return Poly{coeffs: [][]complex128{{0}}}
}

// IsZero reports whether p is identically zero.
func (p Poly) IsZero() bool {
	for _, row := range p.coeffs {
		for _, c := range row {
			if c != 0 {
				return false
			}
		}
	}
	return true
}

// DegX returns the degree of p in x.
func (p Poly) DegX() int { return p.degX }

// DegY returns the degree of p in y.
func (p Poly) DegY() int { return p.degY }

// Coeff returns the coefficient of x^i·y^j. Exponents beyond the degree
// yield zero.
func (p Poly) Coeff(i, j int) complex128 {
	if j < 0 || j > p.degY || i < 0 || i > p.degX {
		return 0
	}
	return p.coeffs[j][i]
}

// Eval evaluates p at the point (x, y).
func (p Poly) Eval(x, y complex128) complex128 {
	var acc complex128
	for j := p.degY; j >= 0; j-- {
		row := p.coeffs[j]
		var c complex128
		for i := len(row) - 1; i >= 0; i-- {
			c = c*x + row[i]
		}
		acc = acc*y + c
	}
	return acc
}

// EvalY collapses p at fixed x to the coefficients of the univariate
// polynomial in y, in ascending order: f(x, y) = Σ out[j]·y^j.
func (p Poly) EvalY(x complex128) []complex128 {
	out := make([]complex128, p.degY+1)
	for j, row := range p.coeffs {
		var c complex128
		for i := len(row) - 1; i >= 0; i-- {
			c = c*x + row[i]
		}
		out[j] = c
	}
	return out
}

// DiffY returns the formal partial derivative ∂p/∂y.
func (p Poly) DiffY() Poly {
	if p.degY == 0 {
		return zeroPoly()
	}
	coeffs := make([][]complex128, p.degY)
	for j := 1; j <= p.degY; j++ {
		row := make([]complex128, p.degX+1)
		for i, c := range p.coeffs[j] {
			row[i] = complex(float64(j), 0) * c
		}
		coeffs[j-1] = row
	}
	return trimPoly(coeffs)
}

// DiffX returns the formal partial derivative ∂p/∂x.
func (p Poly) DiffX() Poly {
	if p.degX == 0 {
		return zeroPoly()
	}
	coeffs := make([][]complex128, p.degY+1)
	for j := 0; j <= p.degY; j++ {
		row := make([]complex128, p.degX)
		for i := 1; i <= p.degX; i++ {
			row[i-1] = complex(float64(i), 0) * p.coeffs[j][i]
		}
		coeffs[j] = row
	}
	return trimPoly(coeffs)
}

// Derivatives returns the family [p, ∂p/∂y, ∂²p/∂y², …] up to order DegY.
// The family has DegY+1 entries and is computed once; continuators reuse it
// for every step.
func (p Poly) Derivatives() []Poly {
	df := make([]Poly, p.degY+1)
	df[0] = p
	for n := 1; n <= p.degY; n++ {
		df[n] = df[n-1].DiffY()
	}
	return df
}

// trimPoly normalizes a dense coefficient table by dropping all-zero
// trailing rows and columns, so degrees reflect the leading nonzero terms.
func trimPoly(coeffs [][]complex128) Poly {
	degY := -1
	degX := -1
	for j, row := range coeffs {
		for i, c := range row {
			if c != 0 {
				degY = max(degY, j)
				degX = max(degX, i)
			}
		}
	}
	if degY < 0 {
		return zeroPoly()
	}
	out := make([][]complex128, degY+1)
	for j := range out {
		out[j] = coeffs[j][:degX+1]
	}
	return Poly{coeffs: out, degX: degX, degY: degY}
}

func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for j := p.degY; j >= 0; j-- {
		for i := p.degX; i >= 0; i-- {
			c := p.coeffs[j][i]
			if c == 0 {
				continue
			}
			if !first {
				sb.WriteString(" + ")
			}
			first = false
			fmt.Fprintf(&sb, "(%g)", c)
			if i > 0 {
				fmt.Fprintf(&sb, "*x^%d", i)
			}
			if j > 0 {
				fmt.Fprintf(&sb, "*y^%d", j)
			}
		}
	}
	return sb.String()
}
