package abelfunctions

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// A Fibre is the ordered set of y-roots lying above one point of the x-plane.
//
// The slice index is the sheet label: index i refers to the same analytically
// continued root at every step of a continuation, and a Fibre is never
// re-sorted by value. The type is immutable; continuators return fresh
// fibres rather than mutating their input.
type Fibre struct {
	sheets []complex128
}

// NewFibre builds a fibre from the given y-values. The slice is copied; the
// order of the values fixes the sheet labelling.
func NewFibre(ys []complex128) Fibre {
	sheets := make([]complex128, len(ys))
	copy(sheets, ys)
	return Fibre{sheets: sheets}
}

// Len returns the number of sheets.
func (f Fibre) Len() int { return len(f.sheets) }

// Sheet returns the y-value on sheet i.
func (f Fibre) Sheet(i int) complex128 { return f.sheets[i] }

// Values returns a copy of the y-values in sheet order.
func (f Fibre) Values() []complex128 {
	out := make([]complex128, len(f.sheets))
	copy(out, f.sheets)
	return out
}

// MinSeparation returns the smallest distance between two distinct sheets,
// or +Inf for fibres with fewer than two sheets.
func (f Fibre) MinSeparation() float64 {
	minSep := math.Inf(1)
	for j := range f.sheets {
		for k := j + 1; k < len(f.sheets); k++ {
			minSep = math.Min(minSep, cmplx.Abs(f.sheets[j]-f.sheets[k]))
		}
	}
	return minSep
}

func (f Fibre) String() string {
	parts := make([]string, len(f.sheets))
	for i, y := range f.sheets {
		parts[i] = fmt.Sprintf("%g", y)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
