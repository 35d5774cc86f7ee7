package abelfunctions

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
)

// A Permutation on n sheets maps sheet i to p[i].
type Permutation []int

// IdentityPermutation returns the identity on n sheets.
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// NewPermutation validates that images forms a bijection on {0, …, n-1}.
func NewPermutation(images []int) (Permutation, error) {
	seen := make([]bool, len(images))
	for _, v := range images {
		if v < 0 || v >= len(images) || seen[v] {
			return nil, fmt.Errorf("abelfunctions: %v is not a permutation", images)
		}
		seen[v] = true
	}
	return slices.Clone(Permutation(images)), nil
}

// IsIdentity reports whether p fixes every sheet.
func (p Permutation) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// Then returns the composition "first p, then q": (p.Then(q))[i] = q[p[i]].
func (p Permutation) Then(q Permutation) Permutation {
	out := make(Permutation, len(p))
	for i, v := range p {
		out[i] = q[v]
	}
	return out
}

// Inverse returns the inverse permutation.
func (p Permutation) Inverse() Permutation {
	out := make(Permutation, len(p))
	for i, v := range p {
		out[v] = i
	}
	return out
}

// Cycles returns the cycle decomposition of p, including fixed points as
// 1-cycles. Each cycle starts at its smallest element and cycles are ordered
// by that element.
func (p Permutation) Cycles() [][]int {
	var cycles [][]int
	seen := make([]bool, len(p))
	for i := range p {
		if seen[i] {
			continue
		}
		cycle := []int{i}
		seen[i] = true
		for j := p[i]; j != i; j = p[j] {
			cycle = append(cycle, j)
			seen[j] = true
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// MatchingPermutation returns the permutation p with b.Sheet(p[i]) nearest to
// a.Sheet(i) for every sheet i. It is used to read off monodromy: continuing
// the base fibre around a loop yields a fibre whose values are a permutation
// of the base values.
//
// It returns an error if the assignment is not one-to-one or if some value of
// a has no match in b within half of b's minimal sheet separation.
func MatchingPermutation(a, b Fibre) (Permutation, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("abelfunctions: fibre lengths %d and %d differ", a.Len(), b.Len())
	}
	tol := 0.5 * b.MinSeparation()
	p := make(Permutation, a.Len())
	used := make([]bool, b.Len())
	for i := range p {
		best := -1
		bestDist := math.Inf(1)
		for j := range used {
			if d := cmplx.Abs(a.Sheet(i) - b.Sheet(j)); d < bestDist {
				best, bestDist = j, d
			}
		}
		if bestDist > tol {
			return nil, fmt.Errorf("abelfunctions: sheet %d (%g) has no match within %g", i, a.Sheet(i), tol)
		}
		if used[best] {
			return nil, fmt.Errorf("abelfunctions: sheets collide onto target %d", best)
		}
		used[best] = true
		p[i] = best
	}
	return p, nil
}
