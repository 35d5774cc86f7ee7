package abelfunctions

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultSamples is the default number of continuation steps taken along one
// path segment. The Smale continuator bisects each step further as needed, so
// this only has to be fine enough that consecutive sample chords stay in the
// region the segment's continuator is valid for.
const DefaultSamples = 16

// endpointTol is the slack allowed when checking that consecutive segments
// join up and that a path starts at its base point.
const endpointTol = 1e-12

// A Segment is a directed piece of a path in the complex x-plane,
// parametrized over t ∈ [0, 1].
type Segment interface {
	// X evaluates the segment at parameter t.
	X(t float64) complex128
	// DX evaluates the derivative dx/dt at parameter t.
	DX(t float64) complex128
	// Reversed returns the same trace with opposite direction.
	Reversed() Segment
}

// A LineSegment is the straight segment from A to B.
type LineSegment struct {
	A, B complex128
}

var _ Segment = LineSegment{}

func (l LineSegment) X(t float64) complex128 {
	return l.A + complex(t, 0)*(l.B-l.A)
}

func (l LineSegment) DX(t float64) complex128 {
	return l.B - l.A
}

func (l LineSegment) Reversed() Segment {
	return LineSegment{A: l.B, B: l.A}
}

// An ArcSegment is the circular arc
//
//	x(t) = R·exp(i(θ + t·Δθ)) + Center
//
// with radius R, starting angle θ (Theta) and signed sweep Δθ (DTheta). A
// full counterclockwise turn has DTheta = 2π.
type ArcSegment struct {
	R      float64
	Center complex128
	Theta  float64
	DTheta float64
}

var _ Segment = ArcSegment{}

func (a ArcSegment) X(t float64) complex128 {
	return complex(a.R, 0)*cmplx.Exp(complex(0, a.Theta+t*a.DTheta)) + a.Center
}

func (a ArcSegment) DX(t float64) complex128 {
	return complex(a.R, 0) * complex(0, a.DTheta) * cmplx.Exp(complex(0, a.Theta+t*a.DTheta))
}

func (a ArcSegment) Reversed() Segment {
	return ArcSegment{R: a.R, Center: a.Center, Theta: a.Theta + a.DTheta, DTheta: -a.DTheta}
}

// A PathSegment pairs a segment's trace with the continuator governing its
// region. The pairing is resolved once, when the path is built: segments near
// a discriminant point carry a [PuiseuxContinuator], all others a
// [SmaleContinuator].
type PathSegment struct {
	Seg  Segment
	Cont Continuator
}

// A Path is a directed path in the x-plane together with the fibre of
// y-roots continued along it. Construction runs the full continuation; a
// Path is immutable afterwards.
//
// The global parameter t ∈ [0, 1] is split uniformly across the segments.
type Path struct {
	x0       complex128
	y0       Fibre
	segments []PathSegment
	samples  int
	// fibre at the start of segment k; index len(segments) is the end
	// of the path.
	checkpoints []Fibre
}

// NewPath continues the fibre y0, based at x0, through the given segments.
// Each segment is traversed in samples continuation steps (DefaultSamples if
// samples ≤ 0). Segments must join end-to-end and the first must start at
// x0; sheet identity is preserved across segment boundaries.
func NewPath(x0 complex128, y0 Fibre, segments []PathSegment, samples int) (*Path, error) {
	if len(segments) == 0 {
		return nil, errors.New("abelfunctions: path has no segments")
	}
	if y0.Len() == 0 {
		return nil, errors.New("abelfunctions: path has an empty base fibre")
	}
	if samples <= 0 {
		samples = DefaultSamples
	}
	if d := cmplx.Abs(segments[0].Seg.X(0) - x0); d > endpointTol {
		return nil, fmt.Errorf("abelfunctions: path starts %g away from base point %g", d, x0)
	}
	for k := 1; k < len(segments); k++ {
		if d := cmplx.Abs(segments[k].Seg.X(0) - segments[k-1].Seg.X(1)); d > endpointTol {
			return nil, fmt.Errorf("abelfunctions: segments %d and %d do not join", k-1, k)
		}
	}

	p := &Path{
		x0:          x0,
		y0:          y0,
		segments:    segments,
		samples:     samples,
		checkpoints: make([]Fibre, len(segments)+1),
	}
	fib := y0
	p.checkpoints[0] = fib
	for k, seg := range segments {
		var err error
		fib, err = continueAlong(seg, fib, 0, 1, samples)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", k, err)
		}
		p.checkpoints[k+1] = fib
	}
	return p, nil
}

// continueAlong advances fib along seg from parameter t0 to t1, sampling the
// trace so that the continuator sees chords of length ~1/samples of the
// segment.
func continueAlong(seg PathSegment, fib Fibre, t0, t1 float64, samples int) (Fibre, error) {
	n := int(math.Ceil(float64(samples) * (t1 - t0)))
	if n < 1 {
		n = 1
	}
	x := seg.Seg.X(t0)
	for i := 1; i <= n; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(n)
		xNext := seg.Seg.X(t)
		var err error
		fib, err = seg.Cont.Continue(x, fib, xNext)
		if err != nil {
			return Fibre{}, err
		}
		x = xNext
	}
	return fib, nil
}

// BasePoint returns the path's starting x-point.
func (p *Path) BasePoint() complex128 { return p.x0 }

// BaseFibre returns the fibre above the starting point.
func (p *Path) BaseFibre() Fibre { return p.y0 }

// Segments returns the number of segments.
func (p *Path) Segments() int { return len(p.segments) }

// locate maps a global parameter to (segment index, local parameter).
func (p *Path) locate(t float64) (int, float64) {
	t = math.Min(math.Max(t, 0), 1)
	scaled := t * float64(len(p.segments))
	k := int(scaled)
	if k == len(p.segments) {
		k--
	}
	return k, scaled - float64(k)
}

// XAt returns the x-point at global parameter t ∈ [0, 1].
func (p *Path) XAt(t float64) complex128 {
	k, s := p.locate(t)
	return p.segments[k].Seg.X(s)
}

// DXAt returns dx/dt at global parameter t, including the segment-count
// scaling of the global parametrization.
func (p *Path) DXAt(t float64) complex128 {
	k, s := p.locate(t)
	return p.segments[k].Seg.DX(s) * complex(float64(len(p.segments)), 0)
}

// FibreAt returns the continued fibre above XAt(t). The fibre is recomputed
// from the nearest cached segment boundary.
func (p *Path) FibreAt(t float64) (Fibre, error) {
	k, s := p.locate(t)
	return continueAlong(p.segments[k], p.checkpoints[k], 0, s, p.samples)
}

// EndFibre returns the fibre above the end of the path.
func (p *Path) EndFibre() Fibre {
	return p.checkpoints[len(p.checkpoints)-1]
}

// Reverse returns the path traversed backwards, starting from this path's
// end fibre. Continuing back along the reverse of an analytic path undoes
// the forward continuation up to numerical tolerance.
func (p *Path) Reverse() (*Path, error) {
	segs := make([]PathSegment, len(p.segments))
	for k, seg := range p.segments {
		segs[len(segs)-1-k] = PathSegment{Seg: seg.Seg.Reversed(), Cont: seg.Cont}
	}
	return NewPath(p.segments[len(p.segments)-1].Seg.X(1), p.EndFibre(), segs, p.samples)
}
