package catmull

import (
	"fmt"

	"github.com/npillmayer/splinepath"
	"github.com/npillmayer/splinepath/polyn"
)

// Extend the control points with boundary points, so that every original
// point has a predecessor and two successors.
//
// Cyclic paths wrap around:
//
//	z.[n-1], z.0, z.1, … z.[n-1], z.0, z.1
//
// Open paths repeat their end points:
//
//	z.0, z.0, z.1, … z.[n-1], z.[n-1]
func extend(points []splinepath.V3, cycle bool) []splinepath.V3 {
	n := len(points)
	var ext []splinepath.V3
	if cycle {
		ext = make([]splinepath.V3, n+3)
		ext[0] = points[n-1]
		ext[n+1] = points[0]
		ext[n+2] = points[1]
	} else {
		ext = make([]splinepath.V3, n+2)
		ext[0] = points[0]
		ext[n+1] = points[n-1]
	}
	copy(ext[1:], points)
	return ext
}

// newSegment calculates the polynomial coefficients for the segment
// between p1 and p2.
func newSegment(tension float64, p0, p1, p2, p3 splinepath.V3) Segment {
	d21 := p2.Sub(p1)
	d31 := p3.Sub(p1)
	d20 := p2.Sub(p0)
	return Segment{
		P0: p0, P1: p1, P2: p2, P3: p3,
		a: p1,
		b: d20.Scaled(tension),
		c: d21.Scaled(3).Sub(d31.Scaled(tension)).Sub(d20.Scaled(2 * tension)),
		d: d21.Scaled(-2).Add(d31.Scaled(tension)).Add(d20.Scaled(tension)),
	}
}

// Segments validates the control points and configuration and returns the
// segments of the spline, in path order. Cyclic paths have one segment per
// control point, open paths one less.
func Segments(points []splinepath.V3, cfg Config) ([]Segment, error) {
	if err := Validate(points, cfg); err != nil {
		tracer().Errorf("cannot construct spline: %v", err)
		return nil, err
	}
	ext := extend(points, cfg.Closed)
	segments := make([]Segment, 0, len(ext)-3)
	for i := 1; i < len(ext)-2; i++ {
		seg := newSegment(cfg.Tension, ext[i-1], ext[i], ext[i+1], ext[i+2])
		tracer().Debugf("segment %d: %s .. %s", i-1, ptstring(seg.P1, false), ptstring(seg.P2, false))
		segments = append(segments, seg)
	}
	return segments, nil
}

// Start returns the first point of the segment, which is a control point.
func (seg Segment) Start() splinepath.V3 {
	return seg.P1
}

// End returns the last point of the segment, which is a control point.
func (seg Segment) End() splinepath.V3 {
	return seg.P2
}

// At evaluates the segment at t ∈ [0,1].
func (seg Segment) At(t float64) splinepath.V3 {
	return seg.a.
		Add(seg.b.Scaled(t)).
		Add(seg.c.Scaled(t * t)).
		Add(seg.d.Scaled(t * t * t))
}

// Sample returns n+1 points of the segment, at t = k/n for k = 0 … n−1,
// and the end point P2. P2 is not evaluated: the last sample is always
// identical to the control point.
func (seg Segment) Sample(n int) []splinepath.V3 {
	samples := make([]splinepath.V3, n+1)
	step := 1.0 / float64(n)
	for k := 0; k < n; k++ {
		samples[k] = seg.At(float64(k) * step)
	}
	samples[n] = seg.P2
	return samples
}

// Polynomials returns the coordinate functions x(t), y(t), z(t) of the segment.
func (seg Segment) Polynomials() (x, y, z polyn.Polynomial) {
	x = polyn.Cubic(seg.a.X, seg.b.X, seg.c.X, seg.d.X)
	y = polyn.Cubic(seg.a.Y, seg.b.Y, seg.c.Y, seg.d.Y)
	z = polyn.Cubic(seg.a.Z, seg.b.Z, seg.c.Z, seg.d.Z)
	return
}

// Tangent returns the first derivative of the segment at t ∈ [0,1], i.e. the
// direction of travel, scaled by the parametric speed.
func (seg Segment) Tangent(t float64) splinepath.V3 {
	x, y, z := seg.Polynomials()
	return splinepath.V(
		x.Derivative().Eval(t),
		y.Derivative().Eval(t),
		z.Derivative().Eval(t),
	)
}

func (seg Segment) String() string {
	x, y, z := seg.Polynomials()
	return fmt.Sprintf("%s .. %s: x(t) = %s, y(t) = %s, z(t) = %s",
		ptstring(seg.P1, false), ptstring(seg.P2, false), x, y, z)
}
