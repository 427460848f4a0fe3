// Package catmull deals with smooth paths through 3D control points. It
// provides an implementation of cardinal spline interpolation, the family
// of curves commonly known as Catmull-Rom splines.
/*

A cardinal spline passes through every one of its control points. Each
segment between two consecutive control points z.i and z.[i+1] is a cubic
polynomial in t ∈ [0,1], shaped by the two neighbouring points z.[i-1] and
z.[i+2]. With tension τ the segment is

   P(t) = a + b⋅t + c⋅t² + d⋅t³

with

   a = z.i
   b = τ(z.[i+1] − z.[i-1])
   c = 3(z.[i+1] − z.i) − τ(z.[i+2] − z.i) − 2τ(z.[i+1] − z.[i-1])
   d = −2(z.[i+1] − z.i) + τ(z.[i+2] − z.i) + τ(z.[i+1] − z.[i-1])

τ = 0.5 gives the classic Catmull-Rom spline.

Usage

Clients either call Calculate with a slice of points and a Config, or build
a path with a kind of builder pattern (package qualifiers omitted for
clarity and brevity):

   Nullpath().Knot(V(0,0,0)).Knot(V(1,0,1)).Knot(V(2,0,0)).Knot(V(1,0,-1))
      .Tension(0.5).Subdivisions(4).Cycle()

and then ask for the samples of the path:

   samples, err := path.Samples()

Sampling

Every segment is sampled at t = k/n for k = 0 … n−1, where n is the number
of subdivisions. The sample for k = n is not evaluated but set to the end
point of the segment, so the sample sequence hits every control point
exactly, without floating point drift at the joins. Neighbouring segments
share this point; it appears twice in the output. Clients which need
de-duplicated, evenly spaced samples should use package sampler.

Cyclic paths wrap around: the last control point is connected back to the
first one, with tangents estimated across the join. Open paths repeat their
first and last point, which flattens the tangents at both ends.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catmull

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splinepath"
)

// AsString returns a path as a (debugging) string. If samples is nil, the
// string contains the control points of the path in one line:
//
//	(0,0,0) .. (1,0,1) .. (2,0,0) .. (1,0,-1) .. cycle
//
// Otherwise it lists the samples, with one line per segment of the path.
func AsString(path *Path, samples []splinepath.V3) string {
	var b strings.Builder
	if samples == nil {
		for i := 0; i < path.N(); i++ {
			if i > 0 {
				b.WriteString(" .. ")
			}
			b.WriteString(ptstring(path.Z(i), false))
		}
		if path.IsCycle() {
			b.WriteString(" .. cycle")
		}
		return b.String()
	}
	per := path.subdivisions + 1
	for i, pt := range samples {
		if i > 0 {
			if i%per == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(ptstring(pt, true))
	}
	return b.String()
}

// String is a short form of AsString(path, nil), decorated with the
// path's configuration.
func (path *Path) String() string {
	return fmt.Sprintf("%s [%s]", AsString(path, nil), path.Config())
}
