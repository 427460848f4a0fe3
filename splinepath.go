/*
Package splinepath implements 3D points and vector arithmetic as a basis
for smooth paths through control points. Sub-packages build cardinal
splines (catmull), sample them for traversal (sampler), and project them
onto the ground plane (polygon).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splinepath

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splinepath'
func tracer() tracing.Trace {
	return tracing.Select("splinepath")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === V3 Data Type ==========================================================

// V3 is a point or vector in 3D space. The coordinate system follows the
// usual scene convention: x to the right, y up, z backward.
//
// Arithmetic on V3 is exact float64 arithmetic. Nothing is rounded to ε
// unless a client calls Zap explicitly.
type V3 struct {
	X, Y, Z float64
}

// Origin represents the frequently used constant (0,0,0).
var Origin = V(0, 0, 0)

// V is a quick notation for constructing a point from floats.
func V(x, y, z float64) V3 {
	return V3{X: x, Y: y, Z: z}
}

// Pretty Stringer for points.
func (v V3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// F is a quick notation for getting float values from a point.
func (v V3) F() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

// Add returns v + w.
func (v V3) Add(w V3) V3 {
	return V3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v − w.
func (v V3) Sub(w V3) V3 {
	return V3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scaled returns a new vector scaled by factor a.
func (v V3) Scaled(a float64) V3 {
	return V3{X: v.X * a, Y: v.Y * a, Z: v.Z * a}
}

// Dot returns the dot product of v and w.
func (v V3) Dot(w V3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the magnitude of v.
func (v V3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the Euclidean distance between two points.
func (v V3) Distance(w V3) float64 {
	return w.Sub(v).Length()
}

// Lerp linearly interpolates between two points.
func (v V3) Lerp(w V3, t float64) V3 {
	return v.Add(w.Sub(v).Scaled(t))
}

// Zap rounds all components to Epsilon.
func (v V3) Zap() V3 {
	return V3{X: Zap(v.X), Y: Zap(v.Y), Z: Zap(v.Z)}
}

// IsOrigin is a predicate: is this point origin?
func (v V3) IsOrigin() bool {
	return v.Equal(Origin)
}

// Equal compares two points with tolerance ε.
// Use == for bit-for-bit comparison.
func (v V3) Equal(w V3) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y) && Is0(v.Z-w.Z)
}

// IsFinite is a predicate: are all components neither NaN nor ±Inf?
func (v V3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			tracer().Debugf("point %s is not finite", v)
			return false
		}
	}
	return true
}

// RotatedY returns a new point rotated around the vertical (y) axis by theta,
// counterclockwise when looking down onto the ground plane.
// Argument is in radians.
func (v V3) RotatedY(theta float64) V3 {
	sin, cos := math.Sincos(theta)
	return V3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Flatten converts a sequence of points to a flat list of coordinates
// x0, y0, z0, x1, y1, z1, …
func Flatten(pts []V3) []float64 {
	flat := make([]float64, 0, len(pts)*3)
	for _, p := range pts {
		flat = append(flat, p.X, p.Y, p.Z)
	}
	return flat
}

// Unflatten converts a flat list of coordinates into points. The length of
// coords must be a multiple of 3.
func Unflatten(coords []float64) ([]V3, error) {
	if len(coords)%3 != 0 {
		tracer().Errorf("coordinate list of length %d is not a multiple of 3", len(coords))
		return nil, fmt.Errorf("coordinate list of length %d is not a multiple of 3", len(coords))
	}
	pts := make([]V3, len(coords)/3)
	for i := range pts {
		pts[i] = V(coords[i*3], coords[i*3+1], coords[i*3+2])
	}
	return pts, nil
}
