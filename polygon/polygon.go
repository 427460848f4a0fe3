/*
Package polygon deals with the ground-plane footprint of paths.

Paths in 3D space are projected onto the x/z plane (y is up), resulting in
simple polygons. Polygons may be tested for containment of points and
combined with boolean operations. Clipping is delegated to
github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinepath"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a polygon in the ground plane. Knots are stored as (x,z)
// pairs of their 3D counterparts.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
//
//	pg := NullPolygon().Knot(V(0,0,0)).Knot(V(1,0,3)).Knot(V(3,0,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds the projection of p to the polygon. Part of builder functionality.
func (pg *Polygon) Knot(p splinepath.V3) *Polygon {
	pg.contour.Add(project(p))
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns knot i, lifted to 3D with y = 0.
func (pg *Polygon) Z(i int) splinepath.V3 {
	return lift(pg.contour[i])
}

// Box creates a rectangular polygon with corners a and b, counter-clockwise.
func Box(a, b splinepath.V3) *Polygon {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	z0, z1 := math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)
	return NullPolygon().
		Knot(splinepath.V(x0, 0, z0)).
		Knot(splinepath.V(x1, 0, z0)).
		Knot(splinepath.V(x1, 0, z1)).
		Knot(splinepath.V(x0, 0, z1)).
		Cycle()
}

// Footprint creates the closed ground-plane polygon of a sequence of
// points, usually the samples of a closed spline. Consecutive points
// with identical projections are merged, as is a last point repeating the
// first one.
func Footprint(pts []splinepath.V3) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		q := project(p)
		if n := pg.N(); n > 0 && pg.contour[n-1].Equals(q) {
			continue
		}
		pg.contour.Add(q)
	}
	if n := pg.N(); n > 1 && pg.contour[n-1].Equals(pg.contour[0]) {
		pg.contour = pg.contour[:n-1]
	}
	L().Debugf("footprint of %d points has %d knots", len(pts), pg.N())
	return pg.Cycle()
}

// BoundingBox returns the lower-left and upper-right corner of the
// polygon's bounding box, with y = 0.
func (pg *Polygon) BoundingBox() (splinepath.V3, splinepath.V3) {
	if pg.N() == 0 {
		return splinepath.Origin, splinepath.Origin
	}
	bb := pg.contour.BoundingBox()
	return lift(bb.Min), lift(bb.Max)
}

// Contains is a predicate: does the footprint contain the projection of p?
func (pg *Polygon) Contains(p splinepath.V3) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(project(p))
}

// Area returns the area enclosed by the polygon (shoelace formula).
// Self-intersecting polygons produce meaningless results.
func (pg *Polygon) Area() float64 {
	n := pg.N()
	if n < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < n; i++ {
		p, q := pg.contour[i], pg.contour[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

// Intersection returns the regions covered by both pg and other.
func (pg *Polygon) Intersection(other *Polygon) []*Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Union returns the regions covered by pg or other.
func (pg *Polygon) Union(other *Polygon) []*Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Difference returns the regions covered by pg but not by other.
func (pg *Polygon) Difference(other *Polygon) []*Polygon {
	return pg.construct(polyclip.DIFFERENCE, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) []*Polygon {
	subject := polyclip.Polygon{pg.contour.Clone()}
	clipping := polyclip.Polygon{other.contour.Clone()}
	result := subject.Construct(op, clipping)
	regions := make([]*Polygon, 0, len(result))
	for _, c := range result {
		regions = append(regions, &Polygon{contour: c, cycle: true})
	}
	L().Debugf("boolean operation on polygons with %d and %d knots: %d regions",
		pg.N(), other.N(), len(regions))
	return regions
}

// AsString returns a polygon as a (debugging) string:
//
//	(0,1) -- (4,1) -- (4,5) -- (0,5) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.contour {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(fmt.Sprintf("(%g,%g)", p.X, p.Y))
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func project(p splinepath.V3) polyclip.Point {
	return polyclip.Point{X: p.X, Y: p.Z}
}

func lift(p polyclip.Point) splinepath.V3 {
	return splinepath.V(p.X, 0, p.Y)
}
