package catmull

import (
	"github.com/npillmayer/splinepath"
)

func newSkeletonPath(points []splinepath.V3) *Path {
	path := &Path{
		tension:      DefaultTension,
		subdivisions: DefaultSubdivisions,
	}
	path.points = make([]splinepath.V3, len(points), len(points)*2)
	copy(path.points, points)
	return path
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed path of four knots:
//
//	path := Nullpath().Knot(V(0,0,0)).Knot(V(1,0,1)).Knot(V(2,0,0)).Knot(V(1,0,-1)).Cycle()
//	samples, err := path.Samples()
//
// A new path has tension 0.5 and 5 subdivisions per segment. It is open
// unless Cycle() is called.
func Nullpath() *Path {
	return newSkeletonPath(nil)
}

// FromPoints creates a path from a slice of control points and a
// configuration. The slice is copied.
func FromPoints(points []splinepath.V3, cfg Config) *Path {
	path := newSkeletonPath(points)
	path.cycle = cfg.Closed
	path.tension = cfg.Tension
	path.subdivisions = cfg.Subdivisions
	return path
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	path.cycle = false
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Knot adds a control point to a path. Part of builder functionality.
func (path *Path) Knot(p splinepath.V3) *Path {
	path.points = append(path.points, p)
	return path
}

// Knots adds a list of control points to a path. Part of builder functionality.
func (path *Path) Knots(pts ...splinepath.V3) *Path {
	path.points = append(path.points, pts...)
	return path
}

// Tension sets the tension for all segments of a path.
// Part of builder functionality.
func (path *Path) Tension(t float64) *Path {
	path.tension = t
	return path
}

// Subdivisions sets the number of samples per segment.
// Part of builder functionality.
func (path *Path) Subdivisions(n int) *Path {
	path.subdivisions = n
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N).
func (path *Path) Z(i int) splinepath.V3 {
	n := path.N()
	return path.points[((i%n)+n)%n]
}

// Config returns the configuration the path will be sampled with.
func (path *Path) Config() Config {
	return Config{
		Tension:      path.tension,
		Subdivisions: path.subdivisions,
		Closed:       path.cycle,
	}
}

// Points returns a copy of the control points of the path.
func (path *Path) Points() []splinepath.V3 {
	pts := make([]splinepath.V3, len(path.points))
	copy(pts, path.points)
	return pts
}

// Samples calculates the sample sequence of the path. See Calculate.
func (path *Path) Samples() ([]splinepath.V3, error) {
	return Calculate(path.points, path.Config())
}

// Segments calculates the segments of the path. See Segments.
func (path *Path) Segments() ([]Segment, error) {
	return Segments(path.points, path.Config())
}
