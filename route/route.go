// Package route reads traversal routes from YAML documents.
//
// A route lists the control points of a path together with the parameters
// for spline construction and sampling:
//
//	name: demo loop
//	tension: 0.5
//	subdivisions: 5
//	closed: true
//	min_spacing: 0.1
//	points:
//	  - [0, -0.375, 7]
//	  - [-6, -0.375, 5]
//	  - [-8, -0.375, 1]
//
// Instead of points, a route may give a flat coordinate list
// (x0, y0, z0, x1, …) under the key "flat". Omitted parameters take the
// defaults of packages catmull and sampler.
package route

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinepath"
	"github.com/npillmayer/splinepath/catmull"
	"github.com/npillmayer/splinepath/polygon"
	"github.com/npillmayer/splinepath/sampler"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'route'
func tracer() tracing.Trace {
	return tracing.Select("route")
}

// ErrInvalidRoute indicates a route document which cannot be decoded.
var ErrInvalidRoute = errors.New("invalid route")

// Route is a decoded route document.
type Route struct {
	Name       string
	Config     catmull.Config
	MinSpacing float64
	Points     []splinepath.V3
}

// document is the YAML representation of a route. Pointers distinguish
// omitted fields from zero values.
type document struct {
	Name         string      `yaml:"name"`
	Tension      *float64    `yaml:"tension"`
	Subdivisions *int        `yaml:"subdivisions"`
	Closed       *bool       `yaml:"closed"`
	MinSpacing   *float64    `yaml:"min_spacing"`
	Points       [][]float64 `yaml:"points,omitempty"`
	Flat         []float64   `yaml:"flat,omitempty"`
}

// Default returns the eight-knot loop around the demo scene. The knots lie
// on a plane slightly below y = 0, the ground of the scene.
func Default() *Route {
	pts, _ := splinepath.Unflatten([]float64{
		0.0, -0.375, 7.0,
		-6.0, -0.375, 5.0,
		-8.0, -0.375, 1.0,
		-4.0, -0.375, -6.0,
		0.0, -0.375, -7.0,
		1.0, -0.375, -4.0,
		4.0, -0.375, -3.0,
		8.0, -0.375, 7.0,
	})
	return &Route{
		Name:       "demo loop",
		Config:     catmull.DefaultConfig(),
		MinSpacing: sampler.DefaultMinSpacing,
		Points:     pts,
	}
}

// Load reads a route from a YAML file.
func Load(filename string) (*Route, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading route file: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("route file %s: %w", filename, err)
	}
	return r, nil
}

// Parse decodes a route from YAML data.
func Parse(data []byte) (*Route, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single YAML route document from r. Unknown keys are
// rejected.
func Decode(r io.Reader) (*Route, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRoute)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoute, err)
	}
	route, err := doc.route()
	if err != nil {
		tracer().Errorf("cannot decode route %q: %v", doc.Name, err)
		return nil, err
	}
	tracer().Infof("route %q with %d points [%s]", route.Name, len(route.Points), route.Config)
	return route, nil
}

func (doc document) route() (*Route, error) {
	r := &Route{
		Name:       doc.Name,
		Config:     catmull.DefaultConfig(),
		MinSpacing: sampler.DefaultMinSpacing,
	}
	if doc.Tension != nil {
		r.Config.Tension = *doc.Tension
	}
	if doc.Subdivisions != nil {
		r.Config.Subdivisions = *doc.Subdivisions
	}
	if doc.Closed != nil {
		r.Config.Closed = *doc.Closed
	}
	if doc.MinSpacing != nil {
		r.MinSpacing = *doc.MinSpacing
	}
	if len(doc.Points) > 0 && len(doc.Flat) > 0 {
		return nil, fmt.Errorf("%w: both points and flat coordinates given", ErrInvalidRoute)
	}
	if len(doc.Flat) > 0 {
		pts, err := splinepath.Unflatten(doc.Flat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRoute, err)
		}
		r.Points = pts
		return r, nil
	}
	r.Points = make([]splinepath.V3, len(doc.Points))
	for i, c := range doc.Points {
		if len(c) != 3 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, expected 3", ErrInvalidRoute, i, len(c))
		}
		r.Points[i] = splinepath.V(c[0], c[1], c[2])
	}
	return r, nil
}

// Encode writes the route as a YAML document to w.
func (r *Route) Encode(w io.Writer) error {
	closed := r.Config.Closed
	doc := document{
		Name:         r.Name,
		Tension:      &r.Config.Tension,
		Subdivisions: &r.Config.Subdivisions,
		Closed:       &closed,
		MinSpacing:   &r.MinSpacing,
		Points:       make([][]float64, len(r.Points)),
	}
	for i, p := range r.Points {
		doc.Points[i] = []float64{p.X, p.Y, p.Z}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Samples calculates the raw spline samples of the route.
func (r *Route) Samples() ([]splinepath.V3, error) {
	return catmull.Calculate(r.Points, r.Config)
}

// Sampler builds a path sampler for the route.
func (r *Route) Sampler() (*sampler.PathSampler, error) {
	ps := sampler.New()
	if _, err := ps.BuildConfig(r.Points, r.Config, r.MinSpacing); err != nil {
		return nil, err
	}
	return ps, nil
}

// ErrOpenRoute indicates an operation which requires a closed route.
var ErrOpenRoute = errors.New("route is not closed")

// Footprint returns the ground-plane polygon enclosed by the route's spline.
// Only closed routes have a footprint.
func (r *Route) Footprint() (*polygon.Polygon, error) {
	if !r.Config.Closed {
		return nil, ErrOpenRoute
	}
	samples, err := r.Samples()
	if err != nil {
		return nil, err
	}
	return polygon.Footprint(samples), nil
}
