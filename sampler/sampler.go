/*
Package sampler thins out the samples of a spline and answers position
queries for traversal along it.

A PathSampler is built from control points. It calculates the cardinal
spline through the points (see package catmull) and keeps only those
samples which are at least a minimum distance apart from the previously
kept one. This is a greedy forward filter, not an arc-length
re-parametrization: where the spline bends sharply the distance between
kept samples may still vary.

Clients traversing the path, e.g. an animation moving an object at
constant apparent speed, call PointAt once per tick with a progress value
α ∈ [0,1]. PointAt does not interpolate; it returns the kept sample in
bucket ⌊α⋅n⌋.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sampler

import (
	"errors"
	"math"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinepath"
	"github.com/npillmayer/splinepath/catmull"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// DefaultMinSpacing is the default minimum distance between kept samples.
const DefaultMinSpacing float64 = 0.1

// ErrInvalidState indicates a query to a sampler which has not been built.
var ErrInvalidState = errors.New("path sampler has not been built")

// PathSampler holds a filtered sample sequence of a spline.
//
// A PathSampler may be shared between goroutines. Build calculates a new
// sample sequence without holding a lock and then replaces the current one;
// readers either see the complete old or the complete new sequence.
type PathSampler struct {
	mu     sync.RWMutex
	points []splinepath.V3 // filtered samples, nil before build
}

// New creates an empty path sampler. It has to be built before it can be
// queried.
func New() *PathSampler {
	return &PathSampler{}
}

// Build calculates a closed cardinal spline through the control points,
// filters its samples by minSpacing and stores the result. It returns the
// filtered samples.
//
// Errors from spline construction are passed through; they satisfy
// errors.Is(err, catmull.ErrInvalidInput). A failed build leaves the
// sampler unchanged.
func (ps *PathSampler) Build(points []splinepath.V3, tension float64, subdivisions int,
	minSpacing float64) ([]splinepath.V3, error) {
	//
	cfg := catmull.Config{
		Tension:      tension,
		Subdivisions: subdivisions,
		Closed:       true,
	}
	return ps.BuildConfig(points, cfg, minSpacing)
}

// BuildConfig is like Build, but takes a complete spline configuration,
// allowing for open paths.
func (ps *PathSampler) BuildConfig(points []splinepath.V3, cfg catmull.Config,
	minSpacing float64) ([]splinepath.V3, error) {
	//
	raw, err := catmull.Calculate(points, cfg)
	if err != nil {
		return nil, err
	}
	filtered := Filter(raw, minSpacing)
	tracer().Infof("path sampler keeps %d of %d samples, min spacing = %g",
		len(filtered), len(raw), minSpacing)
	ps.mu.Lock()
	ps.points = filtered
	ps.mu.Unlock()
	return clone(filtered), nil
}

// Points returns a copy of the filtered samples, or nil if the sampler has
// not been built.
func (ps *PathSampler) Points() []splinepath.V3 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return clone(ps.points)
}

// Len returns the number of filtered samples, 0 if not built.
func (ps *PathSampler) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return len(ps.points)
}

// IsBuilt is a predicate: has the sampler been built successfully?
func (ps *PathSampler) IsBuilt() bool {
	return ps.Len() > 0
}

// PointAt returns the sample for progress value alpha. The index of the
// sample is ⌊alpha⋅n⌋, clamped to 0 … n−1, for n filtered samples.
// Out-of-range values for alpha are clamped silently; NaN is treated as 0.
//
// PointAt returns ErrInvalidState if the sampler has not been built.
func (ps *PathSampler) PointAt(alpha float64) (splinepath.V3, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	if len(ps.points) == 0 {
		return splinepath.Origin, ErrInvalidState
	}
	return ps.points[bucket(alpha, len(ps.points))], nil
}

// Filter keeps the first sample and every sample which is at least
// minSpacing (Euclidean distance) apart from the previously kept one.
// The input is not modified. Filter(raw, 0) is a copy of raw.
func Filter(raw []splinepath.V3, minSpacing float64) []splinepath.V3 {
	if len(raw) == 0 {
		return nil
	}
	kept := make([]splinepath.V3, 1, len(raw))
	kept[0] = raw[0]
	last := raw[0]
	for _, p := range raw[1:] {
		if last.Distance(p) >= minSpacing {
			kept = append(kept, p)
			last = p
		}
	}
	return kept
}

func bucket(alpha float64, n int) int {
	if math.IsNaN(alpha) {
		return 0
	}
	f := math.Floor(alpha * float64(n))
	if f <= 0 {
		return 0
	}
	if f >= float64(n-1) {
		return n - 1
	}
	return int(f)
}

func clone(pts []splinepath.V3) []splinepath.V3 {
	if pts == nil {
		return nil
	}
	c := make([]splinepath.V3, len(pts))
	copy(c, pts)
	return c
}
