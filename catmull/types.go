package catmull

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinepath"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

const (
	// DefaultTension is the tension of the classic Catmull-Rom spline.
	DefaultTension float64 = 0.5
	// DefaultSubdivisions is the default number of samples per segment,
	// not counting the shared end point.
	DefaultSubdivisions int = 5
	// MinPoints is the smallest number of control points accepted.
	MinPoints int = 3
)

var (
	// ErrInvalidInput is the umbrella error for all rejected curve input.
	// All other errors of this package satisfy errors.Is(err, ErrInvalidInput).
	ErrInvalidInput = errors.New("invalid curve input")
	// ErrTooFewPoints indicates a control point count below MinPoints.
	ErrTooFewPoints = fmt.Errorf("%w: at least 3 points required", ErrInvalidInput)
	// ErrInvalidSubdivisions indicates a subdivision count below 1.
	ErrInvalidSubdivisions = fmt.Errorf("%w: subdivision count must be at least 1", ErrInvalidInput)
	// ErrInvalidPoint indicates a control point coordinate containing NaN/Inf.
	ErrInvalidPoint = fmt.Errorf("%w: control point has invalid coordinate", ErrInvalidInput)
	// ErrInvalidTension indicates a tension of NaN/Inf.
	ErrInvalidTension = fmt.Errorf("%w: tension must be a finite number", ErrInvalidInput)
)

// Config holds the read-only parameters of a curve construction.
type Config struct {
	Tension      float64 // cardinal spline tension, 0.5 for Catmull-Rom
	Subdivisions int     // samples per segment, excluding the forced end point
	Closed       bool    // wrap around from the last point to the first
}

// DefaultConfig returns tension 0.5, 5 subdivisions, closed curve.
func DefaultConfig() Config {
	return Config{
		Tension:      DefaultTension,
		Subdivisions: DefaultSubdivisions,
		Closed:       true,
	}
}

func (cfg Config) String() string {
	mode := "open"
	if cfg.Closed {
		mode = "closed"
	}
	return fmt.Sprintf("tension=%g subdivisions=%d %s", cfg.Tension, cfg.Subdivisions, mode)
}

// Path is the concrete type for building and sampling cardinal splines.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points       []splinepath.V3 // control point i
	cycle        bool            // is this path cyclic ?
	tension      float64         // cardinal spline tension
	subdivisions int             // samples per segment
}

// Segment is the part of a spline between two consecutive control points.
// It is shaped by four points of the extended control sequence: the
// segment runs from P1 to P2, P0 and P3 are its outer neighbours.
type Segment struct {
	P0, P1, P2, P3 splinepath.V3
	a, b, c, d     splinepath.V3 // coefficients of a + b⋅t + c⋅t² + d⋅t³
}
